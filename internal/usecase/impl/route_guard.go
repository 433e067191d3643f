package impl

import (
	"slices"
	"strings"

	"zephyr/config"
	"zephyr/internal/domain/entity"
	"zephyr/internal/usecase"
)

type routeGuard struct {
	protected  []string
	authRoutes []string
	login      string
	home       string
}

// NewRouteGuard builds the guard from the configured route sets.
func NewRouteGuard(cfg *config.Config) usecase.RouteGuard {
	return &routeGuard{
		protected:  cfg.Routes.Protected,
		authRoutes: cfg.Routes.AuthRoutes,
		login:      cfg.Routes.Login,
		home:       cfg.Routes.Home,
	}
}

// Decide redirects anonymous visitors away from protected pages and signed-in users away from auth pages.
func (g *routeGuard) Decide(path string, sessionPresent bool) entity.RouteDecision {
	if !sessionPresent && g.isProtected(path) {
		return entity.RedirectTo(g.login)
	}

	if sessionPresent && g.isAuthRoute(path) {
		return entity.RedirectTo(g.home)
	}

	return entity.Allow()
}

// isProtected matches a protected route and everything below it, segment-wise.
func (g *routeGuard) isProtected(path string) bool {
	for _, route := range g.protected {
		if path == route || strings.HasPrefix(path, strings.TrimSuffix(route, "/")+"/") {
			return true
		}
	}

	return false
}

// isAuthRoute matches auth routes exactly.
func (g *routeGuard) isAuthRoute(path string) bool {
	return slices.Contains(g.authRoutes, path)
}
