package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/delivery/http/cookie"
	"zephyr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware loads the cookie session of each request and guards page navigation.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	guard  usecase.RouteGuard
	jar    *cookie.Jar
	logger *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx
type AuthMiddlewareParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Guard  usecase.RouteGuard
	Jar    *cookie.Jar
	Logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   params.Auth,
		guard:  params.Guard,
		jar:    params.Jar,
		logger: params.Logger,
	}
}

// IdentifyClient tags the request with the browser's client id, issuing one on first contact.
// Auth events raised by the request carry it, so the browser's open session streams see them.
func (m *AuthMiddleware) IdentifyClient(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := m.jar.ClientID(c)
		if clientID == "" {
			clientID = uuid.NewString()
			m.jar.SetClientID(c, clientID)
		}

		ctx := deliverycontext.WithClientID(c.Request().Context(), clientID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// LoadSession resolves the session cookies into a session on the echo context.
// Rejected tokens clear the cookies; a renewed session rewrites them.
// A provider outage leaves the request anonymous and the cookies untouched.
func (m *AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessToken, refreshToken := m.jar.Read(c)
		if accessToken == "" && refreshToken == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		loaded, err := m.auth.LoadSession(ctx, accessToken, refreshToken)
		if err != nil {
			logger.Warn("Failed to load session, continuing anonymously", slog.Any("error", err))

			return next(c)
		}

		if loaded == nil || loaded.Session == nil {
			m.jar.Clear(c)

			return next(c)
		}

		if loaded.Refreshed {
			m.jar.Set(c, loaded.Session)
		}

		deliverycontext.SetSession(c, loaded.Session)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", loaded.Session.UserID())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GuardPage redirects page navigations the route guard rejects. It must run after LoadSession.
func (m *AuthMiddleware) GuardPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionPresent := deliverycontext.GetSession(c) != nil

		decision := m.guard.Decide(c.Request().URL.Path, sessionPresent)
		if decision.IsRedirect() {
			return c.Redirect(http.StatusTemporaryRedirect, decision.Target)
		}

		return next(c)
	}
}
