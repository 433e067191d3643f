package handler

import (
	"net/http"
	"net/url"

	"zephyr/config"
	"zephyr/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// PageHandler serves page navigations that passed the route guard.
type PageHandler struct {
	proxy echo.HandlerFunc
}

// NewPageHandler proxies pages to the configured frontend, or answers with a placeholder when there is none.
func NewPageHandler(cfg *config.Config) (*PageHandler, error) {
	h := &PageHandler{proxy: placeholderPage}
	if cfg.App == nil || cfg.App.FrontendUpstream == "" {
		return h, nil
	}

	upstream, err := url.Parse(cfg.App.FrontendUpstream)
	if err != nil {
		return nil, errors.Wrap(err, "invalid frontend upstream")
	}

	balancer := echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{{URL: upstream}})
	h.proxy = echomiddleware.ProxyWithConfig(echomiddleware.ProxyConfig{Balancer: balancer})(placeholderPage)

	return h, nil
}

// Serve renders the page.
func (h *PageHandler) Serve(c echo.Context) error {
	return h.proxy(c)
}

func placeholderPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"path": c.Request().URL.Path}, "")
}

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
