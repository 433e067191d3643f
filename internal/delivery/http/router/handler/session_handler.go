package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/delivery/http/response"
	"zephyr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	sseEventState = "state"

	defaultKeepAlive = 25 * time.Second
)

// SessionHandler exposes the auth state of the request's session.
type SessionHandler struct {
	uc        usecase.AuthUsecase
	contexts  usecase.SessionContextFactory
	logger    *slog.Logger
	keepAlive time.Duration
}

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx
type SessionHandlerParams struct {
	fx.In

	Auth     usecase.AuthUsecase
	Contexts usecase.SessionContextFactory
	Logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		uc:        params.Auth,
		contexts:  params.Contexts,
		logger:    params.Logger,
		keepAlive: defaultKeepAlive,
	}
}

// GetSession returns the authoritative auth state.
func (h *SessionHandler) GetSession(c echo.Context) error {
	state := h.uc.ResolveState(c.Request().Context(), deliverycontext.GetSession(c))

	return response.Success(c, http.StatusOK, newAuthStateResponse(state), "")
}

// RefreshSession re-runs the session check in every open session stream of the browser and returns
// the state of the oldest. Without an open stream it answers like GetSession.
func (h *SessionHandler) RefreshSession(c echo.Context) error {
	ctx := c.Request().Context()

	open := h.contexts.Lookup(deliverycontext.GetClientID(ctx))
	if len(open) == 0 {
		return h.GetSession(c)
	}

	state := open[0].Refresh(ctx)
	for _, sc := range open[1:] {
		sc.Refresh(ctx)
	}

	return response.Success(c, http.StatusOK, newAuthStateResponse(state), "")
}

// StreamSession streams every state of a session context as server-sent events until the client leaves.
func (h *SessionHandler) StreamSession(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	sc := h.contexts.Open(deliverycontext.GetClientID(ctx), deliverycontext.GetSession(c))
	defer sc.Close()

	states, cancel := sc.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	// The stream outlives the server write timeout.
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Write deadline not adjustable", slog.Any("error", err))
	}
	res.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case state, ok := <-states:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(newAuthStateResponse(state))
			if err != nil {
				logger.Error("Failed to encode auth state", slog.Any("error", err))

				return nil
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", sseEventState, payload); err != nil {
				logger.Debug("Session stream closed by client", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}
