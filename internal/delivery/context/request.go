// Package context carries request-scoped values between echo handlers, the worker and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	clientIDKey
)

// echo.Context store keys.
const (
	storeRequestID = "zephyr.request_id"
	storeSession   = "zephyr.session"
)

// HeaderXRequestID carries the request id on API responses, worker pushes and local push deliveries.
const HeaderXRequestID = echo.HeaderXRequestID

// SetRequestID records the request id on the echo context for the access log and the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(storeRequestID, requestID)
}

// GetRequestID returns the id set by SetRequestID, falling back to the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(storeRequestID).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext is empty outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
