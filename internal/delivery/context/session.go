package context

import (
	"context"

	"zephyr/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the session loaded from the request cookies.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(storeSession, session)
}

// GetSession returns the request's session, or nil for anonymous requests.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(storeSession).(*entity.Session)

	return session
}

// WithClientID tags ctx with the browser that issued the request. Auth events raised
// under ctx are routed to that browser's open session contexts.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientID is empty for requests that carry no client cookie, and for the worker.
func GetClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey).(string)

	return id
}
