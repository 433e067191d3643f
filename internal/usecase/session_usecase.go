package usecase

import (
	"context"

	"zephyr/internal/domain/entity"
)

// SessionContext is an observable auth state for one browser connection.
// Only Refresh, Logout and the internal event handler change the state.
// Events raised by the same browser replace the tracked session; events of the
// same user from other browsers only re-run the session check.
type SessionContext interface {
	// State returns the current snapshot.
	State() entity.AuthState

	// Subscribe yields the current state and every later change. Call cancel to stop.
	Subscribe() (states <-chan entity.AuthState, cancel func())

	// Refresh re-runs the session check.
	Refresh(ctx context.Context) entity.AuthState

	// Logout signs out session, or the tracked session when nil, and forces the anonymous state on success.
	Logout(ctx context.Context, session *entity.Session) error

	// Close stops event handling and closes all subscriptions.
	Close()
}

// SessionContextFactory opens session contexts and finds the open ones of a browser.
type SessionContextFactory interface {
	// Open starts a session context for the browser and the session of a request.
	// An empty clientID opens a context no request can reach through Lookup.
	Open(clientID string, session *entity.Session) SessionContext

	// Lookup returns the browser's open session contexts, oldest first.
	Lookup(clientID string) []SessionContext
}

// RouteGuard decides whether a page navigation may proceed.
type RouteGuard interface {
	Decide(path string, sessionPresent bool) entity.RouteDecision
}
