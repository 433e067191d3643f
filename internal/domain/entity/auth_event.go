package entity

import "github.com/google/uuid"

// AuthEventType mirrors the identity provider's auth state change events.
type AuthEventType string

const (
	AuthEventSignedIn         AuthEventType = "SIGNED_IN"
	AuthEventSignedOut        AuthEventType = "SIGNED_OUT"
	AuthEventTokenRefreshed   AuthEventType = "TOKEN_REFRESHED"
	AuthEventUserUpdated      AuthEventType = "USER_UPDATED"
	AuthEventPasswordRecovery AuthEventType = "PASSWORD_RECOVERY"
)

// AuthEvent is an auth state change for one user. Session is nil when the user no longer has one.
// ClientID names the browser whose request caused the change; it is empty for server-side changes.
type AuthEvent struct {
	Type     AuthEventType
	UserID   uuid.UUID
	ClientID string
	Session  *Session
}

// FromClient reports whether the event was raised by the given browser.
func (e AuthEvent) FromClient(clientID string) bool {
	return clientID != "" && e.ClientID == clientID
}
