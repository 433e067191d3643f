package entity

import (
	"time"
)

// Session is a provider-issued authenticated session. The access token is opaque to the application.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int       // Lifetime of the access token in seconds.
	ExpiresAt    time.Time // Zero when the provider did not report an expiry.
	User         *AuthUser
}

// Expired reports whether the access token is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(s.ExpiresAt)
}

// UserID returns the session owner id, or an empty string when the session has no user.
func (s *Session) UserID() string {
	if s == nil || s.User == nil {
		return ""
	}

	return s.User.ID.String()
}
