package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenExpired is returned for a well-signed access token past its expiry.
var ErrTokenExpired = errors.New("access token expired")

// ErrVerificationUnavailable is returned when tokens cannot be checked locally.
var ErrVerificationUnavailable = errors.New("local token verification unavailable")

// AMREntry is one authentication method reference of a provider access token.
type AMREntry struct {
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

// Claims defines the claims of an identity provider access token.
type Claims struct {
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	SessionID    string         `json:"session_id"`
	AMR          []AMREntry     `json:"amr"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// HasAMR reports whether the session was established with the given method, e.g. "recovery".
func (c *Claims) HasAMR(method string) bool {
	for _, entry := range c.AMR {
		if entry.Method == method {
			return true
		}
	}

	return false
}

// TokenVerifier checks provider access tokens locally.
type TokenVerifier interface {
	// VerifyAccessToken validates signature and expiry. Expired tokens yield ErrTokenExpired.
	VerifyAccessToken(tokenString string) (*Claims, error)
}
