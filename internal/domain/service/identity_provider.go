package service

import (
	"context"

	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpResult is the outcome of creating a provider account.
// Session is nil when the provider requires email confirmation before signing in.
type SignUpResult struct {
	User    *entity.AuthUser
	Session *entity.Session
}

// IdentityProvider issues requests against the remote identity provider.
// Provider-reported failures are *domainerrors.AuthError; transport failures are NetworkError.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	SignUp(ctx context.Context, email, password string, metadata entity.UserMetadata) (*SignUpResult, error)
	SignOut(ctx context.Context, accessToken string) error
	RequestPasswordReset(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, newPassword string) (*entity.AuthUser, error)

	// GetUser returns the account behind an access token.
	GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error)

	// RefreshSession exchanges a refresh token for a new session.
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// DeleteUser removes an account through the admin API.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
