// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zephyr/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data submitted by the login form.
type LoginInput struct {
	Identifier string // Email or username, used as typed.
	Password   string
}

// SignUpInput defines the data submitted by the signup form.
type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// ForgotPasswordInput defines the data submitted by the forgot-password form.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput defines the data submitted by the reset-password form.
// AccessToken comes from the session established by the reset link.
type ResetPasswordInput struct {
	AccessToken     string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// LoginOutput returns the new session and the profile fetched by the provider user id.
type LoginOutput struct {
	Session *entity.Session
	Profile *entity.UserProfile // Nil when the profile row is missing.
}

// SignUpOutput returns the new account. Session is nil while email confirmation is pending.
type SignUpOutput struct {
	User    *entity.AuthUser
	Profile *entity.UserProfile
	Session *entity.Session
}

// LoadedSession is the session found in a request's cookies.
type LoadedSession struct {
	Session   *entity.Session
	Refreshed bool // The access token was renewed and the cookies must be rewritten.
}

// AuthUsecase defines the auth flows offered to the delivery layer.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	RequestPasswordReset(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	Logout(ctx context.Context, session *entity.Session) error

	// EstablishRecoverySession turns the tokens carried by a reset link into a session.
	EstablishRecoverySession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error)

	// LoadSession finds the session behind the cookie tokens, refreshing it when the access token expired.
	// It returns nil without error when there is no usable session.
	LoadSession(ctx context.Context, accessToken, refreshToken string) (*LoadedSession, error)

	// ResolveState runs the authoritative session check and derives the full auth state.
	ResolveState(ctx context.Context, session *entity.Session) entity.AuthState
}

// CredentialValidator checks form input before any network call.
// Each method reports the first failing rule, in form order.
type CredentialValidator interface {
	ValidateLogin(input LoginInput) error
	ValidateSignUp(input SignUpInput) error
	ValidateForgotPassword(input ForgotPasswordInput) error
	ValidateResetPassword(input ResetPasswordInput) error
}

// IdentifierResolver maps a login identifier to the email the provider signs in with.
type IdentifierResolver interface {
	Resolve(ctx context.Context, identifier entity.LoginIdentifier) (string, error)
}
