package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zephyr/config"
	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/domain/constants"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/repository"
	"zephyr/internal/domain/service"
	"zephyr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetPasswordPath = "/reset-password"
	amrRecovery       = "recovery"
)

// authService orchestrates the auth flows: validate, resolve, call the provider, touch the profile store.
type authService struct {
	validator          usecase.CredentialValidator
	resolver           usecase.IdentifierResolver
	provider           service.IdentityProvider
	profileRepo        repository.ProfileRepository
	verifier           service.TokenVerifier
	events             service.AuthEventSink
	publisher          service.EventPublisher
	resetRedirectURL   string
	requireRecoveryAMR bool
	logger             *slog.Logger
	now                func() time.Time
}

// AuthServiceParams holds dependencies for authService, injected by Fx
type AuthServiceParams struct {
	fx.In

	Config      *config.Config
	Validator   usecase.CredentialValidator
	Resolver    usecase.IdentifierResolver
	Provider    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Verifier    service.TokenVerifier
	Events      service.AuthEventSink
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		validator:          params.Validator,
		resolver:           params.Resolver,
		provider:           params.Provider,
		profileRepo:        params.ProfileRepo,
		verifier:           params.Verifier,
		events:             params.Events,
		publisher:          params.Publisher,
		resetRedirectURL:   strings.TrimRight(params.Config.App.URL, "/") + resetPasswordPath,
		requireRecoveryAMR: params.Config.Auth.RequireRecoveryAMR,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publish tags the event with the browser behind ctx so its open session contexts adopt the change.
func (srv *authService) publish(ctx context.Context, event entity.AuthEvent) {
	event.ClientID = deliverycontext.GetClientID(ctx)
	srv.events.Publish(event)
}

// Login resolves the identifier, signs in and loads the profile of the signed-in account.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.ValidateLogin(input); err != nil {
		return nil, err
	}

	email, err := srv.resolver.Resolve(ctx, entity.LoginIdentifier(input.Identifier))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve login identifier")
	}

	session, err := srv.provider.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	profile, err := srv.findProfile(ctx, session.User)
	if err != nil {
		srv.log(ctx).Warn("Failed to load profile after login", slog.Any("userID", session.User.ID), slog.Any("error", err))
	}

	srv.publish(ctx, entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: session.User.ID, Session: session})
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", session.User.ID))

	return &usecase.LoginOutput{Session: session, Profile: profile}, nil
}

// SignUp checks the username, creates the provider account and inserts its profile row.
// If the insert fails the new account is signed out and queued for cleanup.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if err := srv.validator.ValidateSignUp(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username), slog.String("email", input.Email))

	_, err := srv.profileRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, domainerrors.ErrUsernameTaken.WithDetails(input.Username)
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	result, err := srv.provider.SignUp(ctx, input.Email, input.Password, entity.UserMetadata{Username: input.Username})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "signup failed")
	}

	profile, err := srv.profileRepo.Insert(ctx, &entity.UserProfile{
		ID:       result.User.ID,
		Username: input.Username,
		Email:    input.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to insert profile after signup",
			slog.Any("userID", result.User.ID),
			slog.Any("error", err),
		)
		srv.compensateSignUp(ctx, result)

		return nil, errors.Wrap(err, "failed to create profile")
	}

	if result.Session != nil {
		srv.publish(ctx, entity.AuthEvent{Type: entity.AuthEventSignedIn, UserID: result.User.ID, Session: result.Session})
	}
	srv.log(ctx).Debug("Signup completed", slog.Any("userID", result.User.ID), slog.Bool("confirmationPending", result.Session == nil))

	return &usecase.SignUpOutput{
		User:    result.User,
		Profile: profile,
		Session: result.Session,
	}, nil
}

// compensateSignUp signs the orphaned account out and asks the worker to delete it. Both steps are best-effort.
func (srv *authService) compensateSignUp(ctx context.Context, result *service.SignUpResult) {
	if result.Session != nil {
		if err := srv.provider.SignOut(ctx, result.Session.AccessToken); err != nil {
			srv.log(ctx).Warn("Failed to sign out orphaned account", slog.Any("userID", result.User.ID), slog.Any("error", err))
		}
	}

	event := &service.AccountCleanupEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    result.User.ID.String(),
		Email:     result.User.Email,
		Reason:    constants.CleanupReasonProfileInsertFailed,
	}
	if err := srv.publisher.PublishAccountCleanupEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish account cleanup event", slog.Any("userID", result.User.ID), slog.Any("error", err))
	}
}

// RequestPasswordReset sends a reset link that lands on the app's reset-password page.
func (srv *authService) RequestPasswordReset(ctx context.Context, input usecase.ForgotPasswordInput) error {
	if err := srv.validator.ValidateForgotPassword(input); err != nil {
		return err
	}

	if err := srv.provider.RequestPasswordReset(ctx, input.Email, srv.resetRedirectURL); err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to request password reset")
	}

	return nil
}

// EstablishRecoverySession checks the reset-link tokens with the provider and turns them into a session.
func (srv *authService) EstablishRecoverySession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify recovery session")
	}

	session := &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         user,
	}
	if claims, err := srv.verifier.VerifyAccessToken(accessToken); err == nil && claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	srv.publish(ctx, entity.AuthEvent{Type: entity.AuthEventPasswordRecovery, UserID: user.ID, Session: session})

	return session, nil
}

// ResetPassword sets a new password. It needs the session established by a reset link.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if err := srv.validator.ValidateResetPassword(input); err != nil {
		return err
	}

	if input.AccessToken == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.checkRecoverySession(input.AccessToken); err != nil {
		return err
	}

	user, err := srv.provider.UpdatePassword(ctx, input.AccessToken, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password update failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to update password")
	}

	srv.publish(ctx, entity.AuthEvent{
		Type:    entity.AuthEventUserUpdated,
		UserID:  user.ID,
		Session: &entity.Session{AccessToken: input.AccessToken, User: user},
	})
	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// checkRecoverySession rejects sessions that did not come from a reset link, when configured to.
func (srv *authService) checkRecoverySession(accessToken string) error {
	if !srv.requireRecoveryAMR {
		return nil
	}

	claims, err := srv.verifier.VerifyAccessToken(accessToken)
	if errors.Is(err, service.ErrVerificationUnavailable) {
		return nil
	}
	if err != nil {
		return domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}
	if !claims.HasAMR(amrRecovery) {
		return domainerrors.ErrRecoverySessionRequired
	}

	return nil
}

// Logout signs the session out at the provider.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}

	if err := srv.provider.SignOut(ctx, session.AccessToken); err != nil {
		srv.log(ctx).Warn("Sign out failed", slog.String("userID", session.UserID()), slog.Any("error", err))

		return errors.Wrap(err, "failed to sign out")
	}

	if session.User != nil {
		srv.publish(ctx, entity.AuthEvent{Type: entity.AuthEventSignedOut, UserID: session.User.ID})
	}

	return nil
}

// LoadSession verifies the access token locally when possible, otherwise asks the provider.
// An expired or rejected access token is renewed with the refresh token.
func (srv *authService) LoadSession(ctx context.Context, accessToken, refreshToken string) (*usecase.LoadedSession, error) {
	if accessToken == "" && refreshToken == "" {
		return nil, nil
	}

	if accessToken != "" {
		session, err := srv.sessionFromAccessToken(ctx, accessToken, refreshToken)
		if err == nil {
			return &usecase.LoadedSession{Session: session}, nil
		}
		if !isRejectedToken(err) {
			return nil, err
		}
		srv.log(ctx).Debug("Access token rejected, trying refresh", slog.Any("error", err))
	}

	if refreshToken == "" {
		return nil, nil
	}

	session, err := srv.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		var authErr *domainerrors.AuthError
		if errors.As(err, &authErr) {
			srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	srv.publish(ctx, entity.AuthEvent{Type: entity.AuthEventTokenRefreshed, UserID: session.User.ID, Session: session})

	return &usecase.LoadedSession{Session: session, Refreshed: true}, nil
}

func (srv *authService) sessionFromAccessToken(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error) {
	claims, err := srv.verifier.VerifyAccessToken(accessToken)
	switch {
	case err == nil:
		userID, _ := claims.UserID()
		user := &entity.AuthUser{ID: userID, Email: claims.Email}
		if username, ok := claims.UserMetadata["username"].(string); ok {
			user.Metadata.Username = username
		}
		session := &entity.Session{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
			User:         user,
		}
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
			session.ExpiresIn = int(session.ExpiresAt.Sub(srv.now()).Seconds())
		}

		return session, nil

	case errors.Is(err, service.ErrVerificationUnavailable):
		user, err := srv.provider.GetUser(ctx, accessToken)
		if err != nil {
			return nil, err
		}

		return &entity.Session{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
			User:         user,
		}, nil

	default:
		return nil, errors.Wrap(err, "invalid access token")
	}
}

// isRejectedToken tells token problems, which a refresh can fix, from outages, which it cannot.
func isRejectedToken(err error) bool {
	var netErr *domainerrors.NetworkError
	if errors.As(err, &netErr) {
		return false
	}

	var authErr *domainerrors.AuthError
	if errors.As(err, &authErr) {
		return authErr.Status == http.StatusUnauthorized || authErr.Status == http.StatusForbidden
	}

	return true
}

// ResolveState asks the provider who owns the session, then loads that user's profile.
// Any failure of the user check yields the anonymous state.
func (srv *authService) ResolveState(ctx context.Context, session *entity.Session) entity.AuthState {
	if session == nil || session.AccessToken == "" {
		return entity.AnonymousState()
	}

	user, err := srv.provider.GetUser(ctx, session.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Session check failed", slog.Any("error", err))

		return entity.AnonymousState()
	}

	profile, err := srv.findProfile(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Failed to load profile for session", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return entity.AuthenticatedState(user, profile)
}

// findProfile loads the profile of an account; a missing row is not an error.
func (srv *authService) findProfile(ctx context.Context, user *entity.AuthUser) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, user.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Warn("Profile missing for account", slog.Any("userID", user.ID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
