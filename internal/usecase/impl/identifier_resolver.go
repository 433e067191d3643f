package impl

import (
	"context"
	"log/slog"

	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/repository"
	"zephyr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identifierResolver turns usernames into the email address the identity provider signs in with.
type identifierResolver struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// IdentifierResolverParams holds dependencies for identifierResolver, injected by Fx
type IdentifierResolverParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewIdentifierResolver is the constructor for identifierResolver.
func NewIdentifierResolver(params IdentifierResolverParams) usecase.IdentifierResolver {
	return &identifierResolver{
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (r *identifierResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve returns email-shaped identifiers unchanged. Anything else is looked up once as an exact username.
func (r *identifierResolver) Resolve(ctx context.Context, identifier entity.LoginIdentifier) (string, error) {
	if identifier.Kind() == entity.IdentifierEmail {
		return identifier.String(), nil
	}

	profile, err := r.profileRepo.FindByUsername(ctx, identifier.String())
	if errors.Is(err, repository.ErrProfileNotFound) {
		r.log(ctx).Debug("Username not found", slog.String("username", identifier.String()))

		return "", domainerrors.ErrUsernameNotFound.WithDetails(identifier.String())
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up username")
	}

	return profile.Email, nil
}
