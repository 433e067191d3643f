package impl

import (
	"context"
	"log/slog"

	deliverycontext "zephyr/internal/delivery/context"
	"zephyr/internal/domain/repository"
	"zephyr/internal/domain/service"
	"zephyr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountCleanupService deletes provider accounts whose signup never produced a profile row.
type accountCleanupService struct {
	provider    service.IdentityProvider
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// AccountCleanupServiceParams holds dependencies for accountCleanupService, injected by Fx
type AccountCleanupServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAccountCleanupService is the constructor for accountCleanupService.
func NewAccountCleanupService(params AccountCleanupServiceParams) usecase.AccountCleanupUsecase {
	return &accountCleanupService{
		provider:    params.Provider,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *accountCleanupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CleanupAccount deletes the account unless a profile row exists for it by now.
func (srv *accountCleanupService) CleanupAccount(ctx context.Context, event *service.AccountCleanupEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidCleanupEvent, "user id %q: %v", event.UserID, err)
	}

	_, err = srv.profileRepo.FindByID(ctx, userID)
	if err == nil {
		srv.log(ctx).Info("Profile exists, keeping account", slog.Any("userID", userID))

		return nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(err, "failed to check profile before cleanup")
	}

	if err := srv.provider.DeleteUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete orphaned account")
	}

	srv.log(ctx).Info("Deleted orphaned account",
		slog.Any("userID", userID),
		slog.String("email", event.Email),
		slog.String("reason", event.Reason),
	)

	return nil
}
