package usecase

import (
	"context"
	"errors"

	"zephyr/internal/domain/service"
)

// ErrInvalidCleanupEvent marks a cleanup event that can never succeed and must not be retried.
var ErrInvalidCleanupEvent = errors.New("invalid account cleanup event")

// AccountCleanupUsecase removes provider accounts left without a profile row by a failed signup.
type AccountCleanupUsecase interface {
	CleanupAccount(ctx context.Context, event *service.AccountCleanupEvent) error
}
