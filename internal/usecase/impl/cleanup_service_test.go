package impl

import (
	"context"
	"testing"

	"zephyr/internal/domain/constants"
	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/repository"
	"zephyr/internal/domain/service"
	mockRepo "zephyr/internal/mocks/repository"
	mockService "zephyr/internal/mocks/service"
	"zephyr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountCleanupService_CleanupAccount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	event := &service.AccountCleanupEvent{
		UserID: userID.String(),
		Email:  "a@x.com",
		Reason: constants.CleanupReasonProfileInsertFailed,
	}

	newService := func(t *testing.T) (usecase.AccountCleanupUsecase, *mockService.MockIdentityProvider, *mockRepo.MockProfileRepository) {
		provider := mockService.NewMockIdentityProvider(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)

		return NewAccountCleanupService(AccountCleanupServiceParams{
			Provider:    provider,
			ProfileRepo: profileRepo,
			Logger:      newTestLogger(),
		}), provider, profileRepo
	}

	t.Run("deletes an account without profile", func(t *testing.T) {
		svc, provider, profileRepo := newService(t)

		profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound).Once()
		provider.EXPECT().DeleteUser(mock.Anything, userID).Return(nil).Once()

		assert.NoError(t, svc.CleanupAccount(ctx, event))
	})

	t.Run("keeps an account whose profile exists", func(t *testing.T) {
		svc, provider, profileRepo := newService(t)

		profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.UserProfile{ID: userID}, nil).Once()

		assert.NoError(t, svc.CleanupAccount(ctx, event))
		provider.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("malformed user id is not retryable", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.CleanupAccount(ctx, &service.AccountCleanupEvent{UserID: "not-a-uuid"})

		assert.ErrorIs(t, err, usecase.ErrInvalidCleanupEvent)
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		svc, _, profileRepo := newService(t)
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "find by id")

		profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, dbErr).Once()

		err := svc.CleanupAccount(ctx, event)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, usecase.ErrInvalidCleanupEvent)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		svc, provider, profileRepo := newService(t)
		netErr := domainerrors.NewNetworkError(errors.New("refused"))

		profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound).Once()
		provider.EXPECT().DeleteUser(mock.Anything, userID).Return(netErr).Once()

		assert.ErrorIs(t, svc.CleanupAccount(ctx, event), netErr)
	})
}
