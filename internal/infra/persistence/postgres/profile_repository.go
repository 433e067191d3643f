// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"zephyr/internal/domain/entity"
	domainerrors "zephyr/internal/domain/errors"
	"zephyr/internal/domain/repository"
	"zephyr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Insert persists a new profile row. Only the username index turns a duplicate into a conflict;
// any other duplicate, such as a reused id, is a database error.
func (repo *profileRepository) Insert(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return nil, insertError(err, profile.Username)
	}

	return toProfileDomain(profileM), nil
}

// FindByID retrieves the profile keyed by the identity provider's user id.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUsername retrieves the profile with exactly this username. No case folding is applied.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

func insertError(err error, username string) error {
	if constraint, ok := uniqueViolation(err); ok && constraint == model.UsernameUniqueIndex {
		return domainerrors.ErrUsernameTaken.WithDetails(username)
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to insert profile")
}

func toProfileDomain(data *model.ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		Bio:       data.Bio,
		AvatarURL: data.AvatarURL,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		Bio:       data.Bio,
		AvatarURL: data.AvatarURL,
	}
}
