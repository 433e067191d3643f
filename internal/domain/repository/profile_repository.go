// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no row in the users table matches.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository accesses the users table keyed by the identity provider's user id.
type ProfileRepository interface {
	// Insert creates the profile row. A taken username yields domainerrors.ErrUsernameTaken.
	Insert(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error)

	// FindByID retrieves the profile of an identity provider account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// FindByUsername retrieves the profile with exactly this username.
	FindByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
}
