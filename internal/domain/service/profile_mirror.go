package service

import (
	"context"

	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileMirror is a best-effort local copy of authenticated profiles, read for first paint only.
// Implementations swallow their own failures after logging them.
type ProfileMirror interface {
	Get(ctx context.Context, userID uuid.UUID) *entity.UserProfile
	Put(ctx context.Context, profile *entity.UserProfile)
	Delete(ctx context.Context, userID uuid.UUID)
}
