// Package cache keeps a best-effort copy of signed-in profiles for first paint.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"zephyr/config"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/lifecycle"
	"zephyr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "zephyr:profile:"
	defaultTTL = 24 * time.Hour
)

// MirrorParams holds dependencies for the profile mirror, injected by Fx
type MirrorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileMirror returns a Redis-backed mirror, or a no-op one when redis.url is empty.
func NewProfileMirror(params MirrorParams) (service.ProfileMirror, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, profile mirror disabled")

		return noopMirror{}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}

	client := redis.NewClient(opts)
	mirror := newRedisMirror(client, cfg.MirrorTTL, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, profile mirror will miss", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return mirror, nil
}

type redisMirror struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func newRedisMirror(client *redis.Client, ttl time.Duration, logger *slog.Logger) *redisMirror {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisMirror{client: client, ttl: ttl, logger: logger}
}

// mirrorRecord is the stored JSON shape of a profile.
type mirrorRecord struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Bio       *string   `json:"bio,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

func profileKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func encodeProfile(profile *entity.UserProfile) ([]byte, error) {
	return json.Marshal(mirrorRecord{
		ID:        profile.ID,
		Username:  profile.Username,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt,
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
	})
}

func decodeProfile(data []byte) (*entity.UserProfile, error) {
	var record mirrorRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.UserProfile{
		ID:        record.ID,
		Username:  record.Username,
		Email:     record.Email,
		CreatedAt: record.CreatedAt,
		Bio:       record.Bio,
		AvatarURL: record.AvatarURL,
	}, nil
}

func (m *redisMirror) Get(ctx context.Context, userID uuid.UUID) *entity.UserProfile {
	data, err := m.client.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		m.logger.Warn("Failed to read mirrored profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil
	}

	profile, err := decodeProfile(data)
	if err != nil {
		m.logger.Warn("Discarding unreadable mirrored profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil
	}

	return profile
}

func (m *redisMirror) Put(ctx context.Context, profile *entity.UserProfile) {
	data, err := encodeProfile(profile)
	if err != nil {
		m.logger.Warn("Failed to encode profile for mirror", slog.Any("userID", profile.ID), slog.Any("error", err))

		return
	}

	if err := m.client.Set(ctx, profileKey(profile.ID), data, m.ttl).Err(); err != nil {
		m.logger.Warn("Failed to mirror profile", slog.Any("userID", profile.ID), slog.Any("error", err))
	}
}

func (m *redisMirror) Delete(ctx context.Context, userID uuid.UUID) {
	if err := m.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		m.logger.Warn("Failed to delete mirrored profile", slog.Any("userID", userID), slog.Any("error", err))
	}
}

type noopMirror struct{}

func (noopMirror) Get(context.Context, uuid.UUID) *entity.UserProfile { return nil }

func (noopMirror) Put(context.Context, *entity.UserProfile) {}

func (noopMirror) Delete(context.Context, uuid.UUID) {}
