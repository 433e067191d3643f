package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"zephyr/config"
	"zephyr/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProfileEncoding(t *testing.T) {
	bio := "runs on weekends"
	profile := &entity.UserProfile{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "a@x.com",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Bio:       &bio,
	}

	data, err := encodeProfile(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "avatar_url")

	decoded, err := decodeProfile(data)
	require.NoError(t, err)
	assert.Equal(t, profile, decoded)
}

func TestDecodeProfile_Garbage(t *testing.T) {
	_, err := decodeProfile([]byte("{not json"))

	assert.Error(t, err)
}

func TestProfileKey(t *testing.T) {
	id := uuid.MustParse("7f1c2a8e-3c1b-4f7e-9a55-0c4b9d7e2f10")

	assert.Equal(t, "zephyr:profile:7f1c2a8e-3c1b-4f7e-9a55-0c4b9d7e2f10", profileKey(id))
}

func TestNewProfileMirror(t *testing.T) {
	t.Run("disabled without url", func(t *testing.T) {
		mirror, err := NewProfileMirror(MirrorParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{},
			Logger: newTestLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, noopMirror{}, mirror)
		assert.Nil(t, mirror.Get(context.Background(), uuid.New()))
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewProfileMirror(MirrorParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Redis: &config.RedisConfig{URL: "http://not-redis"}},
			Logger: newTestLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("redis url", func(t *testing.T) {
		mirror, err := NewProfileMirror(MirrorParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Redis: &config.RedisConfig{URL: "redis://localhost:6379/2", MirrorTTL: time.Hour}},
			Logger: newTestLogger(),
		})

		require.NoError(t, err)
		redisMirror, ok := mirror.(*redisMirror)
		require.True(t, ok)
		assert.Equal(t, time.Hour, redisMirror.ttl)
		assert.Equal(t, 2, redisMirror.client.Options().DB)
	})
}

func TestRedisMirror_SwallowsFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	mirror := newRedisMirror(client, 0, newTestLogger())
	assert.Equal(t, defaultTTL, mirror.ttl)

	ctx := context.Background()
	profile := &entity.UserProfile{ID: uuid.New(), Username: "alice"}

	assert.NotPanics(t, func() {
		mirror.Put(ctx, profile)
		mirror.Delete(ctx, profile.ID)
	})
	assert.Nil(t, mirror.Get(ctx, profile.ID))
}
