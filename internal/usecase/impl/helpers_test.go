package impl

import (
	"io"
	"log/slog"
	"testing"

	"zephyr/config"
	domainerrors "zephyr/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App:  &config.AppConfig{URL: "http://localhost:3000/"},
		Auth: &config.AuthConfig{PasswordMinLength: 8},
		Routes: &config.RoutesConfig{
			Protected:  []string{"/profile", "/results", "/settings"},
			AuthRoutes: []string{"/login"},
			Login:      "/login",
			Home:       "/",
		},
	}
}

// requireAppError asserts that err carries an AppError with the expected code and message.
func requireAppError(t *testing.T, err error, expected domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, expected.ErrorCode(), appErr.ErrorCode())
	require.Equal(t, expected.Message(), appErr.Message())
}
