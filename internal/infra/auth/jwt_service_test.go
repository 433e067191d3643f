package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"zephyr/config"
	"zephyr/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_supabase_jwt_secret_very_long_for_testing"

func newTestVerifier(t *testing.T, secret string) service.TokenVerifier {
	t.Helper()

	cfg := &config.Config{Supabase: &config.SupabaseConfig{JWTSecret: secret}}

	return NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_VerifyAccessToken(t *testing.T) {
	verifier := newTestVerifier(t, testJWTSecret)
	userID := uuid.New()

	token := signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "a@x.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"amr": []map[string]any{
			{"method": "recovery", "timestamp": time.Now().Unix()},
		},
		"user_metadata": map[string]any{"username": "alice"},
	})

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, claims.HasAMR("recovery"))
	assert.False(t, claims.HasAMR("password"))
	assert.Equal(t, "alice", claims.UserMetadata["username"])
}

func TestJWTService_ExpiredToken(t *testing.T) {
	verifier := newTestVerifier(t, testJWTSecret)

	token := signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	claims, err := verifier.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	verifier := newTestVerifier(t, testJWTSecret)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, "another_secret_that_is_long_enough", jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "wrong algorithm", token: signToken(t, testJWTSecret, jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{name: "missing expiry", token: signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": uuid.NewString(),
		})},
		{name: "subject is not a uuid", token: signToken(t, testJWTSecret, jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "anon",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
			assert.NotErrorIs(t, err, service.ErrTokenExpired)
		})
	}
}

func TestJWTService_WithoutSecret(t *testing.T) {
	verifier := newTestVerifier(t, "")

	claims, err := verifier.VerifyAccessToken("anything")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrVerificationUnavailable)
}
