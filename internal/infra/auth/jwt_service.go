// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"zephyr/config"
	"zephyr/internal/domain/service"
)

// jwtService verifies identity provider access tokens signed with the project's HS256 JWT secret.
type jwtService struct {
	secret []byte
	parser *jwt.Parser
}

// noopVerifier is used when no JWT secret is configured; callers fall back to the provider.
type noopVerifier struct{}

func (noopVerifier) VerifyAccessToken(string) (*service.Claims, error) {
	return nil, service.ErrVerificationUnavailable
}

// NewJWTService is the constructor for jwtService.
// Without supabase.jwtSecret every verification reports ErrVerificationUnavailable.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenVerifier {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		logger.Info("Supabase JWT secret not configured, sessions are verified by the identity provider")

		return noopVerifier{}
	}

	return &jwtService{
		secret: []byte(cfg.Supabase.JWTSecret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// VerifyAccessToken checks the signature and expiry of an access token and returns its claims.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, "verify access token")
		}

		return nil, errors.Wrap(err, "failed to parse access token")
	}

	if _, err := claims.UserID(); err != nil {
		return nil, errors.Wrap(err, "access token subject is not a user id")
	}

	return claims, nil
}
