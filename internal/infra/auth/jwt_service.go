// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"nearby/config"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Token issuance is owned by the account service; this
// engine only verifies access tokens minted with the shared secret.
type jwtService struct {
	accessSecret string // Secret key shared with the token issuer.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateAccessToken verifies the token signature and expiry, and extracts
// the authenticated user ID from the subject claim.
func (s *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("access token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "access token has no subject claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "access token subject is not a user ID")
	}

	return userID, nil
}
