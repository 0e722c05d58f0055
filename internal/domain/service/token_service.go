package service

import (
	"github.com/google/uuid"
)

// TokenService verifies access tokens minted by the identity provider.
// Token issuance (login, refresh) is not this service's job; it only needs
// to resolve a bearer token to a viewer identity.
type TokenService interface {
	// ValidateAccessToken checks signature and expiry and returns the
	// subject user ID.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}
