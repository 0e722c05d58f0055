package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// PrivacyGate is the single choke point between a stored location row and
// another user's eyes. No coordinate reaches a response without passing
// through Project.
type PrivacyGate interface {
	// IsVisible decides whether the viewer may see the target's position:
	// the target must be sharing and the pair must hold an accepted
	// friendship. Users always see themselves.
	IsVisible(ctx context.Context, viewerID uuid.UUID, target *entity.UserLocation) (bool, error)

	// Project returns the coordinates the viewer is allowed to see: nil when
	// not visible or no fix is stored, jittered when an obfuscation radius
	// is configured, exact otherwise.
	Project(ctx context.Context, viewerID uuid.UUID, target *entity.UserLocation) (*entity.Coordinates, error)

	// WithinDiscoveryRadius reports whether two positions are within the
	// given radius. Missing coordinates on either side count as within:
	// uncertainty never excludes anybody.
	WithinDiscoveryRadius(viewer, target *entity.Coordinates, radiusKm float64) bool
}
