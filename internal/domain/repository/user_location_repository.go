// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrUserLocationNotFound is returned when a user has no stored location row.
	ErrUserLocationNotFound = errors.New("user location not found")
)

// UserLocationRepository defines the interface for the single-row-per-user
// position table. The conflict key is always user_id: writes upsert, they
// never create duplicate rows.
type UserLocationRepository interface {
	// Upsert writes the user's position row, creating it on first report and
	// overwriting it afterwards.
	Upsert(ctx context.Context, location *entity.UserLocation) error

	// SetSharing updates the sharing flag without touching coordinates, so a
	// re-enabled user instantly regains their previous fix. A missing row is
	// created with null coordinates. Returns the resulting row.
	SetSharing(ctx context.Context, userID uuid.UUID, sharing bool, updatedAt time.Time) (*entity.UserLocation, error)

	// FindByUserID retrieves a user's location row.
	// Returns ErrUserLocationNotFound when the user never reported.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// FindByUserIDs retrieves location rows for a set of users in one query.
	// Users without a row are simply absent from the result.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserLocation, error)

	// Delete removes a user's location row. Only used on account deletion.
	Delete(ctx context.Context, userID uuid.UUID) error
}
