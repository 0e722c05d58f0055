// Package usecase defines the application-level interfaces that the delivery
// layer depends on.
package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput represents a device position report.
type ReportLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	IsSharing bool    `json:"is_sharing"`
}

// LocationUsecase defines position-report and ghost-mode use cases.
type LocationUsecase interface {
	// ReportLocation upserts the caller's position row and fans out a
	// location change event. Reports arriving while a previous report for
	// the same user is still in flight are dropped; accepted is false in
	// that case and the caller treats it as success.
	ReportLocation(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (accepted bool, err error)

	// SetSharing toggles ghost mode without touching stored coordinates and
	// returns the resulting row.
	SetSharing(ctx context.Context, userID uuid.UUID, sharing bool) (*entity.UserLocation, error)

	// GetLocation retrieves the caller's own stored row.
	GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)
}
