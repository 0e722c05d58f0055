// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
)

// EventRepository defines read access to the event catalog. Event creation
// belongs to the catalog service; the proximity engine only lists candidates
// for the nearby-events feed.
type EventRepository interface {
	// ListUpcomingPublic retrieves public events starting after the given
	// time, ordered by start time ascending.
	ListUpcomingPublic(ctx context.Context, after time.Time) ([]*entity.CommunityEvent, error)
}
