package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityUsecase defines the read-side feed queries. All results are
// computed fresh per request from the stores; nothing here is cached or
// persisted.
type ProximityUsecase interface {
	// NearbyFriends assembles the viewer's friends-on-a-map feed, privacy
	// gated and sorted: online friends by distance ascending, then online
	// friends without a distance, then offline friends, ties by user ID.
	NearbyFriends(ctx context.Context, viewerID uuid.UUID) ([]*entity.ProximityResult, error)

	// NearbyEvents lists upcoming public events around the viewer. A
	// non-positive radius selects the configured default. Events whose venue
	// cannot be geocoded are always included.
	NearbyEvents(ctx context.Context, viewerID uuid.UUID, radiusKm float64) ([]*entity.NearbyEvent, error)

	// FriendPresence returns the online/offline status of the viewer's
	// accepted friends.
	FriendPresence(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]entity.PresenceStatus, error)
}
