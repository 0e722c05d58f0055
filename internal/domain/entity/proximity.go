// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProximityResult is one friend's row in the nearby-friends view.
// It is derived fresh per request and never stored. Coordinates and
// DistanceKm are nil when the friend is hidden by the privacy gate or has
// no usable position; the friend still appears, only the labels blank out.
type ProximityResult struct {
	FriendID    uuid.UUID      `json:"id"`
	DisplayName string         `json:"name"`
	AvatarURL   *string        `json:"avatar_url"`
	Coordinates *Coordinates   `json:"coordinates"`
	DistanceKm  *float64       `json:"distance_km"`
	Status      PresenceStatus `json:"status"`
}

// NearbyEvent is one event's row in the nearby-events view.
// Events whose venue cannot be geocoded keep nil coordinates and distance
// but are still listed.
type NearbyEvent struct {
	EventID      uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	LocationText string       `json:"location_text"`
	Coordinates  *Coordinates `json:"coordinates"`
	DistanceKm   *float64     `json:"distance_km"`
	StartTime    time.Time    `json:"start_time"`
}
