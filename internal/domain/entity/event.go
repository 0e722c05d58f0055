// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityEvent is a public happening with a free-text venue.
// Event creation belongs to the event catalog service; this engine only
// reads upcoming public events for the nearby-events feed.
type CommunityEvent struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the event.
	Title        string    // Human-readable event title.
	LocationText string    // Free-text venue, resolved through the gazetteer when possible.
	IsPublic     bool      // Only public events feed the proximity engine.
	StartTime    time.Time // When the event starts; only future events are listed.
	CreatedAt    time.Time // Timestamp of when this event was created.
}
