package service

import (
	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceTracker tracks which users are currently connected, independent of
// location. State is a reference-counted arena of active session handles per
// user, collapsed to a boolean: a user with any live session is online. Not
// persisted; rebuilt empty on process restart.
type PresenceTracker interface {
	// Register records a new active session for the user and returns its
	// handle. becameOnline is true when this was the user's first session.
	Register(userID uuid.UUID) (sessionID uuid.UUID, becameOnline bool)

	// Deregister removes a session handle. becameOffline is true when this
	// was the user's last session. Unknown handles are ignored.
	Deregister(userID uuid.UUID, sessionID uuid.UUID) (becameOffline bool)

	// IsOnline reports whether the user has at least one active session.
	IsOnline(userID uuid.UUID) bool

	// Snapshot returns the current user-to-status mapping. Users absent from
	// the map are offline.
	Snapshot() map[uuid.UUID]entity.PresenceStatus
}
