// Package presence implements the in-memory session tracker. Presence is a
// reference count of live sessions per user collapsed to a boolean, so a
// user with a phone and a laptop connected stays online until the last
// session closes. Nothing here is persisted; a restart starts empty.
package presence

import (
	"sync"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/google/uuid"
)

type tracker struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[uuid.UUID]struct{} // user -> live session handles
}

// NewTracker creates an empty presence tracker.
func NewTracker() service.PresenceTracker {
	return &tracker{
		sessions: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

// Register records a new session handle for the user.
func (t *tracker) Register(userID uuid.UUID) (uuid.UUID, bool) {
	sessionID := uuid.New()

	t.mu.Lock()
	defer t.mu.Unlock()

	handles, ok := t.sessions[userID]
	if !ok {
		handles = make(map[uuid.UUID]struct{})
		t.sessions[userID] = handles
	}
	handles[sessionID] = struct{}{}

	return sessionID, len(handles) == 1
}

// Deregister drops a session handle. The user goes offline only when the
// last handle is gone, which is what keeps concurrent tabs from flickering
// each other offline.
func (t *tracker) Deregister(userID uuid.UUID, sessionID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	handles, ok := t.sessions[userID]
	if !ok {
		return false
	}
	if _, ok := handles[sessionID]; !ok {
		return false
	}

	delete(handles, sessionID)
	if len(handles) > 0 {
		return false
	}

	delete(t.sessions, userID)

	return true
}

// IsOnline reports whether the user has at least one live session.
func (t *tracker) IsOnline(userID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.sessions[userID]) > 0
}

// Snapshot returns the current connectivity mapping. Absence means offline.
func (t *tracker) Snapshot() map[uuid.UUID]entity.PresenceStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make(map[uuid.UUID]entity.PresenceStatus, len(t.sessions))
	for userID, handles := range t.sessions {
		if len(handles) > 0 {
			snapshot[userID] = entity.PresenceOnline
		}
	}

	return snapshot
}
