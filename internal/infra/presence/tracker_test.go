package presence

import (
	"sync"
	"testing"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTracker_RegisterDeregister(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	userID := uuid.New()

	assert.False(t, tracker.IsOnline(userID))

	sessionID, becameOnline := tracker.Register(userID)
	assert.True(t, becameOnline)
	assert.True(t, tracker.IsOnline(userID))

	becameOffline := tracker.Deregister(userID, sessionID)
	assert.True(t, becameOffline)
	assert.False(t, tracker.IsOnline(userID))
}

func TestTracker_MultipleSessionsCollapseToBoolean(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	userID := uuid.New()

	phone, becameOnline := tracker.Register(userID)
	assert.True(t, becameOnline)

	laptop, becameOnline := tracker.Register(userID)
	assert.False(t, becameOnline, "second session must not re-trigger online")

	// Closing one of two sessions must not flicker the user offline.
	assert.False(t, tracker.Deregister(userID, phone))
	assert.True(t, tracker.IsOnline(userID))

	assert.True(t, tracker.Deregister(userID, laptop))
	assert.False(t, tracker.IsOnline(userID))
}

func TestTracker_DeregisterUnknownSession(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	userID := uuid.New()

	assert.False(t, tracker.Deregister(userID, uuid.New()))

	sessionID, _ := tracker.Register(userID)
	assert.False(t, tracker.Deregister(userID, uuid.New()))
	assert.True(t, tracker.IsOnline(userID))

	assert.True(t, tracker.Deregister(userID, sessionID))
	// Double deregister of the same handle is a no-op.
	assert.False(t, tracker.Deregister(userID, sessionID))
}

func TestTracker_Snapshot(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	online := uuid.New()
	offline := uuid.New()

	tracker.Register(online)
	sessionID, _ := tracker.Register(offline)
	tracker.Deregister(offline, sessionID)

	snapshot := tracker.Snapshot()
	assert.Equal(t, entity.PresenceOnline, snapshot[online])

	_, present := snapshot[offline]
	assert.False(t, present, "users without sessions are absent, meaning offline")
}

func TestTracker_ConcurrentRegistrations(t *testing.T) {
	t.Parallel()

	tracker := NewTracker()
	userID := uuid.New()

	const sessions = 64

	var wg sync.WaitGroup
	sessionIDs := make([]uuid.UUID, sessions)
	onlineTransitions := make([]bool, sessions)

	for i := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessionIDs[i], onlineTransitions[i] = tracker.Register(userID)
		}()
	}
	wg.Wait()

	transitions := 0
	for _, becameOnline := range onlineTransitions {
		if becameOnline {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions, "exactly one registration wins the online transition")
	assert.True(t, tracker.IsOnline(userID))

	for i := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Deregister(userID, sessionIDs[i])
		}()
	}
	wg.Wait()

	assert.False(t, tracker.IsOnline(userID))
}
