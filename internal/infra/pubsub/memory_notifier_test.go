package pubsub

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nearby/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier() *MemoryNotifier {
	return NewMemoryNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMemoryNotifier_TopicScopedDelivery(t *testing.T) {
	t.Parallel()

	notifier := newTestNotifier()

	received := make(chan *service.ChangeEvent, 1)
	notifier.Subscribe("location:user-a", func(_ context.Context, event *service.ChangeEvent) {
		received <- event
	})

	other := make(chan *service.ChangeEvent, 1)
	notifier.Subscribe("location:user-b", func(_ context.Context, event *service.ChangeEvent) {
		other <- event
	})

	event := &service.ChangeEvent{
		Kind:       service.ChangeKindLocation,
		UserID:     "user-a",
		OccurredAt: time.Now(),
	}
	require.NoError(t, notifier.PublishChange(context.Background(), event))

	select {
	case got := <-received:
		assert.Equal(t, "location:user-a", got.Topic())
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}

	select {
	case <-other:
		t.Fatal("event leaked to a different topic")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryNotifier_WildcardSubscription(t *testing.T) {
	t.Parallel()

	notifier := newTestNotifier()

	var mu sync.Mutex
	var topics []string
	done := make(chan struct{}, 2)
	notifier.Subscribe("", func(_ context.Context, event *service.ChangeEvent) {
		mu.Lock()
		topics = append(topics, event.Topic())
		mu.Unlock()
		done <- struct{}{}
	})

	require.NoError(t, notifier.PublishChange(context.Background(), &service.ChangeEvent{
		Kind: service.ChangeKindPresence, UserID: "u1",
	}))
	require.NoError(t, notifier.PublishChange(context.Background(), &service.ChangeEvent{
		Kind: service.ChangeKindFriendship, UserID: "u2",
	}))

	for range 2 {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("wildcard subscriber missed an event")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"presence:u1", "friendship:u2"}, topics)
}

func TestMemoryNotifier_Unsubscribe(t *testing.T) {
	t.Parallel()

	notifier := newTestNotifier()

	received := make(chan *service.ChangeEvent, 1)
	unsubscribe := notifier.Subscribe("location:u", func(_ context.Context, event *service.ChangeEvent) {
		received <- event
	})
	unsubscribe()

	require.NoError(t, notifier.PublishChange(context.Background(), &service.ChangeEvent{
		Kind: service.ChangeKindLocation, UserID: "u",
	}))

	select {
	case <-received:
		t.Fatal("unsubscribed handler still received an event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryNotifier_PublishAfterClose(t *testing.T) {
	t.Parallel()

	notifier := newTestNotifier()

	received := make(chan *service.ChangeEvent, 1)
	notifier.Subscribe("location:u", func(_ context.Context, event *service.ChangeEvent) {
		received <- event
	})

	require.NoError(t, notifier.Close())
	require.NoError(t, notifier.PublishChange(context.Background(), &service.ChangeEvent{
		Kind: service.ChangeKindLocation, UserID: "u",
	}))

	select {
	case <-received:
		t.Fatal("closed notifier must not deliver")
	case <-time.After(50 * time.Millisecond):
	}
}
