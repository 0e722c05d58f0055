package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"nearby/internal/domain/service"
)

// MemoryNotifier is the in-process change notifier: publish fans out to
// topic-scoped handlers on their own goroutines. Delivery is fire-and-forget
// with no ordering guarantee, same contract as the remote providers, so
// handlers must be idempotent. Used for single-process deployments and tests.
type MemoryNotifier struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]service.ChangeHandler // topic -> subscription id -> handler
	logger   *slog.Logger
	closed   bool
}

// NewMemoryNotifier creates an empty in-process notifier.
func NewMemoryNotifier(logger *slog.Logger) *MemoryNotifier {
	return &MemoryNotifier{
		handlers: make(map[string]map[int]service.ChangeHandler),
		logger:   logger,
	}
}

// PublishChange dispatches the event to subscribers of its topic and to
// wildcard subscribers. Handlers run asynchronously; a slow consumer never
// blocks the publisher.
func (n *MemoryNotifier) PublishChange(ctx context.Context, event *service.ChangeEvent) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return nil
	}

	for _, topic := range []string{event.Topic(), ""} {
		for _, handler := range n.handlers[topic] {
			go handler(ctx, event)
		}
	}

	n.logger.Debug("[MemoryPubSub] Change event dispatched",
		slog.String("topic", event.Topic()),
	)

	return nil
}

// Subscribe registers a handler for a topic; the empty topic receives every
// event. The returned function removes the subscription.
func (n *MemoryNotifier) Subscribe(topic string, handler service.ChangeHandler) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.handlers[topic] == nil {
		n.handlers[topic] = make(map[int]service.ChangeHandler)
	}
	n.handlers[topic][id] = handler

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.handlers[topic], id)
		if len(n.handlers[topic]) == 0 {
			delete(n.handlers, topic)
		}
	}
}

// Close drops all subscriptions; later publishes become no-ops.
func (n *MemoryNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	n.handlers = make(map[string]map[int]service.ChangeHandler)

	return nil
}
