package service

import (
	"context"
	"time"
)

// ChangeKind identifies which upstream table changed.
type ChangeKind string

const (
	// ChangeKindLocation covers position reports and sharing toggles.
	ChangeKindLocation ChangeKind = "location"
	// ChangeKindFriendship covers social-graph edge transitions.
	ChangeKindFriendship ChangeKind = "friendship"
	// ChangeKindPresence covers online/offline transitions.
	ChangeKindPresence ChangeKind = "presence"
)

// ChangeEvent is the invalidation payload fanned out to subscribers.
// It carries only the changed entity's primary key; consumers re-fetch
// instead of patching, so duplicates and reordering are harmless.
type ChangeEvent struct {
	RequestID  string     `json:"request_id,omitempty"` // For distributed tracing
	Kind       ChangeKind `json:"kind"`
	UserID     string     `json:"user_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Topic returns the scoped topic string, e.g. "location:{user_id}".
func (e *ChangeEvent) Topic() string {
	return string(e.Kind) + ":" + e.UserID
}

// ChangePublisher defines the interface for publishing change events.
// Delivery is fire-and-forget, at-least-once, with no ordering guarantee.
type ChangePublisher interface {
	// PublishChange publishes an invalidation event.
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// ChangeHandler consumes a change event. Handlers must be idempotent.
type ChangeHandler func(ctx context.Context, event *ChangeEvent)

// ChangeSubscriber is implemented by in-process notifiers that support
// topic-scoped subscriptions alongside publishing.
type ChangeSubscriber interface {
	// Subscribe registers a handler for a topic and returns an unsubscribe
	// function. The empty topic subscribes to every event.
	Subscribe(topic string, handler ChangeHandler) (unsubscribe func())
}
