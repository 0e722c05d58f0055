package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationService delivers data pushes to a user's devices. The worker
// uses it to tell clients that their nearby view went stale; clients re-fetch
// rather than trusting the payload.
type NotificationService interface {
	// SendToUser sends a data-only message to every device subscribed to the
	// user's notification topic.
	SendToUser(ctx context.Context, userID uuid.UUID, data map[string]string) error
}
