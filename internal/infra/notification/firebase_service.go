// Package notification delivers change hints to user devices through FCM.
package notification

import (
	"context"
	"fmt"

	"nearby/config"
	"nearby/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance.
// Devices subscribe to their owner's per-user topic at login, so the engine
// never needs to track device tokens itself.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// userTopic returns the per-user FCM topic a user's devices listen on.
func userTopic(userID uuid.UUID) string {
	return "user-" + userID.String()
}

// SendToUser delivers a data-only message to all of the user's devices.
// The payload carries change hints, never coordinates; clients refetch the
// feed over the authenticated API when they receive one.
func (s *firebaseService) SendToUser(ctx context.Context, userID uuid.UUID, data map[string]string) error {
	message := &messaging.Message{
		Topic: userTopic(userID),
		Data:  data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification to user %s: %w", userID, err)
	}

	return nil
}
