// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when no edge exists between two users.
	ErrFriendshipNotFound = errors.New("friendship not found")
)

// FriendshipRepository defines read access to the social graph. The request
// workflow (create, accept, reject) is owned by the social-graph service;
// the proximity engine only consumes edge status.
type FriendshipRepository interface {
	// FindBetween retrieves the edge between two users, in either direction.
	// Returns ErrFriendshipNotFound when no edge exists.
	FindBetween(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error)

	// ListAcceptedFriends retrieves the accepted friends of a user joined
	// with their display profile, for feed assembly.
	ListAcceptedFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Friend, error)

	// ListAcceptedFriendIDs retrieves only the IDs of a user's accepted
	// friends. Used for change-event fan-out.
	ListAcceptedFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
