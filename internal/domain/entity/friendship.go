// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus represents the state of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipPending indicates the request has not been answered yet.
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipAccepted indicates a mutual friendship; only accepted edges
	// feed the proximity engine.
	FriendshipAccepted FriendshipStatus = "accepted"
	// FriendshipRejected indicates the addressee declined the request.
	FriendshipRejected FriendshipStatus = "rejected"
)

// String returns the string representation of the FriendshipStatus.
func (s FriendshipStatus) String() string {
	return string(s)
}

// IsValid checks if the FriendshipStatus is a valid value.
func (s FriendshipStatus) IsValid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted, FriendshipRejected:
		return true
	default:
		return false
	}
}

// Friendship is an edge between two identities with a canonical
// (requester, addressee) pair. The request workflow itself lives in the
// social-graph service; this engine only reads the edges.
type Friendship struct {
	ID          uuid.UUID        // The Global Unique Identifier (GUID) for the edge.
	RequesterID uuid.UUID        // The identity that initiated the request.
	AddresseeID uuid.UUID        // The identity that received the request.
	Status      FriendshipStatus // pending, accepted or rejected.
	CreatedAt   time.Time        // Timestamp of when the edge was created.
	UpdatedAt   time.Time        // Timestamp of the last status transition.
}

// Friend is the minimal profile of an accepted friend, as joined from the
// social graph for feed assembly.
type Friend struct {
	UserID      uuid.UUID // The friend's identity.
	DisplayName string    // The friend's display name.
	AvatarURL   string    // Avatar URL; empty when the friend has none.
}
