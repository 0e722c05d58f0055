package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel is the GORM-specific struct for the 'friendships' table.
// The (requester_id, addressee_id) pair is canonical and unique; the edge is
// written by the social-graph service and read here.
type FriendshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index"`
	AddresseeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}

// UserProfileModel is the GORM-specific struct for the 'user_profiles' table,
// read-only here for joining friend display data into the feed.
type UserProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	AvatarURL   string    `gorm:"type:text"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
