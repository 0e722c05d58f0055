package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// One row per user; user_id is both primary key and upsert conflict key.
type UserLocationModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	// No gorm default tag here: GORM drops zero-value fields that carry one,
	// which would silently turn "disable sharing" inserts into true.
	IsSharing bool `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
