package model

import (
	"time"

	"github.com/google/uuid"
)

// CommunityEventModel is the GORM-specific struct for the 'community_events'
// table. Venues are stored as free text and resolved to coordinates at read
// time by the gazetteer.
type CommunityEventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title        string    `gorm:"type:varchar(200);not null"`
	LocationText string    `gorm:"type:varchar(255);not null"`
	IsPublic     bool      `gorm:"not null;default:true;index"`
	StartTime    time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommunityEventModel) TableName() string {
	return "community_events"
}
