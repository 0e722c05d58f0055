// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation is the single durable position row for a user.
// It is overwritten on every report, never appended.
// Coordinates are nullable: a user who has never reported, or whose device
// denied location access, simply has no position. That is a valid state.
type UserLocation struct {
	UserID    uuid.UUID // The owning identity; unique key for the row.
	Latitude  *float64  // WGS84 latitude in degrees, nil when no fix is stored.
	Longitude *float64  // WGS84 longitude in degrees, nil when no fix is stored.
	IsSharing bool      // Ghost mode flag; false means nothing is exposed to anyone.
	UpdatedAt time.Time // Timestamp of the last report or sharing toggle.
}

// Coordinates returns the stored position, or nil when either component is absent.
func (l *UserLocation) Coordinates() *Coordinates {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return nil
	}

	return &Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude}
}
