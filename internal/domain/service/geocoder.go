package service

import (
	"nearby/internal/domain/entity"
	"nearby/internal/errors"
)

// ErrPlaceNotFound is the negative result of a geocoding lookup. It is not a
// failure: callers display a generic label when a name cannot be resolved.
var ErrPlaceNotFound = errors.New("place not found")

// Geocoder converts free-text place names to coordinates over a static
// gazetteer, and back.
type Geocoder interface {
	// Geocode resolves a place name to coordinates.
	// Returns ErrPlaceNotFound when nothing in the gazetteer matches.
	Geocode(text string) (*entity.Coordinates, error)

	// ReverseGeocode labels a position with the nearest gazetteer name, if
	// one lies within the configured cutoff. This is a "nearest named place"
	// label, not an authoritative address.
	// Returns ErrPlaceNotFound when every entry is too far away.
	ReverseGeocode(lat, lng float64) (string, error)
}
