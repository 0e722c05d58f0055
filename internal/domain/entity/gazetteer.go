// Package entity contains the core business objects of the project.
package entity

// GazetteerEntry is one row of the static name-to-coordinate lookup table
// used for geocoding. The gazetteer is a versioned data asset, read-only at
// runtime; entry order is the match ranking.
type GazetteerEntry struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
