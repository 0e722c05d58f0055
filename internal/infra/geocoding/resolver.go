// Package geocoding implements the gazetteer-backed place-name resolver.
// The gazetteer is a single versioned data asset embedded at build time;
// entry order is the match ranking.
package geocoding

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"strings"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/geo"

	"go.uber.org/fx"
)

//go:embed gazetteer.json
var gazetteerJSON []byte

// defaultReverseCutoffKm bounds how far a point may be from the nearest
// gazetteer entry and still receive its name.
const defaultReverseCutoffKm = 5.0

// topLevelCities are the coarse fallbacks matched when a free-text venue
// contains a city name but no finer entry, e.g. "34 Admiralty Way, Lagos".
// Every name listed here must also be a gazetteer entry.
var topLevelCities = []string{
	"lagos",
	"abuja",
	"ibadan",
	"port harcourt",
	"kano",
	"enugu",
	"benin city",
	"kaduna",
}

// Params holds dependencies for the Resolver, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type resolver struct {
	entries  []entity.GazetteerEntry
	exact    map[string]entity.Coordinates
	cutoffKm float64
}

// NewResolver loads the embedded gazetteer and builds the Geocoder.
func NewResolver(params Params) (service.Geocoder, error) {
	var entries []entity.GazetteerEntry
	if err := json.Unmarshal(gazetteerJSON, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded gazetteer")
	}
	if len(entries) == 0 {
		return nil, errors.New("embedded gazetteer is empty")
	}

	exact := make(map[string]entity.Coordinates, len(entries))
	for _, entry := range entries {
		key := normalize(entry.Name)
		if _, ok := exact[key]; ok {
			return nil, errors.Errorf("duplicate gazetteer entry: %s", entry.Name)
		}
		exact[key] = entity.Coordinates{Latitude: entry.Latitude, Longitude: entry.Longitude}
	}

	cutoffKm := defaultReverseCutoffKm
	if params.Config.Discovery != nil && params.Config.Discovery.ReverseGeocodeCutoffKm > 0 {
		cutoffKm = params.Config.Discovery.ReverseGeocodeCutoffKm
	}

	params.Logger.Info("Gazetteer loaded",
		slog.Int("entries", len(entries)),
		slog.Float64("reverse_cutoff_km", cutoffKm),
	)

	return &resolver{
		entries:  entries,
		exact:    exact,
		cutoffKm: cutoffKm,
	}, nil
}

// Geocode resolves a free-text place name to coordinates.
func (r *resolver) Geocode(text string) (*entity.Coordinates, error) {
	needle := normalize(text)
	if needle == "" {
		return nil, service.ErrPlaceNotFound
	}

	// Exact dictionary match first.
	if coords, ok := r.exact[needle]; ok {
		return &coords, nil
	}

	// Substring match in either direction, first entry wins.
	for _, entry := range r.entries {
		key := normalize(entry.Name)
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return &entity.Coordinates{Latitude: entry.Latitude, Longitude: entry.Longitude}, nil
		}
	}

	// Coarse city fallback for venue strings like "The Dome, Abuja CBD".
	for _, city := range topLevelCities {
		if strings.Contains(needle, city) {
			if coords, ok := r.exact[city]; ok {
				return &coords, nil
			}
		}
	}

	return nil, service.ErrPlaceNotFound
}

// ReverseGeocode labels a position with the nearest gazetteer name within
// the cutoff. Linear scan: the gazetteer is small and read-only.
func (r *resolver) ReverseGeocode(lat, lng float64) (string, error) {
	bestName := ""
	bestKm := r.cutoffKm

	for _, entry := range r.entries {
		distanceKm := geo.HaversineKm(lat, lng, entry.Latitude, entry.Longitude)
		if distanceKm < bestKm {
			bestKm = distanceKm
			bestName = entry.Name
		}
	}

	if bestName == "" {
		return "", service.ErrPlaceNotFound
	}

	return bestName, nil
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
