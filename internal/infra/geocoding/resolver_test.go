package geocoding

import (
	"io"
	"log/slog"
	"testing"

	"nearby/config"
	"nearby/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) service.Geocoder {
	t.Helper()

	resolver, err := NewResolver(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return resolver
}

func TestGeocode_ExactMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	upper, err := resolver.Geocode("LEKKI PHASE 1")
	require.NoError(t, err)

	lower, err := resolver.Geocode("lekki phase 1")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.InDelta(t, 6.4478, upper.Latitude, 1e-9)
	assert.InDelta(t, 3.4723, upper.Longitude, 1e-9)
}

func TestGeocode_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	coords, err := resolver.Geocode("  Ikoyi  ")
	require.NoError(t, err)
	assert.InDelta(t, 6.4541, coords.Latitude, 1e-9)
}

func TestGeocode_SubstringMatch(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	// Venue text containing a gazetteer key.
	coords, err := resolver.Geocode("Landmark Centre, Victoria Island Annex")
	require.NoError(t, err)
	assert.InDelta(t, 6.4281, coords.Latitude, 1e-9)

	// Partial query contained in a gazetteer key.
	coords, err = resolver.Geocode("festac")
	require.NoError(t, err)
	assert.InDelta(t, 6.4667, coords.Latitude, 1e-9)
}

func TestGeocode_CityFallback(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	coords, err := resolver.Geocode("The Dome, Area 11, abuja central")
	require.NoError(t, err)
	assert.InDelta(t, 9.0765, coords.Latitude, 1e-9)
	assert.InDelta(t, 7.3986, coords.Longitude, 1e-9)
}

func TestGeocode_NotFound(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	coords, err := resolver.Geocode("some completely unknown venue")
	assert.Nil(t, coords)
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)

	coords, err = resolver.Geocode("   ")
	assert.Nil(t, coords)
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
}

func TestReverseGeocode_NearestWithinCutoff(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	// A point a few hundred meters from the Lekki Phase 1 entry.
	name, err := resolver.ReverseGeocode(6.4500, 3.4700)
	require.NoError(t, err)
	assert.Equal(t, "Lekki Phase 1", name)
}

func TestReverseGeocode_BeyondCutoff(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t)

	// Middle of the Atlantic: nearest entry is far beyond 5 km.
	name, err := resolver.ReverseGeocode(0, -30)
	assert.Empty(t, name)
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
}

func TestReverseGeocode_CustomCutoff(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver(Params{
		Config: &config.Config{
			Discovery: &config.DiscoveryConfig{ReverseGeocodeCutoffKm: 600},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	// ~540 km from Lagos; resolvable only with the widened cutoff.
	name, err := resolver.ReverseGeocode(9.0, 7.0)
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}
