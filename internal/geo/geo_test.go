package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm_IdenticalPoints(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{6.5244, 3.3792},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}

	for _, p := range points {
		assert.InDelta(t, 0, HaversineKm(p[0], p[1], p[0], p[1]), 1e-6)
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{6.5244, 3.3792, 6.4478, 3.4723},
		{51.5074, -0.1278, 40.7128, -74.0060},
		{-1.2921, 36.8219, 9.0765, 7.3986},
	}

	for _, p := range pairs {
		forward := HaversineKm(p[0], p[1], p[2], p[3])
		backward := HaversineKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestHaversineKm_ReferenceDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
	}{
		{
			// One degree of latitude along a meridian is ~111.19 km for
			// a sphere of radius 6371 km.
			name: "one degree along meridian",
			lat1: 0, lon1: 3,
			lat2: 1, lon2: 3,
			expectedKm: 111.19,
		},
		{
			name: "lagos to abuja",
			lat1: 6.5244, lon1: 3.3792,
			lat2: 9.0765, lon2: 7.3986,
			expectedKm: 523,
		},
		{
			name: "london to new york",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 40.7128, lon2: -74.0060,
			expectedKm: 5570,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InEpsilon(t, tt.expectedKm, got, 0.01)
		})
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Bounds{}, BoundingBox(nil))
	assert.Equal(t, Bounds{}, BoundingBox([]orb.Point{}))
}

func TestBoundingBox_Envelope(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{3.3792, 6.5244},  // lng, lat
		{3.4723, 6.4478},
		{7.3986, 9.0765},
	}

	bounds := BoundingBox(points)
	assert.Equal(t, 9.0765, bounds.North)
	assert.Equal(t, 6.4478, bounds.South)
	assert.Equal(t, 7.3986, bounds.East)
	assert.Equal(t, 3.3792, bounds.West)
}

func TestOffsetWithinRadius_ZeroRadius(t *testing.T) {
	t.Parallel()

	lat, lng := OffsetWithinRadius(6.5244, 3.3792, 0, 42)
	assert.Equal(t, 6.5244, lat)
	assert.Equal(t, 3.3792, lng)
}

func TestOffsetWithinRadius_DeterministicInSeed(t *testing.T) {
	t.Parallel()

	lat1, lng1 := OffsetWithinRadius(6.5244, 3.3792, 500, 42)
	lat2, lng2 := OffsetWithinRadius(6.5244, 3.3792, 500, 42)
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lng1, lng2)

	lat3, lng3 := OffsetWithinRadius(6.5244, 3.3792, 500, 43)
	assert.False(t, lat1 == lat3 && lng1 == lng3,
		"different seeds should land on different offsets")
}

func TestOffsetWithinRadius_NeverExactAndInsideDisk(t *testing.T) {
	t.Parallel()

	const (
		originLat    = 6.5244
		originLng    = 3.3792
		radiusMeters = 500.0
	)

	for seed := range int64(1000) {
		lat, lng := OffsetWithinRadius(originLat, originLng, radiusMeters, seed)

		require.False(t, lat == originLat && lng == originLng,
			"offset must never return the exact input point")

		distanceKm := HaversineKm(originLat, originLng, lat, lng)
		require.LessOrEqual(t, distanceKm, radiusMeters/1000+1e-6)
	}
}
