// Package geo provides the pure geodesic math used by the proximity engine:
// great-circle distance, bounding-box aggregation and privacy jitter.
package geo

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for Haversine.
	EarthRadiusKm = 6371.0

	// MetersPerDegreeLat approximates one degree of latitude.
	MetersPerDegreeLat = 111320.0
)

// HaversineKm returns the great-circle distance in kilometers between two
// WGS84 points given in degrees. Symmetric, and zero for identical points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	deltaPhi := radians(lat2 - lat1)
	deltaLambda := radians(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Bounds is a min/max coordinate envelope, used only for map-fit.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundingBox returns the envelope of the given points, or the zero-value
// box for an empty input.
func BoundingBox(points []orb.Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	bound := points[0].Bound()
	for _, point := range points[1:] {
		bound = bound.Extend(point)
	}

	return Bounds{
		North: bound.Top(),
		South: bound.Bottom(),
		East:  bound.Right(),
		West:  bound.Left(),
	}
}

// OffsetWithinRadius returns a point uniformly distributed inside the disk
// of radiusMeters around the input, deterministic in the seed: the same
// seed and input always yield the same point. With a positive radius the
// result is never the exact input point.
func OffsetWithinRadius(lat, lng, radiusMeters float64, seed int64) (float64, float64) {
	if radiusMeters <= 0 {
		return lat, lng
	}

	rng := rand.New(rand.NewSource(seed))

	// sqrt keeps the distribution uniform over the disk area rather than
	// clustering around the center.
	distance := radiusMeters * math.Sqrt(rng.Float64())
	bearing := rng.Float64() * 2 * math.Pi

	for distance == 0 {
		distance = radiusMeters * math.Sqrt(rng.Float64())
	}

	deltaLat := (distance * math.Cos(bearing)) / MetersPerDegreeLat
	deltaLng := (distance * math.Sin(bearing)) / (MetersPerDegreeLat * math.Cos(radians(lat)))

	return lat + deltaLat, lng + deltaLng
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
