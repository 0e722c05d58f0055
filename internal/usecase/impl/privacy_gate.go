package impl

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/geo"
	"nearby/internal/usecase"

	"github.com/google/uuid"
)

type privacyGate struct {
	friendshipRepo          repository.FriendshipRepository
	obfuscationRadiusMeters float64
}

// NewPrivacyGate creates the visibility gate. An obfuscation radius of zero
// means visible friends see exact coordinates.
func NewPrivacyGate(friendshipRepo repository.FriendshipRepository, cfg *config.Config) usecase.PrivacyGate {
	var radius float64
	if cfg != nil && cfg.Privacy != nil {
		radius = cfg.Privacy.ObfuscationRadiusMeters
	}

	return &privacyGate{
		friendshipRepo:          friendshipRepo,
		obfuscationRadiusMeters: radius,
	}
}

// IsVisible checks sharing consent first, then the social graph. The sharing
// flag is read from the row fetched for this request, so a ghost-mode toggle
// takes effect on the very next evaluation.
func (g *privacyGate) IsVisible(ctx context.Context, viewerID uuid.UUID, target *entity.UserLocation) (bool, error) {
	if target == nil {
		return false, nil
	}

	if viewerID == target.UserID {
		return true, nil
	}

	if !target.IsSharing {
		return false, nil
	}

	friendship, err := g.friendshipRepo.FindBetween(ctx, viewerID, target.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check friendship for visibility")
	}

	return friendship.Status == entity.FriendshipAccepted, nil
}

// Project is the only path from a stored row to an exposable coordinate.
func (g *privacyGate) Project(ctx context.Context, viewerID uuid.UUID, target *entity.UserLocation) (*entity.Coordinates, error) {
	visible, err := g.IsVisible(ctx, viewerID, target)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, nil
	}

	coords := target.Coordinates()
	if coords == nil {
		return nil, nil
	}

	// Your own position is never jittered; obfuscation protects you from
	// others, not from yourself.
	if g.obfuscationRadiusMeters <= 0 || viewerID == target.UserID {
		return coords, nil
	}

	// The jitter is seeded by the target and the stored fix, so repeated
	// reads of an unchanged position land on the same offset point; only a
	// new report re-rolls it. A moving average over polls therefore cannot
	// converge on the true coordinate.
	seed := jitterSeed(target.UserID, coords)
	lat, lng := geo.OffsetWithinRadius(coords.Latitude, coords.Longitude, g.obfuscationRadiusMeters, seed)

	return &entity.Coordinates{Latitude: lat, Longitude: lng}, nil
}

func jitterSeed(userID uuid.UUID, coords *entity.Coordinates) int64 {
	h := fnv.New64a()
	h.Write(userID[:])

	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], math.Float64bits(coords.Latitude))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(coords.Longitude))
	h.Write(buf[:])

	return int64(h.Sum64())
}

// WithinDiscoveryRadius treats missing coordinates as within range.
func (g *privacyGate) WithinDiscoveryRadius(viewer, target *entity.Coordinates, radiusKm float64) bool {
	if viewer == nil || target == nil {
		return true
	}

	return geo.HaversineKm(viewer.Latitude, viewer.Longitude, target.Latitude, target.Longitude) <= radiusKm
}
