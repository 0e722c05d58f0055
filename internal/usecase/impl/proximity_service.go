package impl

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/geo"
	"nearby/internal/usecase"

	"github.com/google/uuid"
)

const defaultEventRadiusKm = 20.0

type proximityService struct {
	friendshipRepo repository.FriendshipRepository
	locationRepo   repository.UserLocationRepository
	eventRepo      repository.EventRepository
	gate           usecase.PrivacyGate
	presence       service.PresenceTracker
	geocoder       service.Geocoder

	eventRadiusKm float64

	// Venue lookups are cached for the process lifetime, misses included:
	// an unresolvable venue stays unresolvable until the gazetteer changes,
	// and the gazetteer only changes with a redeploy.
	geocodeMu    sync.RWMutex
	geocodeCache map[string]*entity.Coordinates
}

// NewProximityService creates the feed query service.
func NewProximityService(
	friendshipRepo repository.FriendshipRepository,
	locationRepo repository.UserLocationRepository,
	eventRepo repository.EventRepository,
	gate usecase.PrivacyGate,
	presence service.PresenceTracker,
	geocoder service.Geocoder,
	cfg *config.Config,
) usecase.ProximityUsecase {
	eventRadiusKm := defaultEventRadiusKm
	if cfg != nil && cfg.Discovery != nil && cfg.Discovery.DefaultEventRadiusKm > 0 {
		eventRadiusKm = cfg.Discovery.DefaultEventRadiusKm
	}

	return &proximityService{
		friendshipRepo: friendshipRepo,
		locationRepo:   locationRepo,
		eventRepo:      eventRepo,
		gate:           gate,
		presence:       presence,
		geocoder:       geocoder,
		eventRadiusKm:  eventRadiusKm,
		geocodeCache:   make(map[string]*entity.Coordinates),
	}
}

// NearbyFriends computes the friends-on-a-map view for one request. Every
// friend appears exactly once; hidden or fixless friends keep their row with
// blank coordinates and distance.
func (s *proximityService) NearbyFriends(ctx context.Context, viewerID uuid.UUID) ([]*entity.ProximityResult, error) {
	friends, err := s.friendshipRepo.ListAcceptedFriends(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accepted friends")
	}
	if len(friends) == 0 {
		return []*entity.ProximityResult{}, nil
	}

	friendIDs := make([]uuid.UUID, 0, len(friends))
	for _, friend := range friends {
		friendIDs = append(friendIDs, friend.UserID)
	}

	locations, err := s.locationRepo.FindByUserIDs(ctx, friendIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load friend locations")
	}
	locationByUser := make(map[uuid.UUID]*entity.UserLocation, len(locations))
	for _, location := range locations {
		locationByUser[location.UserID] = location
	}

	viewerCoords := s.viewerCoordinates(ctx, viewerID)

	results := make([]*entity.ProximityResult, 0, len(friends))
	for _, friend := range friends {
		result := &entity.ProximityResult{
			FriendID:    friend.UserID,
			DisplayName: friend.DisplayName,
			Status:      entity.PresenceOffline,
		}
		if friend.AvatarURL != "" {
			avatarURL := friend.AvatarURL
			result.AvatarURL = &avatarURL
		}
		if s.presence.IsOnline(friend.UserID) {
			result.Status = entity.PresenceOnline
		}

		coords, err := s.gate.Project(ctx, viewerID, locationByUser[friend.UserID])
		if err != nil {
			return nil, errors.Wrap(err, "failed to project friend coordinates")
		}
		result.Coordinates = coords

		if coords != nil && viewerCoords != nil {
			distance := geo.HaversineKm(viewerCoords.Latitude, viewerCoords.Longitude, coords.Latitude, coords.Longitude)
			result.DistanceKm = &distance
		}

		results = append(results, result)
	}

	sortProximityResults(results)

	return results, nil
}

// NearbyEvents lists upcoming public events, filtered by discovery radius
// where the venue resolves, fail-open where it does not.
func (s *proximityService) NearbyEvents(ctx context.Context, viewerID uuid.UUID, radiusKm float64) ([]*entity.NearbyEvent, error) {
	if radiusKm <= 0 {
		radiusKm = s.eventRadiusKm
	}

	events, err := s.eventRepo.ListUpcomingPublic(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming events")
	}

	viewerCoords := s.viewerCoordinates(ctx, viewerID)

	results := make([]*entity.NearbyEvent, 0, len(events))
	for _, event := range events {
		coords := s.geocodeCached(event.LocationText)

		result := &entity.NearbyEvent{
			EventID:      event.ID,
			Title:        event.Title,
			LocationText: event.LocationText,
			Coordinates:  coords,
			StartTime:    event.StartTime,
		}

		if !s.gate.WithinDiscoveryRadius(viewerCoords, coords, radiusKm) {
			continue
		}
		if coords != nil && viewerCoords != nil {
			distance := geo.HaversineKm(viewerCoords.Latitude, viewerCoords.Longitude, coords.Latitude, coords.Longitude)
			result.DistanceKm = &distance
		}

		results = append(results, result)
	}

	// Repository order is start time ascending; the radius filter preserves it.
	return results, nil
}

// FriendPresence reports the connectivity of the viewer's accepted friends.
func (s *proximityService) FriendPresence(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]entity.PresenceStatus, error) {
	friendIDs, err := s.friendshipRepo.ListAcceptedFriendIDs(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accepted friend IDs")
	}

	statuses := make(map[uuid.UUID]entity.PresenceStatus, len(friendIDs))
	for _, friendID := range friendIDs {
		if s.presence.IsOnline(friendID) {
			statuses[friendID] = entity.PresenceOnline
		} else {
			statuses[friendID] = entity.PresenceOffline
		}
	}

	return statuses, nil
}

// viewerCoordinates loads the viewer's own stored position. A viewer without
// a row or without a fix simply gets nil; the feed still renders, distances
// stay blank.
func (s *proximityService) viewerCoordinates(ctx context.Context, viewerID uuid.UUID) *entity.Coordinates {
	location, err := s.locationRepo.FindByUserID(ctx, viewerID)
	if err != nil {
		return nil
	}

	return location.Coordinates()
}

// geocodeCached resolves a venue through the in-process cache.
func (s *proximityService) geocodeCached(locationText string) *entity.Coordinates {
	key := strings.ToLower(strings.TrimSpace(locationText))

	s.geocodeMu.RLock()
	cached, hit := s.geocodeCache[key]
	s.geocodeMu.RUnlock()
	if hit {
		return cached
	}

	coords, _ := s.geocoder.Geocode(locationText)

	s.geocodeMu.Lock()
	s.geocodeCache[key] = coords
	s.geocodeMu.Unlock()

	return coords
}

// sortProximityResults orders the feed: online friends with a distance come
// first, nearest first; then online friends without a distance; then offline
// friends. Ties break on user ID so the order is deterministic.
func sortProximityResults(results []*entity.ProximityResult) {
	sort.Slice(results, func(i, j int) bool {
		ri, rj := results[i], results[j]

		tierI := sortTier(ri)
		tierJ := sortTier(rj)
		if tierI != tierJ {
			return tierI < tierJ
		}

		if tierI == 0 && *ri.DistanceKm != *rj.DistanceKm {
			return *ri.DistanceKm < *rj.DistanceKm
		}

		return ri.FriendID.String() < rj.FriendID.String()
	})
}

func sortTier(result *entity.ProximityResult) int {
	switch {
	case result.Status == entity.PresenceOnline && result.DistanceKm != nil:
		return 0
	case result.Status == entity.PresenceOnline:
		return 1
	default:
		return 2
	}
}
