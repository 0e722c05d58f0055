package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
)

const defaultPublishTimeout = 5 * time.Second

type locationService struct {
	locationRepo repository.UserLocationRepository
	publisher    service.ChangePublisher
	logger       *slog.Logger

	publishTimeout time.Duration

	// inFlight tracks users with a report currently being written. Devices
	// report on a cadence anyway, so a dropped report is recovered by the
	// next one; serializing writes per user is not worth a queue.
	inFlightMu sync.Mutex
	inFlight   map[uuid.UUID]struct{}
}

// NewLocationService creates the position-report service.
func NewLocationService(
	locationRepo repository.UserLocationRepository,
	publisher service.ChangePublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	publishTimeout := defaultPublishTimeout
	if cfg != nil && cfg.Discovery != nil && cfg.Discovery.PublishTimeout > 0 {
		publishTimeout = cfg.Discovery.PublishTimeout
	}

	return &locationService{
		locationRepo:   locationRepo,
		publisher:      publisher,
		logger:         logger,
		publishTimeout: publishTimeout,
		inFlight:       make(map[uuid.UUID]struct{}),
	}
}

// ReportLocation overwrites the user's single position row. At most one
// report per user is in flight at a time; an overlapping report is dropped,
// not queued, and the caller still answers success.
func (s *locationService) ReportLocation(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (bool, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return false, domainerrors.ErrInvalidCoordinates
	}

	if !s.tryAcquire(userID) {
		return false, nil
	}
	defer s.release(userID)

	lat := input.Latitude
	lng := input.Longitude
	location := &entity.UserLocation{
		UserID:    userID,
		Latitude:  &lat,
		Longitude: &lng,
		IsSharing: input.IsSharing,
		UpdatedAt: time.Now(),
	}

	if err := s.locationRepo.Upsert(ctx, location); err != nil {
		return false, errors.Wrap(err, "failed to upsert reported location")
	}

	s.publishChange(service.ChangeKindLocation, userID)

	return true, nil
}

// SetSharing toggles ghost mode. Stored coordinates are retained so that
// re-enabling restores the previous fix instantly.
func (s *locationService) SetSharing(ctx context.Context, userID uuid.UUID, sharing bool) (*entity.UserLocation, error) {
	location, err := s.locationRepo.SetSharing(ctx, userID, sharing, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to set sharing flag")
	}

	s.publishChange(service.ChangeKindLocation, userID)

	return location, nil
}

// GetLocation retrieves the caller's own stored row.
func (s *locationService) GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to get user location")
	}

	return location, nil
}

func (s *locationService) tryAcquire(userID uuid.UUID) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}

	return true
}

func (s *locationService) release(userID uuid.UUID) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	delete(s.inFlight, userID)
}

// publishChange fans out the invalidation event fire-and-forget. A failed
// publish is logged and swallowed: the store write already committed and
// consumers re-fetch on their next request anyway.
func (s *locationService) publishChange(kind service.ChangeKind, userID uuid.UUID) {
	event := &service.ChangeEvent{
		Kind:       kind,
		UserID:     userID.String(),
		OccurredAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
		defer cancel()

		if err := s.publisher.PublishChange(ctx, event); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish change event",
				slog.String("topic", event.Topic()),
				slog.String("error", err.Error()),
			)
		}
	}()
}
