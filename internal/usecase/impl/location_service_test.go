package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	mockRepo "nearby/internal/mocks/repository"
	mockSvc "nearby/internal/mocks/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func locationConfig() *config.Config {
	return &config.Config{
		Discovery: &config.DiscoveryConfig{
			PublishTimeout: time.Second,
		},
	}
}

func TestLocationService_ReportLocation_UpsertsAndPublishes(t *testing.T) {
	mockLocations := mockRepo.NewMockUserLocationRepository(t)
	mockPublisher := mockSvc.NewMockChangePublisher(t)
	svc := NewLocationService(mockLocations, mockPublisher, locationConfig(), slog.Default())

	ctx := context.Background()
	userID := uuid.New()

	mockLocations.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Run(func(_ context.Context, location *entity.UserLocation) {
			assert.Equal(t, userID, location.UserID)
			require.NotNil(t, location.Latitude)
			require.NotNil(t, location.Longitude)
			assert.Equal(t, 6.5244, *location.Latitude)
			assert.Equal(t, 3.3792, *location.Longitude)
			assert.True(t, location.IsSharing)
			assert.False(t, location.UpdatedAt.IsZero())
		}).
		Return(nil)

	published := make(chan *service.ChangeEvent, 1)
	mockPublisher.EXPECT().
		PublishChange(mock.Anything, mock.AnythingOfType("*service.ChangeEvent")).
		RunAndReturn(func(_ context.Context, event *service.ChangeEvent) error {
			published <- event

			return nil
		})

	accepted, err := svc.ReportLocation(ctx, userID, &usecase.ReportLocationInput{
		Latitude:  6.5244,
		Longitude: 3.3792,
		IsSharing: true,
	})
	require.NoError(t, err)
	assert.True(t, accepted)

	select {
	case event := <-published:
		assert.Equal(t, service.ChangeKindLocation, event.Kind)
		assert.Equal(t, userID.String(), event.UserID)
		assert.Equal(t, "location:"+userID.String(), event.Topic())
	case <-time.After(time.Second):
		t.Fatal("expected a location change event to be published")
	}
}

func TestLocationService_ReportLocation_RejectsInvalidCoordinates(t *testing.T) {
	mockLocations := mockRepo.NewMockUserLocationRepository(t)
	mockPublisher := mockSvc.NewMockChangePublisher(t)
	svc := NewLocationService(mockLocations, mockPublisher, locationConfig(), slog.Default())

	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{name: "latitude above range", lat: 90.1, lng: 0},
		{name: "latitude below range", lat: -90.1, lng: 0},
		{name: "longitude above range", lat: 0, lng: 180.1},
		{name: "longitude below range", lat: 0, lng: -180.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, err := svc.ReportLocation(context.Background(), uuid.New(), &usecase.ReportLocationInput{
				Latitude:  tt.lat,
				Longitude: tt.lng,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
			assert.False(t, accepted)
		})
	}
}

func TestLocationService_ReportLocation_DropsOverlappingReport(t *testing.T) {
	mockLocations := mockRepo.NewMockUserLocationRepository(t)
	mockPublisher := mockSvc.NewMockChangePublisher(t)
	svc := NewLocationService(mockLocations, mockPublisher, locationConfig(), slog.Default())

	ctx := context.Background()
	userID := uuid.New()

	entered := make(chan struct{})
	release := make(chan struct{})
	mockLocations.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserLocation")).
		RunAndReturn(func(context.Context, *entity.UserLocation) error {
			close(entered)
			<-release

			return nil
		}).
		Once()

	published := make(chan *service.ChangeEvent, 1)
	mockPublisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.ChangeEvent) error {
			published <- event

			return nil
		})

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)

		accepted, err := svc.ReportLocation(ctx, userID, &usecase.ReportLocationInput{
			Latitude: 6.5244, Longitude: 3.3792, IsSharing: true,
		})
		assert.NoError(t, err)
		assert.True(t, accepted)
	}()

	<-entered

	// Second report while the first is still writing: dropped, not queued.
	accepted, err := svc.ReportLocation(ctx, userID, &usecase.ReportLocationInput{
		Latitude: 6.5300, Longitude: 3.3800, IsSharing: true,
	})
	require.NoError(t, err)
	assert.False(t, accepted)

	close(release)
	<-firstDone

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("expected exactly one change event from the accepted report")
	}
}

func TestLocationService_SetSharing_RetainsCoordinates(t *testing.T) {
	mockLocations := mockRepo.NewMockUserLocationRepository(t)
	mockPublisher := mockSvc.NewMockChangePublisher(t)
	svc := NewLocationService(mockLocations, mockPublisher, locationConfig(), slog.Default())

	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 6.5244, 3.3792

	mockLocations.EXPECT().
		SetSharing(ctx, userID, false, mock.AnythingOfType("time.Time")).
		Return(&entity.UserLocation{
			UserID:    userID,
			Latitude:  &lat,
			Longitude: &lng,
			IsSharing: false,
		}, nil)

	published := make(chan *service.ChangeEvent, 1)
	mockPublisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.ChangeEvent) error {
			published <- event

			return nil
		})

	location, err := svc.SetSharing(ctx, userID, false)
	require.NoError(t, err)
	assert.False(t, location.IsSharing)
	require.NotNil(t, location.Coordinates(), "disabling sharing must not erase the stored fix")

	select {
	case event := <-published:
		assert.Equal(t, service.ChangeKindLocation, event.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a change event after the sharing toggle")
	}
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	mockLocations := mockRepo.NewMockUserLocationRepository(t)
	mockPublisher := mockSvc.NewMockChangePublisher(t)
	svc := NewLocationService(mockLocations, mockPublisher, locationConfig(), slog.Default())

	ctx := context.Background()
	userID := uuid.New()

	mockLocations.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrUserLocationNotFound)

	location, err := svc.GetLocation(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	assert.Nil(t, location)
}
