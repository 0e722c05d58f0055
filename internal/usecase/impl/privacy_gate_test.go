package impl

import (
	"context"
	"testing"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/geo"
	mockRepo "nearby/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func gateConfig(obfuscationMeters float64) *config.Config {
	return &config.Config{
		Privacy: &config.PrivacyConfig{
			ObfuscationRadiusMeters: obfuscationMeters,
		},
	}
}

func TestPrivacyGate_IsVisible_SelfAlwaysVisible(t *testing.T) {
	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	gate := NewPrivacyGate(mockFriendships, gateConfig(0))

	userID := uuid.New()
	target := &entity.UserLocation{
		UserID:    userID,
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: false,
	}

	// No friendship lookup may happen for the self case.
	visible, err := gate.IsVisible(context.Background(), userID, target)
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestPrivacyGate_IsVisible_GhostModeHidesFromEveryone(t *testing.T) {
	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	gate := NewPrivacyGate(mockFriendships, gateConfig(0))

	target := &entity.UserLocation{
		UserID:    uuid.New(),
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: false,
	}

	// The sharing flag short-circuits before any friendship lookup.
	visible, err := gate.IsVisible(context.Background(), uuid.New(), target)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestPrivacyGate_IsVisible_FriendshipStatus(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name    string
		status  entity.FriendshipStatus
		visible bool
	}{
		{name: "accepted edge is visible", status: entity.FriendshipAccepted, visible: true},
		{name: "pending edge stays hidden", status: entity.FriendshipPending, visible: false},
		{name: "rejected edge stays hidden", status: entity.FriendshipRejected, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFriendships := mockRepo.NewMockFriendshipRepository(t)
			mockFriendships.EXPECT().
				FindBetween(context.Background(), viewerID, targetID).
				Return(&entity.Friendship{
					RequesterID: targetID,
					AddresseeID: viewerID,
					Status:      tt.status,
				}, nil)

			gate := NewPrivacyGate(mockFriendships, gateConfig(0))
			target := &entity.UserLocation{
				UserID:    targetID,
				Latitude:  floatPtr(6.5244),
				Longitude: floatPtr(3.3792),
				IsSharing: true,
			}

			visible, err := gate.IsVisible(context.Background(), viewerID, target)
			require.NoError(t, err)
			assert.Equal(t, tt.visible, visible)
		})
	}
}

func TestPrivacyGate_IsVisible_NoEdge(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	mockFriendships.EXPECT().
		FindBetween(context.Background(), viewerID, targetID).
		Return(nil, repository.ErrFriendshipNotFound)

	gate := NewPrivacyGate(mockFriendships, gateConfig(0))
	target := &entity.UserLocation{
		UserID:    targetID,
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: true,
	}

	visible, err := gate.IsVisible(context.Background(), viewerID, target)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestPrivacyGate_Project_HiddenTargetYieldsNothing(t *testing.T) {
	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	gate := NewPrivacyGate(mockFriendships, gateConfig(0))

	target := &entity.UserLocation{
		UserID:    uuid.New(),
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: false,
	}

	coords, err := gate.Project(context.Background(), uuid.New(), target)
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestPrivacyGate_Project_ExactWhenNoObfuscation(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	mockFriendships.EXPECT().
		FindBetween(context.Background(), viewerID, targetID).
		Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)

	gate := NewPrivacyGate(mockFriendships, gateConfig(0))
	target := &entity.UserLocation{
		UserID:    targetID,
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: true,
	}

	coords, err := gate.Project(context.Background(), viewerID, target)
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.Equal(t, 6.5244, coords.Latitude)
	assert.Equal(t, 3.3792, coords.Longitude)
}

func TestPrivacyGate_Project_ObfuscationJittersButStaysClose(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	mockFriendships.EXPECT().
		FindBetween(context.Background(), viewerID, targetID).
		Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)

	gate := NewPrivacyGate(mockFriendships, gateConfig(250))
	target := &entity.UserLocation{
		UserID:    targetID,
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: true,
	}

	coords, err := gate.Project(context.Background(), viewerID, target)
	require.NoError(t, err)
	require.NotNil(t, coords)

	assert.False(t, coords.Latitude == 6.5244 && coords.Longitude == 3.3792,
		"jittered projection must not expose the exact position")

	distanceKm := geo.HaversineKm(6.5244, 3.3792, coords.Latitude, coords.Longitude)
	assert.LessOrEqual(t, distanceKm, 0.251)
}

func TestPrivacyGate_Project_JitterStableForUnchangedFix(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	mockFriendships.EXPECT().
		FindBetween(context.Background(), viewerID, targetID).
		Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)

	gate := NewPrivacyGate(mockFriendships, gateConfig(200))
	target := &entity.UserLocation{
		UserID:    targetID,
		Latitude:  floatPtr(6.5244),
		Longitude: floatPtr(3.3792),
		IsSharing: true,
	}

	first, err := gate.Project(context.Background(), viewerID, target)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Polling the feed against an unchanged fix must land on the same
	// offset point every time; otherwise the samples could be averaged
	// back to the true coordinate.
	second, err := gate.Project(context.Background(), viewerID, target)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// A new report re-rolls the offset.
	target.Latitude = floatPtr(6.5250)
	moved, err := gate.Project(context.Background(), viewerID, target)
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.NotEqual(t, first, moved)
}

func TestPrivacyGate_Project_NoStoredFix(t *testing.T) {
	userID := uuid.New()

	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	gate := NewPrivacyGate(mockFriendships, gateConfig(0))

	target := &entity.UserLocation{
		UserID:    userID,
		IsSharing: true,
	}

	coords, err := gate.Project(context.Background(), userID, target)
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestPrivacyGate_WithinDiscoveryRadius(t *testing.T) {
	mockFriendships := mockRepo.NewMockFriendshipRepository(t)
	gate := NewPrivacyGate(mockFriendships, gateConfig(0))

	lagos := &entity.Coordinates{Latitude: 6.5244, Longitude: 3.3792}
	fiveKmNorth := &entity.Coordinates{Latitude: 6.5694, Longitude: 3.3792}
	farNorth := &entity.Coordinates{Latitude: 6.8392, Longitude: 3.3792}

	assert.True(t, gate.WithinDiscoveryRadius(lagos, fiveKmNorth, 20))
	assert.False(t, gate.WithinDiscoveryRadius(lagos, farNorth, 20))

	// Missing coordinates never exclude.
	assert.True(t, gate.WithinDiscoveryRadius(nil, farNorth, 20))
	assert.True(t, gate.WithinDiscoveryRadius(lagos, nil, 20))
}
