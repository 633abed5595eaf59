package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
	"github.com/prasetya/kumpul/services/location/mocks"
	"github.com/stretchr/testify/assert"
)

func publicLive(userID string, lat, lng float64) *models.LiveLocation {
	return &models.LiveLocation{
		UserID:       userID,
		Latitude:     lat,
		Longitude:    lng,
		SharingLevel: models.SharingLevelPublic,
		IsActive:     true,
		UpdatedAt:    time.Now(),
	}
}

func TestNearbyUsers_SortedWithTiebreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	viewer := publicLive("viewer", -6.1750, 106.8270)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(viewer, nil)

	// b and a sit at the same spot; id breaks the tie.
	candidates := []*models.GeoCandidate{
		{UserID: "far-user", Latitude: -6.1800, Longitude: 106.8300},
		{UserID: "b", Latitude: -6.1751, Longitude: 106.8271},
		{UserID: "a", Latitude: -6.1751, Longitude: 106.8271},
	}
	mockRepo.EXPECT().NearbyCandidates(gomock.Any(), viewer.Latitude, viewer.Longitude, 1000.0).
		Return(candidates, nil)

	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "far-user").Return(publicLive("far-user", -6.1800, 106.8300), nil)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "b").Return(publicLive("b", -6.1751, 106.8271), nil)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "a").Return(publicLive("a", -6.1751, 106.8271), nil)
	mockGW.EXPECT().GetUserProfiles(gomock.Any(), gomock.Any()).Return(map[string]*models.UserProfile{
		"a": {ID: "a", FullName: "Agus"},
	}, nil)

	results, err := uc.NearbyUsers(context.Background(), "viewer", 0)
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "a", results[0].UserID)
	assert.Equal(t, "Agus", results[0].Name)
	assert.Equal(t, "b", results[1].UserID)
	assert.Equal(t, "far-user", results[2].UserID)
	assert.LessOrEqual(t, results[0].Distance, results[2].Distance)
}

func TestNearbyUsers_FiltersConsentAndSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	viewer := publicLive("viewer", -6.1750, 106.8270)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(viewer, nil)

	candidates := []*models.GeoCandidate{
		{UserID: "viewer"},  // self, skipped without a lookup
		{UserID: "vanished"},
		{UserID: "expired"},
		{UserID: "stranger"},
	}
	mockRepo.EXPECT().NearbyCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(candidates, nil)

	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "vanished").Return(nil, location.ErrNotFound)

	expiredLive := publicLive("expired", -6.1751, 106.8271)
	expiredLive.SharingExpiresAt = timePtr(time.Now().Add(-time.Minute))
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "expired").Return(expiredLive, nil)

	strangerLive := publicLive("stranger", -6.1752, 106.8272)
	strangerLive.SharingLevel = models.SharingLevelFriendsOnly
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "stranger").Return(strangerLive, nil)
	mockGW.EXPECT().IsFriend(gomock.Any(), "stranger", "viewer").Return(false, nil)

	results, err := uc.NearbyUsers(context.Background(), "viewer", 500)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbyUsers_NoViewerLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mocks.NewMockLocationGW(ctrl))

	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(nil, location.ErrNotFound)

	_, err := uc.NearbyUsers(context.Background(), "viewer", 500)
	assert.ErrorIs(t, err, location.ErrLocationUnknown)
}

func TestNearbyUsers_RadiusClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	viewer := publicLive("viewer", -6.1750, 106.8270)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(viewer, nil)
	mockRepo.EXPECT().NearbyCandidates(gomock.Any(), gomock.Any(), gomock.Any(), 10000.0).
		Return(nil, nil)

	results, err := uc.NearbyUsers(context.Background(), "viewer", 99999)
	assert.NoError(t, err)
	assert.Empty(t, results)

	_, err = uc.NearbyUsers(context.Background(), "viewer", -5)
	assert.True(t, location.IsValidationError(err))
}

// The geo index can hand back boundary hits marginally outside the requested
// radius; the precise recompute drops them.
func TestNearbyUsers_BoundaryHitsRefiltered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	viewer := publicLive("viewer", 0, 0)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(viewer, nil)

	// Roughly 98m and 101m due north on a 100m query.
	candidates := []*models.GeoCandidate{
		{UserID: "inside", Latitude: 0.00088, Longitude: 0},
		{UserID: "outside", Latitude: 0.00091, Longitude: 0},
	}
	mockRepo.EXPECT().NearbyCandidates(gomock.Any(), 0.0, 0.0, 100.0).Return(candidates, nil)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "inside").Return(publicLive("inside", 0.00088, 0), nil)
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "outside").Return(publicLive("outside", 0.00091, 0), nil)
	mockGW.EXPECT().GetUserProfiles(gomock.Any(), []string{"inside"}).Return(nil, nil)

	results, err := uc.NearbyUsers(context.Background(), "viewer", 100)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "inside", results[0].UserID)
	assert.LessOrEqual(t, results[0].Distance, 100.0)
}

func TestEventLocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	event := &models.Event{
		ID:             "event-1",
		Name:           "Jakarta Tech Meetup",
		HostID:         "host-1",
		VenueLatitude:  -6.2241,
		VenueLongitude: 106.8057,
	}
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)

	viewer := publicLive("viewer", -6.2242, 106.8058)
	viewer.SharingLevel = models.SharingLevelEventOnly
	viewer.EventID = "event-1"
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "viewer").Return(viewer, nil)

	mockRepo.EXPECT().EventRoster(gomock.Any(), "event-1").Return([]string{"viewer", "attendee", "switched"}, nil)

	attendee := publicLive("attendee", -6.2243, 106.8059)
	attendee.SharingLevel = models.SharingLevelEventOnly
	attendee.EventID = "event-1"
	attendee.IsAtEvent = true
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "attendee").Return(attendee, nil)

	// Roster lag: user switched events between roster read and hydration.
	switched := publicLive("switched", -6.2244, 106.8060)
	switched.EventID = "event-2"
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "switched").Return(switched, nil)

	mockGW.EXPECT().GetUserProfiles(gomock.Any(), []string{"attendee"}).Return(map[string]*models.UserProfile{
		"attendee": {ID: "attendee", FullName: "Siti Rahma"},
	}, nil)

	results, err := uc.EventLocations(context.Background(), "viewer", "event-1")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "attendee", results[0].UserID)
	assert.Equal(t, "Siti Rahma", results[0].Name)
	assert.True(t, results[0].IsAtEvent)
}

func TestEventLocations_HostNeedsNoShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	event := &models.Event{ID: "event-1", HostID: "host-1"}
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)
	mockRepo.EXPECT().EventRoster(gomock.Any(), "event-1").Return(nil, nil)

	results, err := uc.EventLocations(context.Background(), "host-1", "event-1")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestEventLocations_OutsiderForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	event := &models.Event{ID: "event-1", HostID: "host-1"}
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)

	outsider := publicLive("outsider", -6.17, 106.82)
	outsider.EventID = "event-2"
	mockRepo.EXPECT().GetLiveLocation(gomock.Any(), "outsider").Return(outsider, nil)

	_, err := uc.EventLocations(context.Background(), "outsider", "event-1")
	assert.ErrorIs(t, err, location.ErrForbidden)
}
