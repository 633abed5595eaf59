package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
	"github.com/prasetya/kumpul/services/location/mocks"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBand(t *testing.T) {
	const radius = 100.0

	tests := []struct {
		name string
		dist float64
		want models.GeofenceBand
	}{
		{"inside radius", 50, models.GeofenceBandArrived},
		{"exactly at radius", 100, models.GeofenceBandArrived},
		{"just past radius", 101, models.GeofenceBandApproaching},
		{"mid approaching band", 130, models.GeofenceBandApproaching},
		{"exactly at outer boundary", 150, models.GeofenceBandApproaching},
		{"just past outer boundary", 151, models.GeofenceBandFar},
		{"well outside", 180, models.GeofenceBandFar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyBand(tt.dist, radius))
		})
	}
}

// A user who walks from inside the fence to just past the radius changes band
// immediately and gets the left alert on that first step out.
func TestLeftFiresJustPastRadius(t *testing.T) {
	band := classifyBand(130, 100)
	assert.Equal(t, models.GeofenceBandApproaching, band)
	assert.Equal(t,
		[]models.GeofenceAlertType{models.GeofenceAlertLeft},
		firedTransitions(models.GeofenceBandArrived, band))
}

func TestFiredTransitions(t *testing.T) {
	tests := []struct {
		name string
		prev models.GeofenceBand
		next models.GeofenceBand
		want []models.GeofenceAlertType
	}{
		{"far to approaching", models.GeofenceBandFar, models.GeofenceBandApproaching,
			[]models.GeofenceAlertType{models.GeofenceAlertApproaching}},
		{"approaching to arrived", models.GeofenceBandApproaching, models.GeofenceBandArrived,
			[]models.GeofenceAlertType{models.GeofenceAlertArrived}},
		{"far straight to arrived fires both milestones", models.GeofenceBandFar, models.GeofenceBandArrived,
			[]models.GeofenceAlertType{models.GeofenceAlertApproaching, models.GeofenceAlertArrived}},
		{"arrived to approaching", models.GeofenceBandArrived, models.GeofenceBandApproaching,
			[]models.GeofenceAlertType{models.GeofenceAlertLeft}},
		{"arrived to far", models.GeofenceBandArrived, models.GeofenceBandFar,
			[]models.GeofenceAlertType{models.GeofenceAlertLeft}},
		{"approaching to far", models.GeofenceBandApproaching, models.GeofenceBandFar, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firedTransitions(tt.prev, tt.next))
		})
	}
}

func TestSetupGeofencing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(&models.Event{ID: "event-1"}, nil)
	mockRepo.EXPECT().ListGeofenceAlertsForEvent(gomock.Any(), "user-1", "event-1").Return(nil, nil)
	mockRepo.EXPECT().CreateGeofenceAlert(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, alert *models.GeofenceAlert) error {
			assert.Equal(t, 500.0, alert.Radius, "default radius from config")
			assert.True(t, alert.IsActive)
			assert.False(t, alert.Triggered)
			return nil
		})
	mockRepo.EXPECT().ClearBand(gomock.Any(), "user-1", "event-1").Return(nil)

	alerts, err := uc.SetupGeofencing(context.Background(), "user-1", &models.GeofenceSetupRequest{
		EventID: "event-1",
	})
	assert.NoError(t, err)
	assert.Len(t, alerts, 3, "empty alert_types registers all transitions")
}

// Re-registering an alert type on the same event retires the old row so the
// alert starts re-armed instead of inheriting a spent trigger.
func TestSetupGeofencing_ReplacesExistingRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	prior := &models.GeofenceAlert{
		ID:        uuid.New(),
		UserID:    "user-1",
		EventID:   "event-1",
		AlertType: models.GeofenceAlertArrived,
		Triggered: true,
		IsActive:  true,
	}

	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(&models.Event{ID: "event-1"}, nil)
	mockRepo.EXPECT().ListGeofenceAlertsForEvent(gomock.Any(), "user-1", "event-1").
		Return([]*models.GeofenceAlert{prior}, nil)
	mockRepo.EXPECT().DisableGeofenceAlert(gomock.Any(), "user-1", prior.ID).Return(nil)
	mockRepo.EXPECT().CreateGeofenceAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.GeofenceAlert) error {
			assert.NotEqual(t, prior.ID, alert.ID)
			assert.False(t, alert.Triggered)
			return nil
		})
	mockRepo.EXPECT().ClearBand(gomock.Any(), "user-1", "event-1").Return(nil)

	alerts, err := uc.SetupGeofencing(context.Background(), "user-1", &models.GeofenceSetupRequest{
		EventID:    "event-1",
		AlertTypes: []models.GeofenceAlertType{models.GeofenceAlertArrived},
	})
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestSetupGeofencing_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)
	ctx := context.Background()

	t.Run("missing event", func(t *testing.T) {
		_, err := uc.SetupGeofencing(ctx, "user-1", &models.GeofenceSetupRequest{})
		assert.True(t, location.IsValidationError(err))
	})

	t.Run("unknown event", func(t *testing.T) {
		mockGW.EXPECT().GetEvent(gomock.Any(), "ghost").Return(nil, location.ErrNotFound)

		_, err := uc.SetupGeofencing(ctx, "user-1", &models.GeofenceSetupRequest{EventID: "ghost"})
		assert.True(t, location.IsValidationError(err))
	})

	t.Run("unknown alert type", func(t *testing.T) {
		mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(&models.Event{ID: "event-1"}, nil)
		mockRepo.EXPECT().ListGeofenceAlertsForEvent(gomock.Any(), "user-1", "event-1").Return(nil, nil)

		_, err := uc.SetupGeofencing(ctx, "user-1", &models.GeofenceSetupRequest{
			EventID:    "event-1",
			AlertTypes: []models.GeofenceAlertType{"teleported"},
		})
		assert.True(t, location.IsValidationError(err))
	})
}

func TestEvaluateGeofences_ArrivalFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	arrivedAlert := &models.GeofenceAlert{
		ID:        uuid.New(),
		UserID:    "user-1",
		EventID:   "event-1",
		AlertType: models.GeofenceAlertArrived,
		Radius:    500,
		IsActive:  true,
	}
	event := &models.Event{
		ID:             "event-1",
		Name:           "Jakarta Tech Meetup",
		HostID:         "host-1",
		VenueLatitude:  -6.2241,
		VenueLongitude: 106.8057,
	}

	mockRepo.EXPECT().ListActiveGeofenceAlerts(gomock.Any(), "user-1").
		Return([]*models.GeofenceAlert{arrivedAlert}, nil)
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)
	mockRepo.EXPECT().GetBand(gomock.Any(), "user-1", "event-1").
		Return(models.GeofenceBandApproaching, nil)
	mockRepo.EXPECT().SetBand(gomock.Any(), "user-1", "event-1", models.GeofenceBandArrived).Return(nil)
	mockRepo.EXPECT().MarkGeofenceTriggered(gomock.Any(), arrivedAlert.ID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishGeofenceAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.GeofenceAlertEvent) error {
			assert.Equal(t, models.GeofenceAlertArrived, ev.AlertType)
			assert.Equal(t, "host-1", ev.HostID)
			return nil
		})
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.PushNotification) error {
			assert.Equal(t, "user-1", n.UserID)
			assert.Contains(t, n.Body, "arrived")
			return nil
		})

	// A position a few meters from the venue.
	uc.evaluateGeofences(context.Background(), "user-1", -6.2242, 106.8058)
}

func TestEvaluateGeofences_NoTransitionNoWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	alert := &models.GeofenceAlert{
		ID:        uuid.New(),
		UserID:    "user-1",
		EventID:   "event-1",
		AlertType: models.GeofenceAlertArrived,
		Radius:    500,
		IsActive:  true,
	}
	event := &models.Event{ID: "event-1", VenueLatitude: -6.2241, VenueLongitude: 106.8057}

	mockRepo.EXPECT().ListActiveGeofenceAlerts(gomock.Any(), "user-1").
		Return([]*models.GeofenceAlert{alert}, nil)
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)
	mockRepo.EXPECT().GetBand(gomock.Any(), "user-1", "event-1").
		Return(models.GeofenceBandFar, nil)

	// Still kilometers away: far stays far, nothing fires.
	uc.evaluateGeofences(context.Background(), "user-1", -6.9000, 107.6000)
}

func TestEvaluateGeofences_AlreadyTriggeredStaysQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	alert := &models.GeofenceAlert{
		ID:        uuid.New(),
		UserID:    "user-1",
		EventID:   "event-1",
		AlertType: models.GeofenceAlertArrived,
		Radius:    500,
		Triggered: true,
		IsActive:  true,
	}
	event := &models.Event{ID: "event-1", VenueLatitude: -6.2241, VenueLongitude: 106.8057}

	mockRepo.EXPECT().ListActiveGeofenceAlerts(gomock.Any(), "user-1").
		Return([]*models.GeofenceAlert{alert}, nil)
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)
	mockRepo.EXPECT().GetBand(gomock.Any(), "user-1", "event-1").
		Return(models.GeofenceBandApproaching, nil)
	mockRepo.EXPECT().SetBand(gomock.Any(), "user-1", "event-1", models.GeofenceBandArrived).Return(nil)
	// No MarkGeofenceTriggered, no publications: the one-shot already fired.

	uc.evaluateGeofences(context.Background(), "user-1", -6.2242, 106.8058)
}

func TestEvaluateGeofences_ReturnToFarRearms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	leftAlert := &models.GeofenceAlert{
		ID:        uuid.New(),
		UserID:    "user-1",
		EventID:   "event-1",
		AlertType: models.GeofenceAlertLeft,
		Radius:    500,
		IsActive:  true,
	}
	event := &models.Event{ID: "event-1", Name: "Meetup", VenueLatitude: -6.2241, VenueLongitude: 106.8057}

	mockRepo.EXPECT().ListActiveGeofenceAlerts(gomock.Any(), "user-1").
		Return([]*models.GeofenceAlert{leftAlert}, nil)
	mockGW.EXPECT().GetEvent(gomock.Any(), "event-1").Return(event, nil)
	mockRepo.EXPECT().GetBand(gomock.Any(), "user-1", "event-1").
		Return(models.GeofenceBandArrived, nil)
	mockRepo.EXPECT().SetBand(gomock.Any(), "user-1", "event-1", models.GeofenceBandFar).Return(nil)
	mockRepo.EXPECT().RearmGeofenceAlerts(gomock.Any(), "user-1", "event-1").Return(nil)
	mockRepo.EXPECT().MarkGeofenceTriggered(gomock.Any(), leftAlert.ID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishGeofenceAlert(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPushNotification(gomock.Any(), gomock.Any()).Return(nil)

	// Kilometers out: arrived jumps straight to far, firing "left".
	uc.evaluateGeofences(context.Background(), "user-1", -6.9000, 107.6000)
}
