package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/pkg/tracking"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// UpdateLocation accepts a position fix, overwrites the user's live record,
// appends a history row, evaluates geofences and publishes the change for
// fan-out. The returned ack carries the stored record plus the tracking
// cadence the client should switch to.
func (uc *LocationUC) UpdateLocation(ctx context.Context, userID string, sample *models.LocationSample) (*models.LocationUpdateAck, error) {
	if err := validateSample(sample); err != nil {
		return nil, err
	}

	lock := uc.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()

	settings, err := uc.locationRepo.GetShareSettings(ctx, userID)
	if err != nil && !errors.Is(err, location.ErrNotFound) {
		return nil, err
	}

	isActive := settings.IsActive(now)

	live := &models.LiveLocation{
		UserID:       userID,
		Latitude:     sample.Latitude,
		Longitude:    sample.Longitude,
		Accuracy:     sample.Accuracy,
		Heading:      sample.Heading,
		Speed:        sample.Speed,
		Altitude:     sample.Altitude,
		BatteryLevel: sample.BatteryLevel,
		Address:      sample.Address,
		City:         sample.City,
		State:        sample.State,
		Country:      sample.Country,
		Geohash:      utils.EncodeGeohash(sample.Latitude, sample.Longitude, uc.cfg.Location.GeohashPrecision),
		IsActive:     isActive,
		UpdatedAt:    now,
	}

	if settings != nil {
		live.SharingLevel = settings.Level
		live.SharingExpiresAt = settings.ExpiresAt
		if isActive {
			live.EventID = settings.EventID
		}
	} else {
		live.SharingLevel = models.SharingLevelPrivate
	}

	if live.EventID != "" {
		live.IsAtEvent = uc.isAtEvent(ctx, live.EventID, sample.Latitude, sample.Longitude)
	}

	if err := uc.locationRepo.UpsertLiveLocation(ctx, live); err != nil {
		return nil, err
	}

	// History is a trail, not a transaction. Losing a row must not bounce
	// the live update.
	history := &models.LocationHistory{
		ID:        uuid.New(),
		UserID:    userID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Accuracy:  sample.Accuracy,
		Address:   sample.Address,
		EventID:   live.EventID,
		CreatedAt: now,
	}
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.locationRepo.InsertHistory(ctx, history)
	})
	if err != nil {
		logger.Warn("Failed to append location history",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	uc.evaluateGeofences(ctx, userID, sample.Latitude, sample.Longitude)

	if isActive {
		event := &models.LocationUpdatedEvent{
			UserID:    userID,
			Latitude:  live.Latitude,
			Longitude: live.Longitude,
			Accuracy:  live.Accuracy,
			IsAtEvent: live.IsAtEvent,
			EventID:   live.EventID,
			UpdatedAt: live.UpdatedAt,
		}
		if err := uc.locationGW.PublishLocationUpdate(ctx, event); err != nil {
			logger.Warn("Failed to publish location update",
				logger.String("user_id", userID),
				logger.Err(err))
		}
	}

	battery := 1.0
	if sample.BatteryLevel != nil {
		battery = *sample.BatteryLevel
	}
	profile := tracking.Cadence(battery, isActive)

	return &models.LocationUpdateAck{
		Location: live,
		Cadence: models.CadencePolicy{
			IntervalSeconds:       int(profile.Interval / time.Second),
			Accuracy:              string(profile.Accuracy),
			MinDisplacementMeters: profile.MinDisplacementMeters,
			Stopped:               profile.Stopped,
		},
	}, nil
}

// GetLocation returns a user's live location, subject to sharing consent.
// Users always see their own record; anyone else goes through CanView.
func (uc *LocationUC) GetLocation(ctx context.Context, viewerID, targetID string) (*models.LiveLocation, error) {
	live, err := uc.locationRepo.GetLiveLocation(ctx, targetID)
	if err != nil {
		return nil, err
	}
	live.IsActive = sharingActive(live, time.Now())

	if viewerID == targetID {
		return live, nil
	}

	visible, err := uc.CanView(ctx, viewerID, live)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, location.ErrForbidden
	}
	return live, nil
}

// CanView evaluates sharing consent for a viewer against a live record.
// Expiry is lazy: a record whose consent lapsed is invisible even though it
// is still stored.
func (uc *LocationUC) CanView(ctx context.Context, viewerID string, target *models.LiveLocation) (bool, error) {
	if target == nil {
		return false, nil
	}
	if viewerID == target.UserID {
		return true, nil
	}
	if !sharingActive(target, time.Now()) {
		return false, nil
	}

	switch target.SharingLevel {
	case models.SharingLevelPublic:
		return true, nil
	case models.SharingLevelFriendsOnly:
		return uc.locationGW.IsFriend(ctx, target.UserID, viewerID)
	case models.SharingLevelEventOnly:
		// Visible only to users currently sharing into the same event.
		viewerLive, err := uc.locationRepo.GetLiveLocation(ctx, viewerID)
		if errors.Is(err, location.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !sharingActive(viewerLive, time.Now()) {
			return false, nil
		}
		return viewerLive.EventID == target.EventID, nil
	default:
		return false, nil
	}
}

func (uc *LocationUC) isAtEvent(ctx context.Context, eventID string, lat, lng float64) bool {
	event, err := uc.locationGW.GetEvent(ctx, eventID)
	if err != nil {
		logger.Warn("Failed to load event for arrival check",
			logger.String("event_id", eventID),
			logger.Err(err))
		return false
	}
	dist := utils.Distance(lat, lng, event.VenueLatitude, event.VenueLongitude)
	return dist <= uc.cfg.Location.ArrivalRadiusMeters
}

// sharingActive recomputes consent from the denormalized copy on the live
// record, mirroring LocationShareSettings.IsActive.
func sharingActive(live *models.LiveLocation, now time.Time) bool {
	if live == nil || live.SharingLevel == "" || live.SharingLevel == models.SharingLevelPrivate {
		return false
	}
	if live.SharingExpiresAt != nil && now.After(*live.SharingExpiresAt) {
		return false
	}
	return true
}

func validateSample(sample *models.LocationSample) error {
	if sample == nil {
		return location.NewValidationError("body", "location sample is required")
	}
	if !utils.ValidCoordinates(sample.Latitude, sample.Longitude) {
		return location.NewValidationError("coordinates", "latitude or longitude out of range")
	}
	if sample.Accuracy != nil && *sample.Accuracy < 0 {
		return location.NewValidationError("accuracy", "must not be negative")
	}
	if sample.BatteryLevel != nil && (*sample.BatteryLevel < 0 || *sample.BatteryLevel > 1) {
		return location.NewValidationError("battery_level", "must be between 0 and 1")
	}
	return nil
}
