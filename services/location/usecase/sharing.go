package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
)

// UpdateSharingSettings changes the user's consent record and brings the
// live record's denormalized copy in line with it immediately, so the next
// proximity query already sees the new visibility.
func (uc *LocationUC) UpdateSharingSettings(ctx context.Context, userID string, req *models.SharingUpdateRequest) (*models.LocationShareSettings, error) {
	if req == nil || !req.Level.Valid() {
		return nil, location.NewValidationError("sharing_level", "must be one of private, friends_only, event_only, public")
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, location.NewValidationError("sharing_expires_at", "must be in the future")
	}

	eventID := ""
	if req.Level == models.SharingLevelEventOnly {
		if req.EventID == "" {
			return nil, location.NewValidationError("event_id", "required for event_only sharing")
		}
		if _, err := uc.locationGW.GetEvent(ctx, req.EventID); err != nil {
			if errors.Is(err, location.ErrNotFound) {
				return nil, location.NewValidationError("event_id", "unknown event")
			}
			return nil, err
		}
		eventID = req.EventID
	}

	lock := uc.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	settings := &models.LocationShareSettings{
		UserID:    userID,
		Level:     req.Level,
		EventID:   eventID,
		ExpiresAt: req.ExpiresAt,
		UpdatedAt: now,
	}

	if err := uc.locationRepo.UpsertShareSettings(ctx, settings); err != nil {
		return nil, err
	}

	uc.refreshLiveSharing(ctx, userID, settings, now)

	lifecycle := &models.SharingLifecycleEvent{
		UserID:    userID,
		Level:     settings.Level,
		EventID:   settings.EventID,
		Timestamp: now,
	}
	if err := uc.locationGW.PublishSharingLifecycle(ctx, lifecycle); err != nil {
		logger.Warn("Failed to publish sharing lifecycle event",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	return settings, nil
}

// StopSharing flips the user to private and removes the live record
// entirely. History stays.
func (uc *LocationUC) StopSharing(ctx context.Context, userID string) error {
	lock := uc.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	settings := &models.LocationShareSettings{
		UserID:    userID,
		Level:     models.SharingLevelPrivate,
		UpdatedAt: now,
	}

	if err := uc.locationRepo.UpsertShareSettings(ctx, settings); err != nil {
		return err
	}

	if err := uc.locationRepo.RemoveLiveLocation(ctx, userID); err != nil && !errors.Is(err, location.ErrNotFound) {
		return err
	}

	lifecycle := &models.SharingLifecycleEvent{
		UserID:    userID,
		Level:     models.SharingLevelPrivate,
		Timestamp: now,
	}
	if err := uc.locationGW.PublishSharingLifecycle(ctx, lifecycle); err != nil {
		logger.Warn("Failed to publish sharing lifecycle event",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	return nil
}

// refreshLiveSharing rewrites the denormalized sharing fields on an existing
// live record after a consent change. No live record is fine: the next
// location update will carry the new settings anyway.
func (uc *LocationUC) refreshLiveSharing(ctx context.Context, userID string, settings *models.LocationShareSettings, now time.Time) {
	live, err := uc.locationRepo.GetLiveLocation(ctx, userID)
	if errors.Is(err, location.ErrNotFound) {
		return
	}
	if err != nil {
		logger.Warn("Failed to load live location for sharing refresh",
			logger.String("user_id", userID),
			logger.Err(err))
		return
	}

	live.SharingLevel = settings.Level
	live.SharingExpiresAt = settings.ExpiresAt
	live.IsActive = settings.IsActive(now)
	if live.IsActive {
		live.EventID = settings.EventID
	} else {
		live.EventID = ""
	}
	if live.EventID != "" {
		live.IsAtEvent = uc.isAtEvent(ctx, live.EventID, live.Latitude, live.Longitude)
	} else {
		live.IsAtEvent = false
	}
	live.UpdatedAt = now

	if err := uc.locationRepo.UpsertLiveLocation(ctx, live); err != nil {
		logger.Warn("Failed to refresh live location sharing state",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
