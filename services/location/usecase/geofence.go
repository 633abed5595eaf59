package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// The approaching band extends to 1.5x the arrival radius; anything past
// that is far. One-shot alert arming keeps a user hovering at a boundary
// from firing repeatedly, so the bands themselves carry no extra margin.
const approachFactor = 1.5

// SetupGeofencing registers alerts for the calling user on an event. An
// existing registration for the same alert type is reset and re-armed.
func (uc *LocationUC) SetupGeofencing(ctx context.Context, userID string, req *models.GeofenceSetupRequest) ([]*models.GeofenceAlert, error) {
	if req == nil || req.EventID == "" {
		return nil, location.NewValidationError("event_id", "required")
	}
	if req.Radius < 0 {
		return nil, location.NewValidationError("radius", "must not be negative")
	}

	if _, err := uc.locationGW.GetEvent(ctx, req.EventID); err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return nil, location.NewValidationError("event_id", "unknown event")
		}
		return nil, err
	}

	radius := req.Radius
	if radius == 0 {
		radius = uc.cfg.Location.DefaultGeofenceRadius
	}

	alertTypes := req.AlertTypes
	if len(alertTypes) == 0 {
		alertTypes = []models.GeofenceAlertType{
			models.GeofenceAlertApproaching,
			models.GeofenceAlertArrived,
			models.GeofenceAlertLeft,
		}
	}

	existing, err := uc.locationRepo.ListGeofenceAlertsForEvent(ctx, userID, req.EventID)
	if err != nil {
		return nil, err
	}
	existingByType := make(map[models.GeofenceAlertType]*models.GeofenceAlert, len(existing))
	for _, alert := range existing {
		existingByType[alert.AlertType] = alert
	}

	now := time.Now()
	alerts := make([]*models.GeofenceAlert, 0, len(alertTypes))
	for _, alertType := range alertTypes {
		if !alertType.Valid() {
			return nil, location.NewValidationError("alert_types", fmt.Sprintf("unknown alert type %q", alertType))
		}

		// Re-registering a type retires the old row and starts re-armed.
		if prior, ok := existingByType[alertType]; ok {
			if err := uc.locationRepo.DisableGeofenceAlert(ctx, userID, prior.ID); err != nil {
				return nil, err
			}
		}

		alert := &models.GeofenceAlert{
			ID:        uuid.New(),
			UserID:    userID,
			EventID:   req.EventID,
			AlertType: alertType,
			Radius:    radius,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.locationRepo.CreateGeofenceAlert(ctx, alert); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	// A fresh registration starts from a clean band so the first location
	// update classifies from scratch.
	if err := uc.locationRepo.ClearBand(ctx, userID, req.EventID); err != nil {
		logger.Warn("Failed to reset geofence band",
			logger.String("user_id", userID),
			logger.String("event_id", req.EventID),
			logger.Err(err))
	}

	return alerts, nil
}

// ActiveGeofences lists the user's enabled registrations.
func (uc *LocationUC) ActiveGeofences(ctx context.Context, userID string) ([]*models.GeofenceAlert, error) {
	return uc.locationRepo.ListActiveGeofenceAlerts(ctx, userID)
}

// DisableGeofence turns off one registration owned by the user.
func (uc *LocationUC) DisableGeofence(ctx context.Context, userID string, alertID uuid.UUID) error {
	return uc.locationRepo.DisableGeofenceAlert(ctx, userID, alertID)
}

// evaluateGeofences classifies the new position against every event the user
// has registrations on and fires one-shot alerts on band transitions. All
// failures here are logged and swallowed: geofencing never blocks the
// location write that triggered it.
func (uc *LocationUC) evaluateGeofences(ctx context.Context, userID string, lat, lng float64) {
	alerts, err := uc.locationRepo.ListActiveGeofenceAlerts(ctx, userID)
	if err != nil {
		logger.Warn("Failed to list geofence alerts",
			logger.String("user_id", userID),
			logger.Err(err))
		return
	}
	if len(alerts) == 0 {
		return
	}

	byEvent := make(map[string][]*models.GeofenceAlert)
	for _, alert := range alerts {
		byEvent[alert.EventID] = append(byEvent[alert.EventID], alert)
	}

	for eventID, eventAlerts := range byEvent {
		uc.evaluateEventGeofence(ctx, userID, eventID, eventAlerts, lat, lng)
	}
}

func (uc *LocationUC) evaluateEventGeofence(ctx context.Context, userID, eventID string, alerts []*models.GeofenceAlert, lat, lng float64) {
	event, err := uc.locationGW.GetEvent(ctx, eventID)
	if err != nil {
		logger.Warn("Failed to load event for geofence evaluation",
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}

	radius := alerts[0].Radius
	dist := utils.Distance(lat, lng, event.VenueLatitude, event.VenueLongitude)

	prev, err := uc.locationRepo.GetBand(ctx, userID, eventID)
	if err != nil {
		logger.Warn("Failed to load geofence band",
			logger.String("user_id", userID),
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}

	band := classifyBand(dist, radius)
	if band == prev {
		return
	}

	if err := uc.locationRepo.SetBand(ctx, userID, eventID, band); err != nil {
		logger.Warn("Failed to store geofence band",
			logger.String("user_id", userID),
			logger.String("event_id", eventID),
			logger.Err(err))
		return
	}

	logger.Info("Geofence band transition",
		logger.String("user_id", userID),
		logger.String("event_id", eventID),
		logger.String("from", string(prev)),
		logger.String("to", string(band)),
		logger.Float64("distance_m", dist))

	// Returning to far re-arms every one-shot alert on the event.
	if band == models.GeofenceBandFar {
		if err := uc.locationRepo.RearmGeofenceAlerts(ctx, userID, eventID); err != nil {
			logger.Warn("Failed to rearm geofence alerts",
				logger.String("user_id", userID),
				logger.String("event_id", eventID),
				logger.Err(err))
		}
	}

	for _, alertType := range firedTransitions(prev, band) {
		for _, alert := range alerts {
			if alert.AlertType != alertType || alert.Triggered {
				continue
			}
			uc.fireGeofenceAlert(ctx, alert, event, dist)
		}
	}
}

// classifyBand buckets a distance from the venue into a geofence band.
func classifyBand(dist, radius float64) models.GeofenceBand {
	switch {
	case dist <= radius:
		return models.GeofenceBandArrived
	case dist <= radius*approachFactor:
		return models.GeofenceBandApproaching
	default:
		return models.GeofenceBandFar
	}
}

// firedTransitions maps a band change to the alert types it fires.
func firedTransitions(prev, next models.GeofenceBand) []models.GeofenceAlertType {
	var fired []models.GeofenceAlertType

	if next == models.GeofenceBandApproaching && prev == models.GeofenceBandFar {
		fired = append(fired, models.GeofenceAlertApproaching)
	}
	if next == models.GeofenceBandArrived && prev != models.GeofenceBandArrived {
		if prev == models.GeofenceBandFar {
			// Jumped straight in; the approaching milestone still happened.
			fired = append(fired, models.GeofenceAlertApproaching)
		}
		fired = append(fired, models.GeofenceAlertArrived)
	}
	if prev == models.GeofenceBandArrived && next != models.GeofenceBandArrived {
		fired = append(fired, models.GeofenceAlertLeft)
	}
	return fired
}

func (uc *LocationUC) fireGeofenceAlert(ctx context.Context, alert *models.GeofenceAlert, event *models.Event, dist float64) {
	if err := uc.locationRepo.MarkGeofenceTriggered(ctx, alert.ID, dist); err != nil {
		logger.Warn("Failed to mark geofence alert triggered",
			logger.String("alert_id", alert.ID.String()),
			logger.Err(err))
		return
	}

	alertEvent := &models.GeofenceAlertEvent{
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		EventID:   event.ID,
		EventName: event.Name,
		HostID:    event.HostID,
		AlertType: alert.AlertType,
		Distance:  dist,
		Radius:    alert.Radius,
		Timestamp: time.Now(),
	}
	if err := uc.locationGW.PublishGeofenceAlert(ctx, alertEvent); err != nil {
		logger.Warn("Failed to publish geofence alert",
			logger.String("alert_id", alert.ID.String()),
			logger.Err(err))
	}

	notification := &models.PushNotification{
		UserID: alert.UserID,
		Title:  event.Name,
		Body:   notificationBody(alert.AlertType, event.Name),
		Data: map[string]string{
			"alert_id":   alert.ID.String(),
			"event_id":   event.ID,
			"alert_type": string(alert.AlertType),
		},
	}
	if err := uc.locationGW.PublishPushNotification(ctx, notification); err != nil {
		logger.Warn("Failed to publish push notification",
			logger.String("alert_id", alert.ID.String()),
			logger.Err(err))
	}
}

func notificationBody(alertType models.GeofenceAlertType, eventName string) string {
	switch alertType {
	case models.GeofenceAlertApproaching:
		return fmt.Sprintf("You are getting close to %s", eventName)
	case models.GeofenceAlertArrived:
		return fmt.Sprintf("You have arrived at %s", eventName)
	case models.GeofenceAlertLeft:
		return fmt.Sprintf("You have left %s", eventName)
	default:
		return eventName
	}
}
