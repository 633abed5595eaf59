package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
)

// CreateGeofenceAlert registers one (user, event, alert type) tuple.
func (r *LocationRepo) CreateGeofenceAlert(ctx context.Context, alert *models.GeofenceAlert) error {
	query := `
		INSERT INTO geofence_alerts (id, user_id, event_id, alert_type, radius, distance, triggered, triggered_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, event_id, alert_type) DO UPDATE SET
			radius = EXCLUDED.radius,
			triggered = false,
			triggered_at = NULL,
			is_active = true,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		alert.ID,
		alert.UserID,
		alert.EventID,
		alert.AlertType,
		alert.Radius,
		alert.Distance,
		alert.Triggered,
		alert.TriggeredAt,
		alert.IsActive,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create geofence alert: %w", err)
	}
	return nil
}

// ListActiveGeofenceAlerts returns the user's enabled registrations.
func (r *LocationRepo) ListActiveGeofenceAlerts(ctx context.Context, userID string) ([]*models.GeofenceAlert, error) {
	query := `
		SELECT id, user_id, event_id, alert_type, radius, distance, triggered, triggered_at, is_active, created_at, updated_at
		FROM geofence_alerts
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	alerts := []*models.GeofenceAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list geofence alerts: %w", err)
	}
	return alerts, nil
}

// ListGeofenceAlertsForEvent returns the user's enabled registrations on one
// event, the set evaluated on every location update.
func (r *LocationRepo) ListGeofenceAlertsForEvent(ctx context.Context, userID, eventID string) ([]*models.GeofenceAlert, error) {
	query := `
		SELECT id, user_id, event_id, alert_type, radius, distance, triggered, triggered_at, is_active, created_at, updated_at
		FROM geofence_alerts
		WHERE user_id = $1 AND event_id = $2 AND is_active = true
	`

	alerts := []*models.GeofenceAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query, userID, eventID); err != nil {
		return nil, fmt.Errorf("failed to list geofence alerts for event: %w", err)
	}
	return alerts, nil
}

// MarkGeofenceTriggered records a one-shot firing with the distance at which
// it fired.
func (r *LocationRepo) MarkGeofenceTriggered(ctx context.Context, alertID uuid.UUID, distance float64) error {
	now := time.Now()
	query := `
		UPDATE geofence_alerts
		SET triggered = true, triggered_at = $2, distance = $3, updated_at = $2
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, alertID, now, distance); err != nil {
		return fmt.Errorf("failed to mark geofence alert triggered: %w", err)
	}
	return nil
}

// RearmGeofenceAlerts resets triggered state for a user's registrations on an
// event, letting them fire again after the user went back out to the far
// band.
func (r *LocationRepo) RearmGeofenceAlerts(ctx context.Context, userID, eventID string) error {
	query := `
		UPDATE geofence_alerts
		SET triggered = false, triggered_at = NULL, updated_at = $3
		WHERE user_id = $1 AND event_id = $2 AND is_active = true
	`

	if _, err := r.db.ExecContext(ctx, query, userID, eventID, time.Now()); err != nil {
		return fmt.Errorf("failed to rearm geofence alerts: %w", err)
	}
	return nil
}

// DisableGeofenceAlert turns off one registration owned by the user.
func (r *LocationRepo) DisableGeofenceAlert(ctx context.Context, userID string, alertID uuid.UUID) error {
	query := `
		UPDATE geofence_alerts
		SET is_active = false, updated_at = $3
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, alertID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to disable geofence alert: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read disable result: %w", err)
	}
	if rows == 0 {
		return location.ErrNotFound
	}
	return nil
}
