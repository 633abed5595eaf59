package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
)

// UpsertShareSettings persists the user's sharing consent record.
func (r *LocationRepo) UpsertShareSettings(ctx context.Context, settings *models.LocationShareSettings) error {
	query := `
		INSERT INTO location_share_settings (user_id, sharing_level, event_id, sharing_expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			sharing_level = EXCLUDED.sharing_level,
			event_id = EXCLUDED.event_id,
			sharing_expires_at = EXCLUDED.sharing_expires_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		settings.UserID,
		settings.Level,
		nullableString(settings.EventID),
		settings.ExpiresAt,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert share settings: %w", err)
	}
	return nil
}

// GetShareSettings loads the user's sharing consent record. A user who never
// configured sharing has no row and is reported as not found; callers treat
// that the same as private.
func (r *LocationRepo) GetShareSettings(ctx context.Context, userID string) (*models.LocationShareSettings, error) {
	query := `
		SELECT user_id, sharing_level, COALESCE(event_id, '') AS event_id, sharing_expires_at, updated_at
		FROM location_share_settings
		WHERE user_id = $1
	`

	var settings models.LocationShareSettings
	err := r.db.GetContext(ctx, &settings, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, location.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load share settings: %w", err)
	}
	return &settings, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
