package repository

import (
	"context"
	"fmt"

	"github.com/prasetya/kumpul/internal/pkg/models"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
)

// InsertHistory appends one history row. Rows are immutable once written.
func (r *LocationRepo) InsertHistory(ctx context.Context, entry *models.LocationHistory) error {
	query := `
		INSERT INTO location_history (id, user_id, latitude, longitude, accuracy, address, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Latitude,
		entry.Longitude,
		entry.Accuracy,
		entry.Address,
		nullableString(entry.EventID),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location history: %w", err)
	}
	return nil
}

// ListHistory returns the user's own trail, newest first.
func (r *LocationRepo) ListHistory(ctx context.Context, userID string, q *models.HistoryQuery) ([]*models.LocationHistory, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, latitude, longitude, accuracy, COALESCE(address, '') AS address, COALESCE(event_id, '') AS event_id, created_at
		FROM location_history
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if q.EventID != "" {
		query += fmt.Sprintf(" AND event_id = $%d", len(args)+1)
		args = append(args, q.EventID)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	entries := []*models.LocationHistory{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list location history: %w", err)
	}
	return entries, nil
}
