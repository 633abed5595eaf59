package usecase

import (
	"context"

	"github.com/prasetya/kumpul/internal/pkg/models"
)

// LocationHistory returns the caller's own trail, newest first. Handlers
// derive userID from authentication, so there is no cross-user read path.
func (uc *LocationUC) LocationHistory(ctx context.Context, userID string, q *models.HistoryQuery) ([]*models.LocationHistory, error) {
	if q == nil {
		q = &models.HistoryQuery{}
	}
	return uc.locationRepo.ListHistory(ctx, userID, q)
}
