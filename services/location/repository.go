package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetya/kumpul/services/location LocationRepo

// LocationRepo defines the interface for location data access operations
type LocationRepo interface {
	// Live location store (Redis hash + geo index)
	UpsertLiveLocation(ctx context.Context, loc *models.LiveLocation) error
	GetLiveLocation(ctx context.Context, userID string) (*models.LiveLocation, error)
	RemoveLiveLocation(ctx context.Context, userID string) error
	NearbyCandidates(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.GeoCandidate, error)
	EventRoster(ctx context.Context, eventID string) ([]string, error)

	// Geofence band state
	GetBand(ctx context.Context, userID, eventID string) (models.GeofenceBand, error)
	SetBand(ctx context.Context, userID, eventID string, band models.GeofenceBand) error
	ClearBand(ctx context.Context, userID, eventID string) error

	// Sharing consent settings (Postgres)
	UpsertShareSettings(ctx context.Context, settings *models.LocationShareSettings) error
	GetShareSettings(ctx context.Context, userID string) (*models.LocationShareSettings, error)

	// Location history (Postgres, append only)
	InsertHistory(ctx context.Context, entry *models.LocationHistory) error
	ListHistory(ctx context.Context, userID string, q *models.HistoryQuery) ([]*models.LocationHistory, error)

	// Geofence alert registrations (Postgres)
	CreateGeofenceAlert(ctx context.Context, alert *models.GeofenceAlert) error
	ListActiveGeofenceAlerts(ctx context.Context, userID string) ([]*models.GeofenceAlert, error)
	ListGeofenceAlertsForEvent(ctx context.Context, userID, eventID string) ([]*models.GeofenceAlert, error)
	MarkGeofenceTriggered(ctx context.Context, alertID uuid.UUID, distance float64) error
	RearmGeofenceAlerts(ctx context.Context, userID, eventID string) error
	DisableGeofenceAlert(ctx context.Context, userID string, alertID uuid.UUID) error
}
