package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetya/kumpul/services/location LocationUC

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// Live location operations
	UpdateLocation(ctx context.Context, userID string, sample *models.LocationSample) (*models.LocationUpdateAck, error)
	GetLocation(ctx context.Context, viewerID, targetID string) (*models.LiveLocation, error)
	CanView(ctx context.Context, viewerID string, target *models.LiveLocation) (bool, error)

	// Sharing consent operations
	UpdateSharingSettings(ctx context.Context, userID string, req *models.SharingUpdateRequest) (*models.LocationShareSettings, error)
	StopSharing(ctx context.Context, userID string) error

	// Proximity queries
	NearbyUsers(ctx context.Context, viewerID string, radiusMeters float64) ([]*models.NearbyUser, error)
	EventLocations(ctx context.Context, viewerID, eventID string) ([]*models.NearbyUser, error)

	// Location history operations
	LocationHistory(ctx context.Context, userID string, q *models.HistoryQuery) ([]*models.LocationHistory, error)

	// Geofence operations
	SetupGeofencing(ctx context.Context, userID string, req *models.GeofenceSetupRequest) ([]*models.GeofenceAlert, error)
	ActiveGeofences(ctx context.Context, userID string) ([]*models.GeofenceAlert, error)
	DisableGeofence(ctx context.Context, userID string, alertID uuid.UUID) error
}
