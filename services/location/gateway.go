package location

import (
	"context"

	"github.com/prasetya/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/prasetya/kumpul/services/location LocationGW

// LocationGW defines the interface for location gateway operations: event
// publication over the message bus and lookups against collaborator services.
type LocationGW interface {
	// Message bus publications, fire and forget from the caller's view
	PublishLocationUpdate(ctx context.Context, event *models.LocationUpdatedEvent) error
	PublishSharingLifecycle(ctx context.Context, event *models.SharingLifecycleEvent) error
	PublishGeofenceAlert(ctx context.Context, event *models.GeofenceAlertEvent) error
	PublishPushNotification(ctx context.Context, notification *models.PushNotification) error

	// Identity service
	IsFriend(ctx context.Context, userID, otherID string) (bool, error)
	GetUserProfiles(ctx context.Context, userIDs []string) (map[string]*models.UserProfile, error)

	// Event directory
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
}
