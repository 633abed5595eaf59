package gateway

import (
	"context"
	"fmt"

	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

// PublishLocationUpdate publishes a live location change for analytics and
// downstream consumers.
func (g *LocationGW) PublishLocationUpdate(ctx context.Context, event *models.LocationUpdatedEvent) error {
	if err := g.producer.Publish(constants.TopicLocationUpdates, event); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}

// PublishSharingLifecycle announces a sharing start or stop.
func (g *LocationGW) PublishSharingLifecycle(ctx context.Context, event *models.SharingLifecycleEvent) error {
	if err := g.producer.Publish(constants.TopicSharingLifecycle, event); err != nil {
		return fmt.Errorf("failed to publish sharing lifecycle event: %w", err)
	}
	return nil
}

// PublishGeofenceAlert publishes a fired band transition.
func (g *LocationGW) PublishGeofenceAlert(ctx context.Context, event *models.GeofenceAlertEvent) error {
	if err := g.producer.Publish(constants.TopicGeofenceAlerts, event); err != nil {
		return fmt.Errorf("failed to publish geofence alert: %w", err)
	}
	return nil
}

// PublishPushNotification hands a notification to the push dispatcher.
func (g *LocationGW) PublishPushNotification(ctx context.Context, notification *models.PushNotification) error {
	if err := g.producer.Publish(constants.TopicPushNotification, notification); err != nil {
		return fmt.Errorf("failed to publish push notification: %w", err)
	}
	return nil
}
