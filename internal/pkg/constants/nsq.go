package constants

// NSQ topics
const (
	// Consumed by the push-notification dispatcher
	TopicPushNotification = "notification.push"

	// Location lifecycle events for analytics and downstream services
	TopicLocationUpdates  = "location.updates"
	TopicSharingLifecycle = "location.sharing"

	// Geofence transitions
	TopicGeofenceAlerts = "geofence.alerts"
)

// NSQ channels
const (
	ChannelLocationService = "location-service"
)
