package constants

// WebSocket event types, inbound (client -> server)
const (
	EventPing                  = "ping"
	EventLocationUpdate        = "location_update"
	EventStartSharing          = "start_sharing"
	EventStopSharing           = "stop_sharing"
	EventRequestNearbyUsers    = "request_nearby_users"
	EventRequestEventLocations = "request_event_locations"
	EventSubscribe             = "subscribe"
	EventUnsubscribe           = "unsubscribe"
)

// WebSocket event types, outbound (server -> client)
const (
	EventError                  = "error"
	EventPong                   = "pong"
	EventLocationUpdated        = "location_updated"
	EventNearbyUsers            = "nearby_users"
	EventEventLocations         = "event_locations"
	EventGeofenceAlert          = "geofence_alert"
	EventLocationSharingStarted = "location_sharing_started"
	EventLocationSharingStopped = "location_sharing_stopped"
	EventUserStatusChanged      = "user_status_changed"
)

// Subscription scopes
const (
	ScopeNearby      = "nearby"
	ScopeEventPrefix = "event:" // followed by an event id
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorInvalidSharing   = "invalid_sharing"
)

// ErrorSeverity classifies how much detail an error message may leak to the
// client.
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
