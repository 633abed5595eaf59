package constants

// Redis key formats
const (
	// Location Service
	KeyLiveLocation = "location:live:%s" // Format: location:live:{user_id}, hash
	KeySharingGeo   = "location:geo"     // GEO set of all actively sharing users
	KeyEventRoster  = "location:event:%s" // Format: location:event:{event_id}, set of sharing user ids

	// Geofence Registry
	KeyGeofenceBand = "geofence:band:%s" // Format: geofence:band:{user_id}, hash event_id -> band

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields for the live location record
const (
	FieldLatitude         = "lat"
	FieldLongitude        = "lng"
	FieldAccuracy         = "accuracy"
	FieldHeading          = "heading"
	FieldSpeed            = "speed"
	FieldAltitude         = "altitude"
	FieldBattery          = "battery"
	FieldAddress          = "address"
	FieldCity             = "city"
	FieldState            = "state"
	FieldCountry          = "country"
	FieldGeohash          = "geohash"
	FieldSharingLevel     = "sharing_level"
	FieldSharingExpiresAt = "sharing_expires_at"
	FieldEventID          = "event_id"
	FieldIsAtEvent        = "is_at_event"
	FieldUpdatedAt        = "updated_at"
)
