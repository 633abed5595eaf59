package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is a raw position fix submitted by a client, either over the
// REST surface or the realtime channel. Optional sensor fields stay nil when
// the device did not report them.
type LocationSample struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     *float64  `json:"accuracy,omitempty"`
	Heading      *float64  `json:"heading,omitempty"`
	Speed        *float64  `json:"speed,omitempty"`
	Altitude     *float64  `json:"altitude,omitempty"`
	BatteryLevel *float64  `json:"battery_level,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Country      string    `json:"country,omitempty"`
	Timestamp    time.Time `json:"timestamp,omitempty"`
}

// LiveLocation is the single current location record per user. It is
// overwritten on every accepted update and carries a denormalized copy of the
// owner's sharing settings so visibility can be evaluated from the hot store.
type LiveLocation struct {
	UserID           string       `json:"user_id"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	Accuracy         *float64     `json:"accuracy,omitempty"`
	Heading          *float64     `json:"heading,omitempty"`
	Speed            *float64     `json:"speed,omitempty"`
	Altitude         *float64     `json:"altitude,omitempty"`
	BatteryLevel     *float64     `json:"battery_level,omitempty"`
	Address          string       `json:"address,omitempty"`
	City             string       `json:"city,omitempty"`
	State            string       `json:"state,omitempty"`
	Country          string       `json:"country,omitempty"`
	Geohash          string       `json:"geohash,omitempty"`
	SharingLevel     SharingLevel `json:"sharing_level"`
	SharingExpiresAt *time.Time   `json:"sharing_expires_at,omitempty"`
	EventID          string       `json:"event_id,omitempty"`
	IsAtEvent        bool         `json:"is_at_event"`
	IsActive         bool         `json:"is_active"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// LocationHistory is one append-only row per accepted location update. Rows
// are never mutated and outlive the LiveLocation record they were derived
// from.
type LocationHistory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Address   string    `json:"address,omitempty" db:"address"`
	EventID   string    `json:"event_id,omitempty" db:"event_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HistoryQuery narrows a location history listing.
type HistoryQuery struct {
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
	EventID string `query:"event_id"`
}

// NearbyUser is the distance-annotated projection returned by proximity
// queries. It is derived per request and never persisted.
type NearbyUser struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	Distance  float64   `json:"distance"`
	LastSeen  time.Time `json:"last_seen"`
	IsAtEvent bool      `json:"is_at_event,omitempty"`
	EventID   string    `json:"event_id,omitempty"`
}

// ReasonLocationUnknown marks an empty proximity result caused by the caller
// having no live position to search from.
const ReasonLocationUnknown = "location_unknown"

// NearbyUsersResult wraps a proximity answer. Reason distinguishes a
// genuinely empty neighborhood from a caller the engine cannot search for.
type NearbyUsersResult struct {
	Users  []*NearbyUser `json:"users"`
	Reason string        `json:"reason,omitempty"`
}

// GeoCandidate is one raw hit from the geo index, before visibility
// filtering and profile hydration.
type GeoCandidate struct {
	UserID    string
	Latitude  float64
	Longitude float64
	Distance  float64
}

// CadencePolicy is the tracking recommendation returned alongside a location
// acknowledgement so clients can adjust their polling without a second call.
type CadencePolicy struct {
	IntervalSeconds       int     `json:"interval_seconds"`
	Accuracy              string  `json:"accuracy,omitempty"`
	MinDisplacementMeters float64 `json:"min_displacement_meters,omitempty"`
	Stopped               bool    `json:"stopped"`
}

// LocationUpdateAck is the response to an accepted location update.
type LocationUpdateAck struct {
	Location *LiveLocation `json:"location"`
	Cadence  CadencePolicy `json:"cadence"`
}

// Event is the slice of the event directory's record this service needs:
// venue coordinates for arrival checks and the host for alert delivery.
type Event struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HostID         string  `json:"host_id"`
	VenueLatitude  float64 `json:"venue_latitude"`
	VenueLongitude float64 `json:"venue_longitude"`
}

// UserProfile is the identity service's public projection of a user.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url,omitempty"`
}
