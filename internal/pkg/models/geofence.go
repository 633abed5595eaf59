package models

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceBand is the distance bucket of a user relative to an event venue.
type GeofenceBand string

const (
	GeofenceBandFar         GeofenceBand = "far"
	GeofenceBandApproaching GeofenceBand = "approaching"
	GeofenceBandArrived     GeofenceBand = "arrived"
)

// GeofenceAlertType identifies the transition an alert reports.
type GeofenceAlertType string

const (
	GeofenceAlertApproaching GeofenceAlertType = "approaching"
	GeofenceAlertArrived     GeofenceAlertType = "arrived"
	GeofenceAlertLeft        GeofenceAlertType = "left"
)

// Valid reports whether the alert type is one of the known transitions.
func (t GeofenceAlertType) Valid() bool {
	switch t {
	case GeofenceAlertApproaching, GeofenceAlertArrived, GeofenceAlertLeft:
		return true
	}
	return false
}

// GeofenceAlert is the registration and trigger state for one
// (user, event, alert type) tuple. Triggering is one-shot: once Triggered is
// set it stays set until the user re-enters the far band, which re-arms it.
type GeofenceAlert struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      string            `json:"user_id" db:"user_id"`
	EventID     string            `json:"event_id" db:"event_id"`
	AlertType   GeofenceAlertType `json:"alert_type" db:"alert_type"`
	Radius      float64           `json:"radius" db:"radius"`
	Distance    float64           `json:"distance" db:"distance"`
	Triggered   bool              `json:"triggered" db:"triggered"`
	TriggeredAt *time.Time        `json:"triggered_at,omitempty" db:"triggered_at"`
	IsActive    bool              `json:"is_active" db:"is_active"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// GeofenceSetupRequest registers geofence alerts for the calling user on an
// event. Radius is in meters; AlertTypes defaults to all three when empty.
type GeofenceSetupRequest struct {
	EventID    string              `json:"event_id"`
	Radius     float64             `json:"radius"`
	AlertTypes []GeofenceAlertType `json:"alert_types,omitempty"`
}

// GeofenceAlertEvent is the payload fanned out on the realtime channel and
// handed to the push dispatcher when a band transition fires.
type GeofenceAlertEvent struct {
	AlertID   uuid.UUID         `json:"alert_id"`
	UserID    string            `json:"user_id"`
	EventID   string            `json:"event_id"`
	EventName string            `json:"event_name,omitempty"`
	HostID    string            `json:"host_id,omitempty"`
	AlertType GeofenceAlertType `json:"alert_type"`
	Distance  float64           `json:"distance"`
	Radius    float64           `json:"radius"`
	Timestamp time.Time         `json:"timestamp"`
}
