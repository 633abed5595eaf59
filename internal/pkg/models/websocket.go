package models

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClaims are the JWT claims required to open a channel connection.
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// NearbyUsersRequest asks the channel for a proximity query; the result is
// pushed back only to the requesting connection.
type NearbyUsersRequest struct {
	RadiusMeters float64 `json:"radius_meters"`
}

// EventLocationsRequest asks the channel for everyone sharing into an event.
type EventLocationsRequest struct {
	EventID string `json:"event_id"`
}

// SubscribeRequest adds or removes fan-out scopes for a connection.
// A scope is either "nearby" or "event:<event_id>".
type SubscribeRequest struct {
	Scopes []string `json:"scopes"`
}

// LocationUpdatedEvent is fanned out to visibility-eligible subscribers when
// a user's live location changes.
type LocationUpdatedEvent struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	IsAtEvent bool      `json:"is_at_event,omitempty"`
	EventID   string    `json:"event_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SharingLifecycleEvent announces that a user started or stopped sharing.
type SharingLifecycleEvent struct {
	UserID    string       `json:"user_id"`
	Level     SharingLevel `json:"sharing_level"`
	EventID   string       `json:"event_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// UserStatusEvent reports connectivity changes of a user's last connection.
type UserStatusEvent struct {
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"` // "online" or "offline"
	Timestamp time.Time `json:"timestamp"`
}
