package models

import "time"

// SharingLevel is the visibility tier a user selects for their own location.
type SharingLevel string

const (
	SharingLevelPrivate     SharingLevel = "private"
	SharingLevelFriendsOnly SharingLevel = "friends_only"
	SharingLevelEventOnly   SharingLevel = "event_only"
	SharingLevelPublic      SharingLevel = "public"
)

// Valid reports whether the level is one of the four known tiers.
func (l SharingLevel) Valid() bool {
	switch l {
	case SharingLevelPrivate, SharingLevelFriendsOnly, SharingLevelEventOnly, SharingLevelPublic:
		return true
	}
	return false
}

// Relationship between a viewer and a location owner, as reported by the
// identity service.
type Relationship string

const (
	RelationshipFriends Relationship = "friends"
	RelationshipNone    Relationship = "none"
)

// LocationShareSettings is the per-user sharing consent record. EventID is
// meaningful only when Level is event_only.
type LocationShareSettings struct {
	UserID    string       `json:"user_id" db:"user_id"`
	Level     SharingLevel `json:"sharing_level" db:"sharing_level"`
	EventID   string       `json:"event_id,omitempty" db:"event_id"`
	ExpiresAt *time.Time   `json:"sharing_expires_at,omitempty" db:"sharing_expires_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// IsActive is the lazy-expiry consent predicate. It is recomputed on every
// read; there is no background sweep that force-expires a share. Private is
// never active, regardless of expiry.
func (s *LocationShareSettings) IsActive(now time.Time) bool {
	if s == nil || s.Level == "" || s.Level == SharingLevelPrivate {
		return false
	}
	if s.ExpiresAt != nil && now.After(*s.ExpiresAt) {
		return false
	}
	return true
}

// SharingUpdateRequest is the payload for changing sharing settings.
type SharingUpdateRequest struct {
	Level     SharingLevel `json:"sharing_level"`
	EventID   string       `json:"event_id,omitempty"`
	ExpiresAt *time.Time   `json:"sharing_expires_at,omitempty"`
}
