package tracking

import (
	"sync"

	"github.com/prasetya/kumpul/internal/utils"
)

// Session is the client-side tracking state: battery, sharing flag and the
// last fix that was actually reported. It replaces ambient global state; the
// channel client holds a reference and consults it before submitting samples.
type Session struct {
	mu       sync.Mutex
	battery  float64
	sharing  bool
	lastLat  float64
	lastLng  float64
	hasFix   bool
}

// NewSession creates a session with a full battery and sharing disabled.
func NewSession() *Session {
	return &Session{battery: 1.0}
}

// SetBattery records the device battery level (0..1).
func (s *Session) SetBattery(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.battery = level
}

// SetSharing toggles the sharing flag. Turning sharing off clears the last
// reported fix so a later restart reports immediately.
func (s *Session) SetSharing(sharing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sharing = sharing
	if !sharing {
		s.hasFix = false
	}
}

// Profile returns the cadence profile for the current session state.
func (s *Session) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Cadence(s.battery, s.sharing)
}

// ShouldReport decides whether a fix moved far enough from the last reported
// one to be worth submitting, and records it as reported when it did. The
// first fix after sharing starts is always reported.
func (s *Session) ShouldReport(lat, lng float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := Cadence(s.battery, s.sharing)
	if profile.Stopped {
		return false
	}

	if s.hasFix {
		moved := utils.Distance(s.lastLat, s.lastLng, lat, lng)
		if moved < profile.MinDisplacementMeters {
			return false
		}
	}

	s.lastLat = lat
	s.lastLng = lng
	s.hasFix = true
	return true
}
