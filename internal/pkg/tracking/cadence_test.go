package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCadence(t *testing.T) {
	tests := []struct {
		name     string
		battery  float64
		sharing  bool
		expected Profile
	}{
		{
			name:     "normal battery while sharing",
			battery:  0.8,
			sharing:  true,
			expected: Profile{Interval: 5 * time.Second, Accuracy: AccuracyBalanced, MinDisplacementMeters: 10},
		},
		{
			name:     "low battery while sharing",
			battery:  0.1,
			sharing:  true,
			expected: Profile{Interval: 30 * time.Second, Accuracy: AccuracyLow, MinDisplacementMeters: 50},
		},
		{
			name:     "battery exactly at threshold uses normal tier",
			battery:  0.2,
			sharing:  true,
			expected: Profile{Interval: 5 * time.Second, Accuracy: AccuracyBalanced, MinDisplacementMeters: 10},
		},
		{
			name:     "not sharing stops tracking even on full battery",
			battery:  1.0,
			sharing:  false,
			expected: Profile{Stopped: true},
		},
		{
			name:     "not sharing stops tracking on low battery",
			battery:  0.05,
			sharing:  false,
			expected: Profile{Stopped: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cadence(tt.battery, tt.sharing))
		})
	}
}

func TestSession_ShouldReport(t *testing.T) {
	s := NewSession()
	s.SetSharing(true)

	// First fix always reports.
	assert.True(t, s.ShouldReport(40.0, -74.0))

	// A few meters of drift stays below the 10 m normal-tier threshold.
	assert.False(t, s.ShouldReport(40.00001, -74.0))

	// ~111 m north clears it.
	assert.True(t, s.ShouldReport(40.001, -74.0))
}

func TestSession_ShouldReport_LowBatteryThreshold(t *testing.T) {
	s := NewSession()
	s.SetSharing(true)
	s.SetBattery(0.1)

	assert.True(t, s.ShouldReport(40.0, -74.0))

	// ~22 m is enough for the normal tier but not the 50 m low-power tier.
	assert.False(t, s.ShouldReport(40.0002, -74.0))

	// ~55 m clears the low-power threshold.
	assert.True(t, s.ShouldReport(40.0005, -74.0))
}

func TestSession_NotSharingNeverReports(t *testing.T) {
	s := NewSession()

	assert.False(t, s.ShouldReport(40.0, -74.0))

	s.SetSharing(true)
	assert.True(t, s.ShouldReport(40.0, -74.0))

	// Stopping sharing clears the last fix; restart reports immediately.
	s.SetSharing(false)
	assert.False(t, s.ShouldReport(40.001, -74.0))
	s.SetSharing(true)
	assert.True(t, s.ShouldReport(40.001, -74.0))
}
