package tracking

import "time"

// Accuracy is the GPS accuracy tier requested from the device.
type Accuracy string

const (
	AccuracyLow      Accuracy = "low"
	AccuracyBalanced Accuracy = "balanced"
)

// Battery level below which tracking drops to the low-power tier.
const LowBatteryThreshold = 0.2

// Profile is the polling policy selected for the current battery and sharing
// state.
type Profile struct {
	Interval              time.Duration
	Accuracy              Accuracy
	MinDisplacementMeters float64
	Stopped               bool
}

var (
	normalProfile = Profile{
		Interval:              5 * time.Second,
		Accuracy:              AccuracyBalanced,
		MinDisplacementMeters: 10,
	}
	lowPowerProfile = Profile{
		Interval:              30 * time.Second,
		Accuracy:              AccuracyLow,
		MinDisplacementMeters: 50,
	}
	stoppedProfile = Profile{Stopped: true}
)

// Cadence selects the tracking profile from battery level and sharing state.
// Not sharing stops tracking entirely regardless of battery.
func Cadence(batteryLevel float64, isSharing bool) Profile {
	if !isSharing {
		return stoppedProfile
	}
	if batteryLevel < LowBatteryThreshold {
		return lowPowerProfile
	}
	return normalProfile
}
