package clock

import "time"

// Interface represents the source of time readings used when measuring
// elapsed intervals.  Readings taken from the system implementation carry
// Go's monotonic clock component, so differences between two readings are
// immune to wall-clock adjustments.
type Interface interface {
	// Now returns the current instant.
	Now() time.Time

	// Sleep blocks the calling goroutine for at least the given duration.
	Sleep(time.Duration)
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
