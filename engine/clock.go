// Package engine provides the clock infrastructure driving the caret
// animator: wall-time sources and frame-clock implementations for hosts
// that own an event loop, for standalone real-time use, and for tests.
package engine

import "time"

// Clock is a wall-time source. The animator itself only consumes frame
// timestamps; Clock exists so frame clocks and tests share one time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with monotonic clock readings.
type SystemClock struct{}

// NewSystemClock creates a monotonic system time source.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with a monotonic clock reading.
func (*SystemClock) Now() time.Time {
	return time.Now()
}
