package engine

import "time"

// Clock abstracts the time source so timing-dependent logic
// (double-click windows, transition locks, debounce) is testable
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic readings
type SystemClock struct{}

// NewSystemClock creates a new monotonic time source
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
