package engine

import "time"

// MonotonicClock reports seconds elapsed since construction using the
// process monotonic clock; wall-clock adjustments never leak through.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns monotonic seconds since the clock was created.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
