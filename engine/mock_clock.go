package engine

// MockClock is a hand-advanced clock for deterministic tests.
type MockClock struct {
	t float64
}

// NewMockClock creates a clock frozen at t seconds.
func NewMockClock(t float64) *MockClock {
	return &MockClock{t: t}
}

// Now returns the frozen time.
func (c *MockClock) Now() float64 {
	return c.t
}

// Advance moves the clock forward by dt seconds.
func (c *MockClock) Advance(dt float64) {
	c.t += dt
}

// Set jumps the clock to t seconds.
func (c *MockClock) Set(t float64) {
	c.t = t
}
