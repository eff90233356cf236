package parameter

import "time"

// Scheduler cadence
const (
	// TickInterval is the nominal spacing between rig updates
	TickInterval = 10 * time.Millisecond

	// IdleTickInterval is the relaxed spacing used while every rig
	// reports itself fully at rest
	IdleTickInterval = 100 * time.Millisecond
)
