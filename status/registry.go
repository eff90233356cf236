package status

import "sync/atomic"

// Registry aggregates the rig's internal counters and gauges across a
// session. Tick code writes lock-free; observers read whenever they like.
// This is also the silent anomaly channel: skipped ticks and degenerate
// resets are counted here instead of being logged mid-tick.
type Registry struct {
	Ticks        atomic.Int64
	SkippedTicks atomic.Int64
	Resets       atomic.Int64
	Scans        atomic.Int64
	ModeSwitches atomic.Int64
	Breaks       atomic.Int64
	Coasts       atomic.Int64

	DriftRamp AtomicFloat
	PanSpeed  AtomicFloat
	RotSpeed  AtomicFloat
}

// NewRegistry creates a zeroed registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot is a point-in-time copy of every metric, safe to render or
// compare without further synchronization.
type Snapshot struct {
	Ticks        int64
	SkippedTicks int64
	Resets       int64
	Scans        int64
	ModeSwitches int64
	Breaks       int64
	Coasts       int64

	DriftRamp float64
	PanSpeed  float64
	RotSpeed  float64
}

// Snapshot reads every metric once.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Ticks:        r.Ticks.Load(),
		SkippedTicks: r.SkippedTicks.Load(),
		Resets:       r.Resets.Load(),
		Scans:        r.Scans.Load(),
		ModeSwitches: r.ModeSwitches.Load(),
		Breaks:       r.Breaks.Load(),
		Coasts:       r.Coasts.Load(),
		DriftRamp:    r.DriftRamp.Get(),
		PanSpeed:     r.PanSpeed.Get(),
		RotSpeed:     r.RotSpeed.Get(),
	}
}
