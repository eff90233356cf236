package core

// Config is the rig tuning, read by value exactly once per tick. There is a
// single configuration source; nothing in the rig caches or mirrors it.
type Config struct {
	// AutoPilot enables fly-to-and-frame navigation toward selections.
	AutoPilot bool

	// BreakOnManual disengages auto-pilot the moment user motion exceeds
	// the fight tolerance.
	BreakOnManual bool

	// DistanceMultiplier scales the framing distance around a selection.
	DistanceMultiplier float64

	// Speed is the auto-pilot interpolation rate; the per-tick factor is
	// Speed/10.
	Speed float64

	// Friction is the manual drag/damping setting. Higher values bleed
	// coasting velocity faster.
	Friction float64

	// Drift enables the idle sway.
	Drift bool

	// DriftIntensity scales the sway amplitude and also widens the
	// break-on-manual tolerance.
	DriftIntensity float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		AutoPilot:          true,
		BreakOnManual:      true,
		DistanceMultiplier: 3.0,
		Speed:              0.03,
		Friction:           0.12,
		Drift:              true,
		DriftIntensity:     0.2,
	}
}
