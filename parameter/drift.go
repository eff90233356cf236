package parameter

// Idle sway generation
const (
	// DriftRampRate is the per-tick low-pass coefficient pulling the sway
	// ramp toward its target; at 100 ticks/s the ramp reaches 63% of a
	// step in roughly one second
	DriftRampRate = 0.01

	// DriftRampEpsilon is the ramp level below which sway is considered
	// off and stored offsets are reset
	DriftRampEpsilon = 0.001

	// DriftResumeDelay is how long the view must sit still after a drag
	// before sway is allowed back in (seconds)
	DriftResumeDelay = 0.5

	// DriftStrength converts the configured intensity to a positional
	// amplitude; DriftRotFactor further scales the angular component
	DriftStrength  = 0.05
	DriftRotFactor = 0.2
)

// Sway waveform frequencies in rad/s. Deliberately incommensurate so the
// summed oscillation never settles into a visible repeating pattern.
const (
	DriftFreqX1 = 1.2
	DriftFreqX2 = 2.1
	DriftFreqY1 = 1.4
	DriftFreqY2 = 2.4
	DriftFreqZ  = 0.5

	DriftFreqPitch = 0.8
	DriftFreqYaw   = 1.1
	DriftFreqRoll  = 1.6
)
