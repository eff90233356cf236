package parameter

// Selection scanning and auto-pilot targeting
const (
	// ScanInterval is the minimum spacing between selection scans in
	// seconds; a throttle, not a concurrency mechanism
	ScanInterval = 0.1

	// SelectionPadding is added to the selection radius before the
	// configured distance multiplier is applied
	SelectionPadding = 0.5

	// MinNormalLenSq rejects an accumulated normal (or a look direction)
	// too short to orient by
	MinNormalLenSq = 0.001

	// IsoPitch and IsoYaw tilt the normal-aligned framing into an
	// isometric-style view (atan(1/2) and pi/4)
	IsoPitch = 0.463647
	IsoYaw   = 0.785398

	// FallbackTilt is the smaller tilt used when the selection has no
	// usable normal and the view orients toward the centroid instead
	FallbackTilt = 0.349
)

// Break-on-manual fight tolerances, widened linearly by the drift
// intensity setting k: tol = base + gain*k
const (
	BreakLocBase = 0.01
	BreakLocGain = 0.2
	BreakRotBase = 0.008
	BreakRotGain = 0.1
)
