package parameter

// Per-tick motion classification and safety limits
const (
	// Deadzone is the per-tick delta magnitude below which the view counts
	// as still; applied independently to pan length, zoom magnitude, and
	// rotation angle (radians)
	Deadzone = 0.0005

	// AxisAlignLimit flags a view direction locked onto a world axis,
	// where angular deltas become ill-conditioned
	AxisAlignLimit = 0.9999

	// MinViewDistance is the closest the integrators will push the view;
	// zoom velocity is dropped when the floor is hit
	MinViewDistance = 0.01
)

// Horizon stabilization shape
const (
	// HorizonBypassTilt disables leveling when the view direction is this
	// close to vertical, avoiding gimbal instability at the poles
	HorizonBypassTilt = 0.99

	// HorizonBlendStart is the tilt at which leveling starts fading back
	// toward the unleveled input
	HorizonBlendStart = 0.8

	// MinHorizontalLenSq rejects a flattened right-axis too short to
	// normalize
	MinHorizontalLenSq = 0.001
)
