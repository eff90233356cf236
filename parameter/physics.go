package parameter

// Manual physics: velocity estimation and coasting
const (
	// VelocityWindow is the capacity of the per-rig delta buffer used for
	// short-horizon velocity averaging
	VelocityWindow = 3

	// FrictionBase and FrictionScale map the configured drag setting to a
	// per-tick velocity retention factor: max(0, FrictionBase - FrictionScale*drag)
	FrictionBase  = 0.98
	FrictionScale = 0.08

	// Energy floors; coasting never starts below them and stops once all
	// three velocity channels fall under them
	MinPanSpeed  = 0.001
	MinZoomSpeed = 0.001
	MinRotSpeed  = 0.0001

	// FlickAngle is the angular release speed (radians per tick) beyond
	// which translational velocity is discarded, so a fast rotational
	// flick does not also fling the camera sideways
	FlickAngle = 0.003

	// StabilizeRampTime and StabilizeMaxBlend shape how hard horizon
	// leveling pulls during a coast: the blend ramps linearly from zero to
	// the max over the first ramp-time seconds
	StabilizeRampTime = 0.5
	StabilizeMaxBlend = 0.1
)
