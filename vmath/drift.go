package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/parameter"
)

// DriftOffsets returns the deterministic idle-sway offsets for monotonic
// time t in seconds. The positional offset is expressed in view space;
// callers rotate it into the world by the current orientation. Intensity
// already includes the sway ramp, so the offsets fade in and out with it.
func DriftOffsets(t, intensity float64) (loc mgl64.Vec3, rot mgl64.Quat) {
	strength := intensity * parameter.DriftStrength
	rotStrength := strength * parameter.DriftRotFactor

	loc = mgl64.Vec3{
		(math.Sin(t*parameter.DriftFreqX1) + math.Cos(t*parameter.DriftFreqX2)*0.5) * strength,
		(math.Cos(t*parameter.DriftFreqY1) + math.Sin(t*parameter.DriftFreqY2)*0.5) * strength,
		math.Sin(t*parameter.DriftFreqZ) * 0.5 * strength,
	}
	rot = EulerXYZ(
		math.Sin(t*parameter.DriftFreqPitch)*rotStrength,
		math.Cos(t*parameter.DriftFreqYaw)*rotStrength,
		math.Sin(t*parameter.DriftFreqRoll)*rotStrength*0.5,
	)
	return loc, rot
}
