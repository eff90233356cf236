package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/parameter"
)

// StabilizeHorizon levels the camera roll while preserving the view
// direction. Near straight-up or straight-down views the input is returned
// unchanged; leveling there is ill-conditioned and would snap visibly.
// Between HorizonBlendStart and HorizonBypassTilt the result blends back
// toward the unleveled input so the bypass engages gradually.
func StabilizeHorizon(q mgl64.Quat) mgl64.Quat {
	viewZ := q.Rotate(unitZ)
	tilt := math.Abs(viewZ[2])
	if tilt > parameter.HorizonBypassTilt {
		return q
	}

	viewX := q.Rotate(unitX)
	flat := mgl64.Vec3{viewX[0], viewX[1], 0}
	if flat.LenSqr() < parameter.MinHorizontalLenSq {
		return q
	}

	// The level right axis is perpendicular to both world up and the view
	// direction. Keep it on the same side as the current right axis so
	// upside-down views level continuously instead of flipping.
	x := unitZ.Cross(viewZ)
	if x.LenSqr() < 1e-12 {
		return q
	}
	x = x.Normalize()
	if x.Dot(flat) < 0 {
		x = x.Mul(-1)
	}
	y := viewZ.Cross(x)
	level := FromBasis(x, y, viewZ)

	if tilt > parameter.HorizonBlendStart {
		f := (tilt - parameter.HorizonBlendStart) /
			(parameter.HorizonBypassTilt - parameter.HorizonBlendStart)
		return Slerp(level, q, f)
	}
	return level
}
