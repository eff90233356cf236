package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/vmath"
)

// Moving reports whether a per-tick delta escapes the stillness deadzone on
// any channel. Channels are tested independently: a pure zoom counts as
// motion even with the view frozen.
func Moving(d core.Delta) bool {
	return d.Loc.Len() > parameter.Deadzone ||
		math.Abs(d.Dist) > parameter.Deadzone ||
		vmath.QuatAngle(d.Rot) > parameter.Deadzone
}

// Estimate derives a release velocity from the buffered drag deltas:
// arithmetic mean per channel, with the rotational samples averaged as
// quaternion components and renormalized.
func Estimate(buf *core.DeltaBuffer) core.Kinetic {
	deltas := buf.Deltas()
	locs := make([]mgl64.Vec3, len(deltas))
	dists := make([]float64, len(deltas))
	rots := make([]mgl64.Quat, len(deltas))
	for i, d := range deltas {
		locs[i] = d.Loc
		dists[i] = d.Dist
		rots[i] = d.Rot
	}
	return core.Kinetic{
		Pan:  vmath.AverageVec3(locs),
		Zoom: vmath.AverageFloat(dists),
		Rot:  vmath.AverageQuat(rots),
	}
}

// Negligible reports whether a velocity is at or below the coasting energy
// floor on all three channels.
func Negligible(k core.Kinetic) bool {
	return k.Pan.Len() <= parameter.MinPanSpeed &&
		math.Abs(k.Zoom) <= parameter.MinZoomSpeed &&
		vmath.QuatAngle(k.Rot) <= parameter.MinRotSpeed
}
