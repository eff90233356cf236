package rig

import (
	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/vmath"
)

// autoPilotStep converges the pose toward the selection target. This is
// exponential approach, not linear arrival: each tick covers a fixed
// fraction of the remaining distance, so the camera never formally
// "arrives" and is expected to be retargeted by new selections before
// visually settling.
func (r *Rig) autoPilotStep(cur core.Pose, cfg core.Config) core.Pose {
	s := cfg.Speed / 10

	out := cur
	out.Focus = cur.Focus.Add(r.target.focus.Sub(cur.Focus).Mul(s))
	out.Dist = cur.Dist + (r.target.dist-cur.Dist)*s
	out.Rot = vmath.StabilizeHorizon(vmath.Slerp(cur.Rot, r.target.rot, s))
	return out
}
