package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/physics"
	"github.com/lixenwraith/kinecam/vmath"
)

// manualStep runs the manual physics engine: buffer deltas while the user
// drags, estimate a release velocity when the drag ends, then integrate
// that velocity under friction until it dies out.
func (r *Rig) manualStep(cur core.Pose, d core.Delta, moving bool, now float64, cfg core.Config, res *Result) core.Pose {
	if moving {
		r.coasting = false
		r.swaySuppressed = true
		r.buf.Push(d)
	} else if !r.coasting && r.buf.Len() > 0 {
		vel := physics.Estimate(r.buf)
		if !physics.Negligible(vel) {
			r.vel = vel
			r.coasting = true
			r.coastStart = now
			r.swaySuppressed = false
			res.CoastStarted = true
			r.stats.Coasts.Add(1)

			// a fast rotational flick should not also fling the camera
			// sideways
			if vmath.QuatAngle(vel.Rot) > parameter.FlickAngle {
				r.vel.Pan = mgl64.Vec3{}
			}
		}
		r.buf.Clear()
	}

	if !r.coasting {
		return cur
	}

	r.vel = physics.Decay(r.vel, physics.FrictionFactor(cfg.Friction))
	if physics.Negligible(r.vel) {
		r.coasting = false
		return cur
	}

	out := cur
	out.Focus = cur.Focus.Add(r.vel.Pan)

	dist := cur.Dist + r.vel.Zoom
	if dist < parameter.MinViewDistance {
		dist = parameter.MinViewDistance
		r.vel.Zoom = 0
	}
	out.Dist = dist

	raw := r.vel.Rot.Mul(cur.Rot).Normalize()
	leveled := vmath.StabilizeHorizon(raw)

	// stabilization pulls in gently over the first half second of a coast
	// instead of snapping the horizon level at release
	blend := parameter.StabilizeMaxBlend
	if dur := now - r.coastStart; dur < parameter.StabilizeRampTime {
		blend = dur / parameter.StabilizeRampTime * parameter.StabilizeMaxBlend
	}
	out.Rot = vmath.Slerp(raw, leveled, blend)
	return out
}
