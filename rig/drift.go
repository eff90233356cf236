package rig

import (
	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/vmath"
)

// applyDrift layers the idle sway over whatever the active engine produced
// this tick. The ramp is a slow first-order filter, so sway fades in and
// out instead of popping, and the offsets are applied incrementally
// (current minus previous) so they compose with coasting or auto-pilot
// motion instead of overriding it.
func (r *Rig) applyDrift(p core.Pose, moving bool, now float64, cfg core.Config) core.Pose {
	// a drag suppresses sway; it comes back once the view has sat still
	// for a short while or a coast begins
	if r.swaySuppressed && !moving && now-r.lastMoveTime > parameter.DriftResumeDelay {
		r.swaySuppressed = false
	}

	target := 0.0
	if cfg.Drift && cfg.DriftIntensity > parameter.DriftRampEpsilon &&
		r.mode == core.ModeManual && !moving && !r.swaySuppressed {
		target = 1
	}
	r.driftRamp += (target - r.driftRamp) * parameter.DriftRampRate
	r.stats.DriftRamp.Set(r.driftRamp)

	if r.driftRamp <= parameter.DriftRampEpsilon {
		if r.driftActive {
			r.resetDriftOffsets()
		}
		return p
	}
	r.driftActive = true

	loc, rot := vmath.DriftOffsets(now, cfg.DriftIntensity*r.driftRamp)
	p.Focus = p.Focus.Add(p.Rot.Rotate(loc.Sub(r.lastDriftLoc)))
	p.Rot = rot.Mul(r.lastDriftRot.Inverse()).Mul(p.Rot).Normalize()
	r.lastDriftLoc = loc
	r.lastDriftRot = rot
	return p
}
