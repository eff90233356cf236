package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/vmath"
)

// scanTarget is the selection-derived destination for auto-pilot.
type scanTarget struct {
	fingerprint int
	focus       mgl64.Vec3
	dist        float64
	rot         mgl64.Quat
}

// scan queries the selection collaborator at most once per ScanInterval
// and engages auto-pilot when the selection fingerprint changes. Engaging
// auto-pilot wipes manual physics; coasting and AUTO are mutually
// exclusive.
func (r *Rig) scan(cur core.Pose, cfg core.Config, now float64, res *Result) {
	if now-r.lastScan <= parameter.ScanInterval || !cfg.AutoPilot {
		return
	}
	// the throttle covers the query itself, not just successful scans
	r.lastScan = now

	sel, ok := r.host.Selection(r.id)
	if !ok {
		return
	}
	r.stats.Scans.Add(1)

	tgt, ok := computeTarget(sel, cur, cfg)
	if !ok || tgt.fingerprint == r.fingerprint {
		return
	}
	r.fingerprint = tgt.fingerprint
	r.switchMode(core.ModeAuto, res)
	r.target = autoTarget{focus: tgt.focus, dist: tgt.dist, rot: tgt.rot}
	r.wipePhysics()
}

// computeTarget reduces a selection snapshot to an auto-pilot target:
// world centroid, framing distance from the bounding radius, a cheap
// order-independent fingerprint, and an orientation.
//
// The fingerprint (count + index sum) can collide for different
// selections; that is an accepted approximation, not a correctness
// requirement.
func computeTarget(sel core.Selection, cur core.Pose, cfg core.Config) (scanTarget, bool) {
	n := sel.Len()
	if n == 0 {
		return scanTarget{}, false
	}

	var sumPos, sumNormal mgl64.Vec3
	fp := n
	for i, p := range sel.Positions {
		sumPos = sumPos.Add(p)
		fp += sel.Indices[i]
	}
	for _, nv := range sel.Normals {
		sumNormal = sumNormal.Add(nv)
	}

	center := sumPos.Mul(1 / float64(n))
	radius := 0.0
	for _, p := range sel.Positions {
		if d := p.Sub(center).Len(); d > radius {
			radius = d
		}
	}

	// orientation: look along the area-weighted normal with an isometric
	// tilt when the selection has a usable facing, otherwise look from the
	// current focus toward the centroid with a smaller tilt
	rot := cur.Rot
	worldNormal := sel.Transform.Mat3().Mul3x1(sumNormal)
	if worldNormal.LenSqr() > parameter.MinNormalLenSq {
		if base, ok := vmath.TrackZ(worldNormal); ok {
			rot = base.Mul(vmath.EulerXYZ(parameter.IsoPitch, parameter.IsoYaw, 0))
		}
	} else if dir := center.Sub(cur.Focus); dir.LenSqr() > parameter.MinNormalLenSq {
		if base, ok := vmath.TrackNegZ(dir); ok {
			rot = base.Mul(vmath.EulerXYZ(parameter.FallbackTilt, parameter.FallbackTilt, 0))
		}
	}

	return scanTarget{
		fingerprint: fp,
		focus:       center,
		dist:        (radius + parameter.SelectionPadding) * cfg.DistanceMultiplier,
		rot:         rot,
	}, true
}
