// Package rig implements the per-viewport kinetic camera controller: a
// tick-driven state machine fusing momentum coasting after manual drags,
// auto-pilot fly-to-and-frame navigation toward selections, and a subtle
// idle sway, without visible discontinuities between the three.
package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/physics"
	"github.com/lixenwraith/kinecam/status"
	"github.com/lixenwraith/kinecam/vmath"
)

// Rig owns the kinetic state of exactly one viewport. A rig never touches
// another viewport's state, so independent rigs need no locking. All state
// lives for one session; a new session starts from a fresh rig.
type Rig struct {
	id    core.ViewportID
	host  core.Host
	clock core.Clock
	stats *status.Registry

	mode core.Mode

	// history is the last pose this rig wrote (read-after-write), unset
	// until the first observation so the first tick sees no spurious delta
	hasHistory bool
	last       core.Pose

	// manual physics
	buf        *core.DeltaBuffer
	vel        core.Kinetic
	coasting   bool
	coastStart float64

	// auto-pilot target, meaningful only while mode == ModeAuto; stale
	// values are harmless because nothing reads them in MANUAL
	target      autoTarget
	fingerprint int
	lastScan    float64

	// idle sway
	driftRamp      float64
	driftActive    bool
	lastDriftLoc   mgl64.Vec3
	lastDriftRot   mgl64.Quat
	swaySuppressed bool
	lastMoveTime   float64
}

type autoTarget struct {
	focus mgl64.Vec3
	dist  float64
	rot   mgl64.Quat
}

// Result reports what a single tick did, for redraw, scheduling, and
// observer decisions.
type Result struct {
	// Ticked is false when the host had no pose for the viewport and the
	// tick was skipped without touching any state.
	Ticked bool

	// Changed is true when the rig wrote a pose different from the one it
	// read.
	Changed bool

	// Idle is true when nothing is in flight: manual mode, no motion, no
	// coast, no sway. The scheduler may relax its cadence.
	Idle bool

	// Reset is true when the safety detector wiped physics this tick.
	Reset bool

	ModeSwitched bool
	CoastStarted bool
}

// New creates a rig for one viewport. The registry must be non-nil; rigs
// report counters there instead of logging.
func New(id core.ViewportID, host core.Host, clock core.Clock, stats *status.Registry) *Rig {
	return &Rig{
		id:           id,
		host:         host,
		clock:        clock,
		stats:        stats,
		mode:         core.ModeManual,
		buf:          core.NewDeltaBuffer(parameter.VelocityWindow),
		vel:          core.NewKinetic(),
		lastDriftRot: mgl64.QuatIdent(),
	}
}

// Mode returns the engine currently driving the rig.
func (r *Rig) Mode() core.Mode {
	return r.mode
}

// Coasting reports whether manual momentum is still decaying.
func (r *Rig) Coasting() bool {
	return r.coasting
}

// Tick runs one update: observe the pose, classify motion, run the active
// mode's engine, layer sway on top, and write the result back. It is a
// total function of (state, pose, cfg); any missing collaborator skips the
// tick silently.
func (r *Rig) Tick(cfg core.Config) Result {
	cur, ok := r.host.Pose(r.id)
	if !ok {
		r.stats.SkippedTicks.Add(1)
		return Result{}
	}
	r.stats.Ticks.Add(1)

	if !r.hasHistory {
		r.last = cur
		r.hasHistory = true
	}

	d := core.Delta{
		Loc:  cur.Focus.Sub(r.last.Focus),
		Dist: cur.Dist - r.last.Dist,
		Rot:  cur.Rot.Mul(r.last.Rot.Inverse()).Normalize(),
	}

	if r.degenerate(cur) {
		r.wipePhysics()
		r.resetDriftOffsets()
		r.last = cur
		r.stats.Resets.Add(1)
		return Result{Ticked: true, Reset: true}
	}

	now := r.clock.Now()
	res := Result{Ticked: true}

	r.scan(cur, cfg, now, &res)

	moving := physics.Moving(d)
	if moving {
		r.lastMoveTime = now
	}
	r.stats.PanSpeed.Set(d.Loc.Len())
	r.stats.RotSpeed.Set(vmath.QuatAngle(d.Rot))

	if r.mode == core.ModeAuto && !cfg.AutoPilot {
		r.switchMode(core.ModeManual, &res)
	}

	out := cur
	switch r.mode {
	case core.ModeAuto:
		if cfg.BreakOnManual && fightDetected(d, cfg) {
			r.switchMode(core.ModeManual, &res)
			r.stats.Breaks.Add(1)
		}
		if r.mode == core.ModeAuto {
			out = r.autoPilotStep(cur, cfg)
		}
	case core.ModeManual:
		out = r.manualStep(cur, d, moving, now, cfg, &res)
	}

	out = r.applyDrift(out, moving, now, cfg)

	if out != cur {
		r.host.SetPose(r.id, out)
		r.host.RequestRedraw(r.id)
		res.Changed = true
	}
	r.last = out

	res.Idle = !moving && !r.coasting && r.mode == core.ModeManual &&
		r.driftRamp <= parameter.DriftRampEpsilon &&
		(!cfg.Drift || cfg.DriftIntensity <= parameter.DriftRampEpsilon)
	return res
}

// degenerate detects configurations that produce discontinuous deltas
// unrelated to genuine user motion: a projection flip, or the view
// direction locked exactly onto a world axis.
func (r *Rig) degenerate(cur core.Pose) bool {
	if cur.Perspective != r.last.Perspective {
		return true
	}
	z := cur.Rot.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Abs(z[0]) > parameter.AxisAlignLimit ||
		math.Abs(z[1]) > parameter.AxisAlignLimit ||
		math.Abs(z[2]) > parameter.AxisAlignLimit
}

func (r *Rig) wipePhysics() {
	r.buf.Clear()
	r.vel = core.NewKinetic()
	r.coasting = false
}

func (r *Rig) resetDriftOffsets() {
	r.lastDriftLoc = mgl64.Vec3{}
	r.lastDriftRot = mgl64.QuatIdent()
	r.driftActive = false
}

func (r *Rig) switchMode(m core.Mode, res *Result) {
	if r.mode == m {
		return
	}
	r.mode = m
	res.ModeSwitched = true
	r.stats.ModeSwitches.Add(1)
}

// fightDetected reports user motion large enough to count as fighting the
// auto-pilot. The tolerance widens with the drift intensity so sway never
// trips it.
func fightDetected(d core.Delta, cfg core.Config) bool {
	tolLoc := parameter.BreakLocBase + cfg.DriftIntensity*parameter.BreakLocGain
	tolRot := parameter.BreakRotBase + cfg.DriftIntensity*parameter.BreakRotGain
	return d.Loc.Len() > tolLoc || vmath.QuatAngle(d.Rot) > tolRot
}
