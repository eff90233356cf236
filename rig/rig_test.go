package rig_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/engine"
	"github.com/lixenwraith/kinecam/rig"
	"github.com/lixenwraith/kinecam/status"
	"github.com/lixenwraith/kinecam/vmath"
)

const vp core.ViewportID = 1

type fakeHost struct {
	pose     core.Pose
	hasPose  bool
	sel      core.Selection
	hasSel   bool
	redraws  int
	selCalls int
}

func newFakeHost() *fakeHost {
	return &fakeHost{pose: core.DefaultPose(), hasPose: true}
}

func (h *fakeHost) Viewports() []core.ViewportID { return []core.ViewportID{vp} }

func (h *fakeHost) Pose(id core.ViewportID) (core.Pose, bool) {
	return h.pose, h.hasPose
}

func (h *fakeHost) SetPose(id core.ViewportID, p core.Pose) { h.pose = p }

func (h *fakeHost) Selection(id core.ViewportID) (core.Selection, bool) {
	h.selCalls++
	return h.sel, h.hasSel
}

func (h *fakeHost) RequestRedraw(id core.ViewportID) { h.redraws++ }

func manualConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.AutoPilot = false
	cfg.Drift = false
	cfg.DriftIntensity = 0
	return cfg
}

func setup() (*rig.Rig, *fakeHost, *engine.MockClock, *status.Registry) {
	host := newFakeHost()
	clock := engine.NewMockClock(10.0)
	stats := status.NewRegistry()
	return rig.New(vp, host, clock, stats), host, clock, stats
}

// tick advances the clock one nominal interval and runs one update.
func tick(r *rig.Rig, clock *engine.MockClock, cfg core.Config) rig.Result {
	clock.Advance(0.01)
	return r.Tick(cfg)
}

func TestTickSkippedWithoutPose(t *testing.T) {
	r, host, clock, stats := setup()
	host.hasPose = false

	res := tick(r, clock, manualConfig())

	require.False(t, res.Ticked)
	assert.Equal(t, int64(1), stats.SkippedTicks.Load())
	assert.Equal(t, int64(0), stats.Ticks.Load())
}

func TestStillPoseIsLeftUntouched(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := manualConfig()
	before := host.pose

	for i := 0; i < 10; i++ {
		res := tick(r, clock, cfg)
		require.True(t, res.Ticked)
		assert.False(t, res.Changed)
		assert.True(t, res.Idle)
	}

	assert.Equal(t, before, host.pose)
	assert.Zero(t, host.redraws)
}

func TestDragReleaseCoastsAndStops(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := manualConfig()

	tick(r, clock, cfg) // establish history

	// drag: three ticks of steady pan
	for i := 0; i < 3; i++ {
		host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.1, 0, 0})
		res := tick(r, clock, cfg)
		assert.False(t, res.CoastStarted)
		assert.False(t, res.Idle)
	}
	released := host.pose.Focus

	// release: coasting engages with the averaged velocity
	res := tick(r, clock, cfg)
	require.True(t, res.CoastStarted)
	require.True(t, r.Coasting())
	require.True(t, res.Changed)
	assert.Equal(t, int64(1), stats.Coasts.Load())
	assert.Greater(t, host.pose.Focus.X()-released.X(), 0.05)

	// friction decays the motion to a stop
	prev := host.pose.Focus.X()
	for i := 0; i < 2000 && r.Coasting(); i++ {
		tick(r, clock, cfg)
		assert.GreaterOrEqual(t, host.pose.Focus.X(), prev)
		prev = host.pose.Focus.X()
	}
	require.False(t, r.Coasting())

	// once stopped the rig goes idle and leaves the pose alone
	settled := host.pose
	res = tick(r, clock, cfg)
	assert.True(t, res.Idle)
	assert.Equal(t, settled, host.pose)
}

func TestRotationalFlickDropsPan(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := manualConfig()

	tick(r, clock, cfg)

	// drag combining a hard rotation with a small pan
	for i := 0; i < 3; i++ {
		spin := mgl64.QuatRotate(0.05, mgl64.Vec3{0, 0, 1})
		host.pose.Rot = spin.Mul(host.pose.Rot).Normalize()
		host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.05, 0, 0})
		tick(r, clock, cfg)
	}
	released := host.pose

	res := tick(r, clock, cfg)
	require.True(t, res.CoastStarted)

	// rotation coasts, the sideways fling is discarded
	assert.Equal(t, released.Focus, host.pose.Focus)
	assert.Greater(t, vmath.AngleBetween(released.Rot, host.pose.Rot), 0.01)
}

func TestSelectionEngagesAutoPilot(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false

	tick(r, clock, cfg)

	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{4, 4, 0}, {6, 4, 0}, {5, 6, 0}},
		Normals:   []mgl64.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Indices:   []int{10, 11, 12},
		Transform: mgl64.Ident4(),
	}

	clock.Advance(0.2) // past the scan rate limit
	res := r.Tick(cfg)
	require.True(t, res.ModeSwitched)
	require.Equal(t, core.ModeAuto, r.Mode())
	assert.Equal(t, int64(1), stats.Scans.Load())

	// fly-to: distance to the centroid shrinks every tick
	centroid := mgl64.Vec3{5, 14.0 / 3, 0}
	prev := host.pose.Focus.Sub(centroid).Len()
	for i := 0; i < 200; i++ {
		res = tick(r, clock, cfg)
		require.True(t, res.Changed)
		d := host.pose.Focus.Sub(centroid).Len()
		assert.Less(t, d, prev)
		prev = d
	}
	// the camera actually traveled, not just jittered in place
	assert.Greater(t, host.pose.Focus.Len(), 1.0)
}

func TestScanThrottleCoversEmptySelections(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false

	// out of an editing context the host keeps reporting no selection;
	// the rig must still honor the scan interval instead of querying the
	// collaborator every tick
	host.hasSel = false
	for i := 0; i < 50; i++ {
		tick(r, clock, cfg)
	}

	// 50 ticks span 0.5 s: at most one query per 0.1 s plus the initial one
	assert.LessOrEqual(t, host.selCalls, 6)
	assert.Greater(t, host.selCalls, 0)
}

func TestUnchangedSelectionDoesNotRetarget(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false

	tick(r, clock, cfg)
	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{3, 0, 0}},
		Normals:   []mgl64.Vec3{{1, 0, 0}},
		Indices:   []int{7},
		Transform: mgl64.Ident4(),
	}

	clock.Advance(0.2)
	require.True(t, r.Tick(cfg).ModeSwitched)

	// fight the auto-pilot to drop back to manual
	host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.5, 0, 0})
	res := tick(r, clock, cfg)
	require.True(t, res.ModeSwitched)
	require.Equal(t, core.ModeManual, r.Mode())

	// the same fingerprint must not re-engage
	for i := 0; i < 30; i++ {
		clock.Advance(0.2)
		res = r.Tick(cfg)
		assert.False(t, res.ModeSwitched)
		assert.Equal(t, core.ModeManual, r.Mode())
	}
}

func TestBreakOnManualTolerance(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false
	cfg.DriftIntensity = 0

	tick(r, clock, cfg)
	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{0, 5, 1}},
		Normals:   []mgl64.Vec3{{0, 1, 0}},
		Indices:   []int{3},
		Transform: mgl64.Ident4(),
	}
	clock.Advance(0.2)
	require.True(t, r.Tick(cfg).ModeSwitched)

	// nudge just past the positional tolerance
	host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.02, 0, 0})
	res := tick(r, clock, cfg)

	require.True(t, res.ModeSwitched)
	assert.Equal(t, core.ModeManual, r.Mode())
	assert.Equal(t, int64(1), stats.Breaks.Load())
}

func TestBreakDisabledIgnoresFight(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false
	cfg.BreakOnManual = false

	tick(r, clock, cfg)
	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{0, 5, 1}},
		Normals:   []mgl64.Vec3{{0, 1, 0}},
		Indices:   []int{3},
		Transform: mgl64.Ident4(),
	}
	clock.Advance(0.2)
	require.True(t, r.Tick(cfg).ModeSwitched)

	host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.5, 0, 0})
	tick(r, clock, cfg)
	assert.Equal(t, core.ModeAuto, r.Mode())
}

func TestAutoPilotDisableFallsBackToManual(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false

	tick(r, clock, cfg)
	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{2, 2, 2}},
		Normals:   []mgl64.Vec3{{0, 0, 1}},
		Indices:   []int{1},
		Transform: mgl64.Ident4(),
	}
	clock.Advance(0.2)
	require.True(t, r.Tick(cfg).ModeSwitched)

	cfg.AutoPilot = false
	res := tick(r, clock, cfg)
	require.True(t, res.ModeSwitched)
	assert.Equal(t, core.ModeManual, r.Mode())
}

func TestProjectionFlipResets(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := manualConfig()

	tick(r, clock, cfg)

	// build up a coast
	for i := 0; i < 3; i++ {
		host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.1, 0, 0})
		tick(r, clock, cfg)
	}
	require.True(t, tick(r, clock, cfg).CoastStarted)

	host.pose.Perspective = !host.pose.Perspective
	res := tick(r, clock, cfg)

	require.True(t, res.Reset)
	assert.False(t, r.Coasting())
	assert.Equal(t, int64(1), stats.Resets.Load())

	// after rebasing, the flip leaves no residual motion
	settled := host.pose
	res = tick(r, clock, cfg)
	assert.False(t, res.Changed)
	assert.Equal(t, settled, host.pose)
}

func TestDriftRampConvergence(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := manualConfig()
	cfg.Drift = true
	cfg.DriftIntensity = 0.2
	origin := host.pose.Focus

	for i := 0; i < 100; i++ {
		tick(r, clock, cfg)
	}
	ramp := stats.Snapshot().DriftRamp
	assert.Greater(t, ramp, 0.5)
	assert.Less(t, ramp, 0.75)

	for i := 0; i < 360; i++ {
		tick(r, clock, cfg)
	}
	assert.Greater(t, stats.Snapshot().DriftRamp, 0.98)

	// sway wanders but never walks away from the focus
	assert.Less(t, host.pose.Focus.Sub(origin).Len(), 0.05)
}

func TestDriftSuppressedUntilStillness(t *testing.T) {
	r, host, clock, stats := setup()
	cfg := manualConfig()
	cfg.Drift = true
	cfg.DriftIntensity = 0.2

	tick(r, clock, cfg)

	// a wiggle whose average cancels out: motion without a coast
	host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.001, 0, 0})
	tick(r, clock, cfg)
	host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{-0.001, 0, 0})
	tick(r, clock, cfg)
	res := tick(r, clock, cfg)
	require.False(t, res.CoastStarted)

	// suppression holds while the stillness window is still open
	for i := 0; i < 20; i++ {
		tick(r, clock, cfg)
	}
	assert.Less(t, stats.Snapshot().DriftRamp, 0.01)

	// past the resume delay the ramp starts climbing
	clock.Advance(0.6)
	for i := 0; i < 50; i++ {
		tick(r, clock, cfg)
	}
	assert.Greater(t, stats.Snapshot().DriftRamp, 0.2)
}

func TestAutoPilotExcludesCoasting(t *testing.T) {
	r, host, clock, _ := setup()
	cfg := core.DefaultConfig()
	cfg.Drift = false

	tick(r, clock, cfg)

	// start a coast, then let a selection appear mid-flight
	for i := 0; i < 3; i++ {
		host.pose.Focus = host.pose.Focus.Add(mgl64.Vec3{0.1, 0, 0})
		tick(r, clock, cfg)
	}
	require.True(t, tick(r, clock, cfg).CoastStarted)

	host.hasSel = true
	host.sel = core.Selection{
		Positions: []mgl64.Vec3{{8, 8, 0}},
		Normals:   []mgl64.Vec3{{0, 0, 1}},
		Indices:   []int{42},
		Transform: mgl64.Ident4(),
	}
	clock.Advance(0.2)
	res := r.Tick(cfg)

	require.True(t, res.ModeSwitched)
	assert.Equal(t, core.ModeAuto, r.Mode())
	assert.False(t, r.Coasting())
}
