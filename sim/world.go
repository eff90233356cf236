// Package sim is a self-contained host used to exercise the controller
// without a real 3D application: a cube mesh, a single viewport, keyboard
// gestures, and a terminal renderer.
package sim

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
)

// World implements core.Host over one viewport and one editable mesh.
// All accessors are safe for concurrent use; the scheduler goroutine and
// the input goroutine both reach into it.
type World struct {
	mu sync.Mutex

	pose     core.Pose
	editMode bool
	cluster  int
	redraw   chan struct{}

	mesh Mesh
}

// ViewportMain is the only viewport the simulator exposes.
const ViewportMain core.ViewportID = 1

// NewWorld creates a world with the default pose and a unit cube placed
// off-origin so the selection transform actually matters.
func NewWorld() *World {
	return &World{
		pose:    core.DefaultPose(),
		cluster: -1,
		redraw:  make(chan struct{}, 1),
		mesh:    NewCubeMesh(),
	}
}

// Viewports reports the single active viewport.
func (w *World) Viewports() []core.ViewportID {
	return []core.ViewportID{ViewportMain}
}

// Pose returns the viewport pose.
func (w *World) Pose(id core.ViewportID) (core.Pose, bool) {
	if id != ViewportMain {
		return core.Pose{}, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pose, true
}

// SetPose overwrites the viewport pose.
func (w *World) SetPose(id core.ViewportID, p core.Pose) {
	if id != ViewportMain {
		return
	}
	w.mu.Lock()
	w.pose = p
	w.mu.Unlock()
}

// Selection returns the active vertex cluster while edit mode is on.
func (w *World) Selection(id core.ViewportID) (core.Selection, bool) {
	if id != ViewportMain {
		return core.Selection{}, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.editMode || w.cluster < 0 {
		return core.Selection{}, false
	}
	return w.mesh.ClusterSelection(w.cluster), true
}

// RequestRedraw signals the render loop without blocking.
func (w *World) RequestRedraw(id core.ViewportID) {
	select {
	case w.redraw <- struct{}{}:
	default:
	}
}

// Redraw exposes the redraw signal channel to the render loop.
func (w *World) Redraw() <-chan struct{} {
	return w.redraw
}

// Snapshot returns the current pose and edit state for rendering.
func (w *World) Snapshot() (core.Pose, bool, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pose, w.editMode, w.cluster
}

// ToggleEdit flips edit mode. Leaving edit mode hides the selection.
func (w *World) ToggleEdit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editMode = !w.editMode
	if w.editMode && w.cluster < 0 {
		w.cluster = 0
	}
	return w.editMode
}

// CycleSelection advances to the next vertex cluster while editing.
func (w *World) CycleSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.editMode {
		return
	}
	w.cluster = (w.cluster + 1) % w.mesh.ClusterCount()
}

// ApplyOrbit rotates the view by yaw around world Z and pitch around the
// view X axis, the same composition a tumble drag produces.
func (w *World) ApplyOrbit(yaw, pitch float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := w.pose
	qYaw := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 0, 1})
	right := p.Rot.Rotate(mgl64.Vec3{1, 0, 0})
	qPitch := mgl64.QuatRotate(pitch, right)
	p.Rot = qYaw.Mul(qPitch).Mul(p.Rot).Normalize()
	w.pose = p
}

// ApplyPan translates the focus in the view plane.
func (w *World) ApplyPan(dx, dy float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := w.pose
	scale := p.Dist * 0.1
	p.Focus = p.Focus.Add(p.Rot.Rotate(mgl64.Vec3{dx * scale, dy * scale, 0}))
	w.pose = p
}

// ApplyZoom scales the view distance; factor > 1 moves away.
func (w *World) ApplyZoom(factor float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pose.Dist *= factor
}

// TogglePerspective flips the projection flag, which the controller treats
// as a discontinuity.
func (w *World) TogglePerspective() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pose.Perspective = !w.pose.Perspective
}
