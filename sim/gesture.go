package sim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// axis is one spring-smoothed input channel. Key presses move the target;
// the spring chases it, and the per-frame position delta becomes the
// gesture amount fed to the world. The result looks like a human drag
// with ease-in and ease-out instead of a per-keypress step, which is what
// gives the release-velocity estimator something real to measure.
type axis struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newAxis(fps int, frequency, damping float64) axis {
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// step advances the spring and returns the position delta for this frame.
func (a *axis) step() float64 {
	prev := a.pos
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	return a.pos - prev
}

// settled reports whether the axis has effectively stopped moving.
func (a *axis) settled() bool {
	return math.Abs(a.pos-a.target) < 1e-5 && math.Abs(a.vel) < 1e-5
}

// Gesture converts discrete key impulses into continuous drag-like input.
type Gesture struct {
	yaw   axis
	pitch axis
	panX  axis
	panY  axis
	zoom  axis
}

// NewGesture creates a gesture smoother tuned for the simulator frame
// rate.
func NewGesture(fps int) *Gesture {
	return &Gesture{
		yaw:   newAxis(fps, 4.5, 0.9),
		pitch: newAxis(fps, 4.5, 0.9),
		panX:  newAxis(fps, 5.0, 1.0),
		panY:  newAxis(fps, 5.0, 1.0),
		zoom:  newAxis(fps, 5.0, 1.0),
	}
}

// Orbit nudges the tumble targets.
func (g *Gesture) Orbit(yaw, pitch float64) {
	g.yaw.target += yaw
	g.pitch.target += pitch
}

// Pan nudges the pan targets.
func (g *Gesture) Pan(dx, dy float64) {
	g.panX.target += dx
	g.panY.target += dy
}

// Zoom nudges the zoom target; positive moves away.
func (g *Gesture) Zoom(amount float64) {
	g.zoom.target += amount
}

// Halt freezes every axis where it stands, ending the gesture abruptly.
func (g *Gesture) Halt() {
	for _, a := range []*axis{&g.yaw, &g.pitch, &g.panX, &g.panY, &g.zoom} {
		a.target = a.pos
		a.vel = 0
	}
}

// Active reports whether any axis is still moving.
func (g *Gesture) Active() bool {
	for _, a := range []*axis{&g.yaw, &g.pitch, &g.panX, &g.panY, &g.zoom} {
		if !a.settled() {
			return true
		}
	}
	return false
}

// Step advances every spring one frame and applies the resulting deltas
// to the world as viewport input.
func (g *Gesture) Step(w *World) {
	if dy, dp := g.yaw.step(), g.pitch.step(); dy != 0 || dp != 0 {
		w.ApplyOrbit(dy, dp)
	}
	if dx, dy := g.panX.step(), g.panY.step(); dx != 0 || dy != 0 {
		w.ApplyPan(dx, dy)
	}
	if dz := g.zoom.step(); dz != 0 {
		w.ApplyZoom(math.Exp(dz))
	}
}
