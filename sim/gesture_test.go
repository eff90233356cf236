package sim

import (
	"math"
	"testing"
)

func TestGestureSettlesAtTarget(t *testing.T) {
	g := NewGesture(100)
	g.Orbit(0.3, 0)

	if !g.Active() {
		t.Fatal("gesture inactive after impulse")
	}

	total := 0.0
	for i := 0; i < 2000 && g.Active(); i++ {
		prev := g.yaw.pos
		g.yaw.pos, g.yaw.vel = g.yaw.spring.Update(g.yaw.pos, g.yaw.vel, g.yaw.target)
		total += g.yaw.pos - prev
	}

	if g.Active() {
		t.Fatal("gesture never settled")
	}
	if math.Abs(total-0.3) > 1e-3 {
		t.Errorf("accumulated motion %v, want ~0.3", total)
	}
}

func TestGestureHaltStopsMotion(t *testing.T) {
	g := NewGesture(100)
	g.Pan(1.0, 0)

	w := NewWorld()
	for i := 0; i < 5; i++ {
		g.Step(w)
	}
	g.Halt()

	if g.Active() {
		t.Error("gesture active after halt")
	}

	before, _ := w.Pose(ViewportMain)
	g.Step(w)
	after, _ := w.Pose(ViewportMain)
	if before.Focus != after.Focus {
		t.Error("halted gesture still moved the focus")
	}
}

func TestGestureStepMovesWorld(t *testing.T) {
	g := NewGesture(100)
	w := NewWorld()
	start, _ := w.Pose(ViewportMain)

	g.Zoom(0.5)
	for i := 0; i < 50; i++ {
		g.Step(w)
	}

	now, _ := w.Pose(ViewportMain)
	if now.Dist <= start.Dist {
		t.Errorf("zoom out did not increase Dist: %v -> %v", start.Dist, now.Dist)
	}
}
