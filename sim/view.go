package sim

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/status"
)

// View renders the wireframe scene and a status dashboard into a tcell
// screen.
type View struct {
	screen tcell.Screen
}

var (
	styleWire = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	styleSel  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD  = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleMode = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// NewView wraps an initialized screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Render draws one frame: mesh wireframe through the viewport pose, the
// highlighted selection cluster, and the dashboard.
func (v *View) Render(w *World, mode core.Mode, coasting bool, snap status.Snapshot) {
	v.screen.Clear()

	pose, editing, cluster := w.Snapshot()
	width, height := v.screen.Size()
	sceneH := height - 6
	if sceneH < 4 || width < 20 {
		v.screen.Show()
		return
	}

	for _, e := range w.mesh.WorldEdges() {
		v.edge(pose, e[0], e[1], width, sceneH)
	}
	if editing && cluster >= 0 {
		for _, p := range w.mesh.ClusterWorldPositions(cluster) {
			if x, y, ok := v.project(pose, p, width, sceneH); ok {
				v.screen.SetContent(x, y, 'o', nil, styleSel)
			}
		}
	}

	v.dashboard(pose, mode, coasting, editing, snap, height)
	v.screen.Show()
}

// project maps a world point to screen cells through the pose. The view
// looks along its local -Z; points behind the eye are rejected.
func (v *View) project(pose core.Pose, p mgl64.Vec3, width, height int) (int, int, bool) {
	local := pose.Rot.Inverse().Rotate(p.Sub(pose.Eye()))
	depth := -local.Z()
	if depth < 0.05 {
		return 0, 0, false
	}

	var sx, sy float64
	if pose.Perspective {
		sx = local.X() / depth
		sy = local.Y() / depth
	} else {
		d := pose.Dist
		if d < 0.05 {
			d = 0.05
		}
		sx = local.X() / d
		sy = local.Y() / d
	}

	scale := float64(height) * 1.2
	// terminal cells are roughly twice as tall as wide
	x := width/2 + int(math.Round(sx*scale*2))
	y := height/2 - int(math.Round(sy*scale))
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

func (v *View) edge(pose core.Pose, a, b mgl64.Vec3, width, height int) {
	steps := 48
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(b.Sub(a).Mul(t))
		if x, y, ok := v.project(pose, p, width, height); ok {
			v.screen.SetContent(x, y, '.', nil, styleWire)
		}
	}
}

func (v *View) dashboard(pose core.Pose, mode core.Mode, coasting bool, editing bool, snap status.Snapshot, height int) {
	y := height - 5
	v.text(0, y, styleMode, fmt.Sprintf("mode=%s coast=%v edit=%v persp=%v", mode, coasting, editing, pose.Perspective))
	v.text(0, y+1, styleHUD, fmt.Sprintf("focus=(%.2f %.2f %.2f) dist=%.2f",
		pose.Focus.X(), pose.Focus.Y(), pose.Focus.Z(), pose.Dist))
	v.text(0, y+2, styleHUD, fmt.Sprintf("ticks=%d skip=%d scans=%d switches=%d breaks=%d coasts=%d resets=%d",
		snap.Ticks, snap.SkippedTicks, snap.Scans, snap.ModeSwitches, snap.Breaks, snap.Coasts, snap.Resets))
	v.text(0, y+3, styleHUD, fmt.Sprintf("drift=%.2f pan=%.4f rot=%.4f",
		snap.DriftRamp, snap.PanSpeed, snap.RotSpeed))
	v.text(0, y+4, styleHUD, "arrows orbit | wasd pan | +/- zoom | space halt | e edit | tab cycle | p persp | 1 auto 2 break 3 drift | [ ] sway , . friction < > speed | q quit")
}

func (v *View) text(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
