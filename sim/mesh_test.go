package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClusterSelectionShape(t *testing.T) {
	m := NewCubeMesh()

	for c := 0; c < m.ClusterCount(); c++ {
		sel := m.ClusterSelection(c)
		if sel.Len() == 0 {
			t.Fatalf("cluster %d is empty", c)
		}
		if len(sel.Normals) != sel.Len() || len(sel.Indices) != sel.Len() {
			t.Fatalf("cluster %d: slices not parallel", c)
		}
	}
}

func TestClusterSelectionPositionsAreWorldSpace(t *testing.T) {
	m := NewCubeMesh()
	sel := m.ClusterSelection(0)

	for i, vi := range sel.Indices {
		want := mgl64.TransformCoordinate(m.vertices[vi], m.transform)
		if !sel.Positions[i].ApproxEqualThreshold(want, 1e-12) {
			t.Errorf("position %d = %v, want transformed %v", i, sel.Positions[i], want)
		}
	}
}

func TestClusterFingerprintInputsDiffer(t *testing.T) {
	m := NewCubeMesh()

	type key struct{ n, sum int }
	seen := map[key]int{}
	for c := 0; c < m.ClusterCount(); c++ {
		sel := m.ClusterSelection(c)
		sum := 0
		for _, i := range sel.Indices {
			sum += i
		}
		k := key{sel.Len(), sum}
		if prev, dup := seen[k]; dup {
			t.Errorf("clusters %d and %d share fingerprint inputs %v", prev, c, k)
		}
		seen[k] = c
	}
}

func TestWorldSelectionRequiresEditMode(t *testing.T) {
	w := NewWorld()

	if _, ok := w.Selection(ViewportMain); ok {
		t.Error("selection visible outside edit mode")
	}

	w.ToggleEdit()
	if _, ok := w.Selection(ViewportMain); !ok {
		t.Error("selection missing in edit mode")
	}

	w.ToggleEdit()
	if _, ok := w.Selection(ViewportMain); ok {
		t.Error("selection visible after leaving edit mode")
	}
}

func TestWorldPoseRoundTrip(t *testing.T) {
	w := NewWorld()

	p, ok := w.Pose(ViewportMain)
	if !ok {
		t.Fatal("pose missing")
	}
	p.Dist = 4.2
	w.SetPose(ViewportMain, p)

	got, _ := w.Pose(ViewportMain)
	if got.Dist != 4.2 {
		t.Errorf("Dist = %v after SetPose", got.Dist)
	}

	if _, ok := w.Pose(99); ok {
		t.Error("unknown viewport reported a pose")
	}
}
