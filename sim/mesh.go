package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
)

// Mesh is a fixed wireframe model with local-space vertices, a model
// transform, and named vertex clusters standing in for edit-mode
// selections.
type Mesh struct {
	vertices  []mgl64.Vec3
	normals   []mgl64.Vec3
	edges     [][2]int
	clusters  [][]int
	transform mgl64.Mat4
}

// NewCubeMesh builds a unit cube shifted off the origin and rotated so
// the selection transform path is exercised with a non-trivial matrix.
func NewCubeMesh() Mesh {
	verts := []mgl64.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	// vertex normals of a cube point away from the center
	normals := make([]mgl64.Vec3, len(verts))
	for i, v := range verts {
		normals[i] = v.Normalize()
	}
	return Mesh{
		vertices: verts,
		normals:  normals,
		edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		clusters: [][]int{
			{4, 5, 6, 7}, // top face
			{0, 1, 5, 4}, // front face
			{1, 2, 6, 5}, // right face
			{2, 6},       // right-top edge
		},
		transform: mgl64.Translate3D(1.5, -0.5, 0.5).
			Mul4(mgl64.HomogRotate3DZ(0.4)),
	}
}

// ClusterCount returns the number of selectable clusters.
func (m Mesh) ClusterCount() int {
	return len(m.clusters)
}

// ClusterSelection snapshots one cluster in the shape the controller
// expects: world positions, object-space normals, stable indices.
func (m Mesh) ClusterSelection(cluster int) core.Selection {
	idx := m.clusters[cluster%len(m.clusters)]
	sel := core.Selection{
		Positions: make([]mgl64.Vec3, len(idx)),
		Normals:   make([]mgl64.Vec3, len(idx)),
		Indices:   make([]int, len(idx)),
		Transform: m.transform,
	}
	for i, vi := range idx {
		sel.Positions[i] = mgl64.TransformCoordinate(m.vertices[vi], m.transform)
		sel.Normals[i] = m.normals[vi]
		sel.Indices[i] = vi
	}
	return sel
}

// WorldEdges returns the edge list as world-space endpoint pairs for
// rendering.
func (m Mesh) WorldEdges() [][2]mgl64.Vec3 {
	out := make([][2]mgl64.Vec3, len(m.edges))
	for i, e := range m.edges {
		out[i] = [2]mgl64.Vec3{
			mgl64.TransformCoordinate(m.vertices[e[0]], m.transform),
			mgl64.TransformCoordinate(m.vertices[e[1]], m.transform),
		}
	}
	return out
}

// ClusterWorldPositions returns the world positions of one cluster for
// highlighting.
func (m Mesh) ClusterWorldPositions(cluster int) []mgl64.Vec3 {
	idx := m.clusters[cluster%len(m.clusters)]
	out := make([]mgl64.Vec3, len(idx))
	for i, vi := range idx {
		out[i] = mgl64.TransformCoordinate(m.vertices[vi], m.transform)
	}
	return out
}
