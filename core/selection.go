package core

import "github.com/go-gl/mathgl/mgl64"

// Selection is a snapshot of selected geometry taken in an editing context.
// Positions are world space. Normals are accumulated object-space element
// normals; callers rotate them by the rotation part of Transform before use.
// Indices are stable per-element integers used for change fingerprinting.
// The three slices are parallel and share one length.
type Selection struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Indices   []int
	Transform mgl64.Mat4
}

// Len returns the number of selected elements.
func (s Selection) Len() int {
	return len(s.Positions)
}
