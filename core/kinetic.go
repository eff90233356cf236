package core

import "github.com/go-gl/mathgl/mgl64"

// Delta is one observed per-tick pose change. Rot is the world-frame
// rotation taking the previous orientation to the current one.
type Delta struct {
	Loc  mgl64.Vec3
	Dist float64
	Rot  mgl64.Quat
}

// Kinetic is a coasting velocity triple: linear pan, scalar zoom, and an
// angular component expressed as a per-tick unit rotation quaternion.
// Identity rotation means no angular velocity.
type Kinetic struct {
	Pan  mgl64.Vec3
	Zoom float64
	Rot  mgl64.Quat
}

// NewKinetic returns a zero velocity with identity rotation.
func NewKinetic() Kinetic {
	return Kinetic{Rot: mgl64.QuatIdent()}
}
