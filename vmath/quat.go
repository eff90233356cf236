package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// QuatAngle returns the shortest-arc rotation angle of q in radians, in [0, pi].
// Sign-insensitive: q and -q describe the same rotation.
func QuatAngle(q mgl64.Quat) float64 {
	n := q.Len()
	if n == 0 {
		return 0
	}
	w := math.Abs(q.W) / n
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// AngleBetween returns the shortest rotation angle taking orientation a to b.
func AngleBetween(a, b mgl64.Quat) float64 {
	return QuatAngle(b.Mul(a.Inverse()))
}

// Slerp spherically interpolates from a to b along the shortest arc.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

// EulerXYZ builds the rotation applying the X, Y, then Z axis rotations in
// the world frame, matching XYZ euler order in the host convention.
func EulerXYZ(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(x, unitX)
	qy := mgl64.QuatRotate(y, unitY)
	qz := mgl64.QuatRotate(z, unitZ)
	return qz.Mul(qy).Mul(qx)
}

// FromBasis converts an orthonormal right-handed basis, given as the world
// directions of the local X, Y, and Z axes, to a unit quaternion.
func FromBasis(x, y, z mgl64.Vec3) mgl64.Quat {
	m := mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// TrackZ returns the orientation whose +Z axis points along dir with +Y
// biased toward world up. Reports false for a near-zero direction.
func TrackZ(dir mgl64.Vec3) (mgl64.Quat, bool) {
	l := dir.Len()
	if l < 1e-9 {
		return mgl64.QuatIdent(), false
	}
	z := dir.Mul(1 / l)
	x := unitZ.Cross(z)
	if x.LenSqr() < 1e-8 {
		// dir is vertical, any level right axis serves
		x = unitX
	} else {
		x = x.Normalize()
	}
	y := z.Cross(x)
	return FromBasis(x, y, z), true
}

// TrackNegZ returns the camera orientation looking along dir (view -Z)
// with +Y biased toward world up.
func TrackNegZ(dir mgl64.Vec3) (mgl64.Quat, bool) {
	return TrackZ(dir.Mul(-1))
}
