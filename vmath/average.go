package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AverageVec3 returns the arithmetic mean of samples, zero for an empty slice.
func AverageVec3(samples []mgl64.Vec3) mgl64.Vec3 {
	if len(samples) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, v := range samples {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(samples)))
}

// AverageFloat returns the arithmetic mean of samples, zero for an empty slice.
func AverageFloat(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// AverageQuat returns the normalized component mean of samples, identity
// for an empty slice or a degenerate sum. Each sample is kept on the
// accumulator's hemisphere so opposite-sign representations of nearby
// rotations cannot cancel.
func AverageQuat(samples []mgl64.Quat) mgl64.Quat {
	if len(samples) == 0 {
		return mgl64.QuatIdent()
	}
	var w, x, y, z float64
	for _, q := range samples {
		if w*q.W+x*q.V[0]+y*q.V[1]+z*q.V[2] < 0 {
			q = q.Scale(-1)
		}
		w += q.W
		x += q.V[0]
		y += q.V[1]
		z += q.V[2]
	}
	n := math.Sqrt(w*w + x*x + y*y + z*z)
	if n < 1e-12 {
		return mgl64.QuatIdent()
	}
	inv := 1 / n
	return mgl64.Quat{W: w * inv, V: mgl64.Vec3{x * inv, y * inv, z * inv}}
}
