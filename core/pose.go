package core

import "github.com/go-gl/mathgl/mgl64"

// ViewportID identifies one host viewport for the lifetime of a session.
// IDs are assigned by the host and must stay stable while the viewport exists.
type ViewportID uint64

// Pose is the camera state the rig reads from and writes back to the host
// each tick. Rot maps view space to world space; the camera looks along
// view -Z and world up is +Z. Dist is the distance from the focus point to
// the eye and stays positive.
type Pose struct {
	Focus       mgl64.Vec3
	Rot         mgl64.Quat
	Dist        float64
	Perspective bool
}

// DefaultPose returns a valid resting pose: a three-quarter user view of
// the origin from ten units out. The view axis deliberately avoids world
// axis alignment, which the controller treats as a degenerate state.
func DefaultPose() Pose {
	yaw := mgl64.QuatRotate(0.7853981633974483, mgl64.Vec3{0, 0, 1})
	pitch := mgl64.QuatRotate(1.1071487177940904, mgl64.Vec3{1, 0, 0})
	return Pose{
		Rot:         yaw.Mul(pitch).Normalize(),
		Dist:        10.0,
		Perspective: true,
	}
}

// Eye returns the world-space eye position implied by the pose.
func (p Pose) Eye() mgl64.Vec3 {
	return p.Focus.Add(p.Rot.Rotate(mgl64.Vec3{0, 0, p.Dist}))
}

// Host is the viewport/scene collaborator the rig runs against.
// Pose and Selection report ok=false when the viewport or an editing
// context is unavailable this tick; the rig treats both as a silent skip.
type Host interface {
	// Viewports lists the viewports currently active under the session.
	Viewports() []ViewportID

	// Pose returns the current camera pose of a viewport.
	Pose(id ViewportID) (Pose, bool)

	// SetPose writes a new camera pose to a viewport.
	SetPose(id ViewportID, p Pose)

	// Selection returns the selected-geometry snapshot for a viewport,
	// ok=false outside an editing context or with nothing selected.
	Selection(id ViewportID) (Selection, bool)

	// RequestRedraw signals that the viewport content changed this tick.
	RequestRedraw(id ViewportID)
}

// Clock reports monotonic time in seconds. Wall-clock jumps must not leak
// through; the rig only ever subtracts readings.
type Clock interface {
	Now() float64
}
