package camera

import (
	"fmt"
	"math"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// orthogonalityTolerance bounds how far the LookFrom/LookAt/VUp basis may
// drift from orthonormal before Validate rejects it.
const orthogonalityTolerance = 1e-9

// Extrinsics stores a camera pose as a world-space origin, aim point, and
// up direction.
type Extrinsics struct {
	// LookFrom is the camera's optical center in world space.
	LookFrom r3.Point
	// LookAt is a world-space point the camera's forward axis points at.
	LookAt r3.Point
	// VUp is the approximate world-space up direction; it need not be
	// orthogonal to the forward axis, only non-parallel to it.
	VUp r3.Vec
}

// Validate reports whether the extrinsics define a proper camera frame.
func (ce Extrinsics) Validate() error {
	if ce.LookFrom == ce.LookAt {
		return fmt.Errorf("camera: LookFrom and LookAt are identical")
	}
	if ce.VUp.IsZero() {
		return fmt.Errorf("camera: VUp is zero")
	}
	u, v, f := ce.basis()
	if u.IsNaN() || v.IsNaN() || f.IsNaN() {
		return fmt.Errorf("camera: basis has NaN, VUp likely parallel to forward axis")
	}
	if math.Abs(u.Dot(v)) > orthogonalityTolerance || math.Abs(u.Dot(f)) > orthogonalityTolerance || math.Abs(v.Dot(f)) > orthogonalityTolerance {
		return fmt.Errorf("camera: basis vectors are not orthogonal: u.v=%g u.f=%g v.f=%g",
			u.Dot(v), u.Dot(f), v.Dot(f))
	}
	return nil
}

// basis returns the camera's right (u), up (v), and forward (f) unit
// vectors in world coordinates. Forward points from LookFrom toward
// LookAt, matching the +Z-forward convention Pose uses.
func (ce Extrinsics) basis() (u, v, f r3.Vec) {
	f = ce.LookAt.Sub(ce.LookFrom).Unit()
	u = f.Cross(ce.VUp).Unit()
	v = u.Cross(f)
	return u, v, f
}

// Pose converts the extrinsics into an r3.Pose mapping world points to
// this camera's frame, where +Z is the forward axis the camera looks
// along (matching the depth convention triangulate's gates use).
func (ce Extrinsics) Pose() r3.Pose {
	u, v, f := ce.basis()
	r := r3.Mat3x3{M: [3][3]float64{
		{u.X, u.Y, u.Z},
		{v.X, v.Y, v.Z},
		{f.X, f.Y, f.Z},
	}}
	return r3.NewPoseFromCenter(r, ce.LookFrom)
}
