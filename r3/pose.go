package r3

import "fmt"

// Pose is a 3x4 rigid-body transform [R | T] mapping a world point X to a
// camera-frame point R*X + T. R must be a proper rotation (orthonormal,
// det = +1); the camera center in world coordinates is recoverable as
// -Rt*T.
type Pose struct {
	R Mat3x3
	T Vec
}

// NewPoseFromCenter builds a Pose from a rotation and a world-frame camera
// center, computing T = -R*center.
func NewPoseFromCenter(r Mat3x3, center Point) Pose {
	t := r.MulVec(Vec{X: center.X, Y: center.Y, Z: center.Z}).Muls(-1)
	return Pose{R: r, T: t}
}

// Apply maps a world point into this pose's camera frame.
func (p Pose) Apply(x Point) Vec {
	return p.R.MulVec(Vec{X: x.X, Y: x.Y, Z: x.Z}).Add(p.T)
}

// Center recovers the camera's world-space optical center, -Rt*T.
func (p Pose) Center() Point {
	c := p.R.Transpose().MulVec(p.T).Muls(-1)
	return Point{X: c.X, Y: c.Y, Z: c.Z}
}

// Row returns the k-th row of the 3x4 matrix [R | T] as (a, b, c, d) such
// that the row's linear form is a*x + b*y + c*z + d*w.
func (p Pose) Row(k int) [4]float64 {
	switch k {
	case 0:
		return [4]float64{p.R.M[0][0], p.R.M[0][1], p.R.M[0][2], p.T.X}
	case 1:
		return [4]float64{p.R.M[1][0], p.R.M[1][1], p.R.M[1][2], p.T.Y}
	case 2:
		return [4]float64{p.R.M[2][0], p.R.M[2][1], p.R.M[2][2], p.T.Z}
	}
	panic(fmt.Sprintf("invalid row index %d for Pose", k))
}
