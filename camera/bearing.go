package camera

import (
	"fmt"

	"github.com/scottlawsonbc/sfmtri/r2"
	"github.com/scottlawsonbc/sfmtri/r3"
)

// Camera pairs intrinsics and extrinsics into one calibrated observer,
// turning a detected pixel into a bearing instead of projecting a bearing
// out to a pixel.
type Camera struct {
	Intrinsics Intrinsics
	Extrinsics Extrinsics
}

// Validate reports whether the camera's intrinsics and extrinsics are
// both self-consistent.
func (cam Camera) Validate() error {
	if err := cam.Intrinsics.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := cam.Extrinsics.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	return nil
}

// Bearing undistorts a detected pixel and returns the corresponding unit
// ray direction in this camera's own frame (+Z forward, +Y up), suitable
// for triangulate.DLT's per-view bearing together with Pose.
func (cam Camera) Bearing(pixel r2.Point) r3.Vec {
	ci := cam.Intrinsics
	xd := (pixel.X - ci.Cx) / ci.Fx
	yd := (pixel.Y - ci.Cy) / ci.Fy
	x, y := ci.undistortNormalized(xd, yd)
	// Pixel y grows downward; camera +Y is defined up, so flip.
	return r3.Vec{X: x, Y: -y, Z: 1}.Unit()
}

// WorldBearing undistorts a detected pixel the same way Bearing does, then
// rotates the result into the world frame, suitable for
// triangulate.Midpoint which expects every bearing already expressed in a
// shared world frame.
func (cam Camera) WorldBearing(pixel r2.Point) r3.Vec {
	local := cam.Bearing(pixel)
	return cam.Extrinsics.Pose().R.Transpose().MulVec(local)
}

// Pose returns the r3.Pose this camera's extrinsics correspond to.
func (cam Camera) Pose() r3.Pose {
	return cam.Extrinsics.Pose()
}
