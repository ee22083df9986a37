// Package camera converts pixel observations into the unit camera-frame
// bearings the triangulate package consumes, and camera extrinsics into
// r3.Pose values. Its calibrated camera model (OpenCV-style intrinsics,
// LookFrom/LookAt/VUp extrinsics) runs in the opposite direction a
// renderer would: instead of projecting a ray out through a pixel,
// Bearing undistorts a detected pixel back into a ray direction.
package camera

import (
	"fmt"
	"math"
)

// Intrinsics stores OpenCV-style intrinsic parameters and image size.
type Intrinsics struct {
	// Width and Height are the image dimensions in pixels the intrinsics
	// were calibrated against.
	Width, Height int

	// Fx, Fy are the focal lengths in pixels.
	Fx, Fy float64
	// Cx, Cy are the principal point in pixels.
	Cx, Cy float64

	// Distortion coefficients in OpenCV order. The rational model
	// (K4, K5, K6) is used only when at least one of them is non-zero.
	K1, K2, P1, P2, K3 float64
	K4, K5, K6         float64
}

// Validate reports whether the intrinsics are self-consistent.
func (ci Intrinsics) Validate() error {
	if ci.Width <= 0 || ci.Height <= 0 {
		return fmt.Errorf("camera: bad image size: %dx%d", ci.Width, ci.Height)
	}
	if !(ci.Fx > 0 && ci.Fy > 0) {
		return fmt.Errorf("camera: bad focal lengths: Fx=%g Fy=%g", ci.Fx, ci.Fy)
	}
	if math.IsNaN(ci.Cx) || math.IsNaN(ci.Cy) {
		return fmt.Errorf("camera: NaN principal point: Cx=%g Cy=%g", ci.Cx, ci.Cy)
	}
	return nil
}

// K returns the 3x3 pinhole matrix corresponding to the intrinsics.
func (ci Intrinsics) K() [3][3]float64 {
	return [3][3]float64{
		{ci.Fx, 0, ci.Cx},
		{0, ci.Fy, ci.Cy},
		{0, 0, 1},
	}
}

// D returns the distortion vector in OpenCV ordering, 5 or 8 coefficients
// depending on whether the rational terms are in use.
func (ci Intrinsics) D() []float64 {
	if ci.K4 == 0 && ci.K5 == 0 && ci.K6 == 0 {
		return []float64{ci.K1, ci.K2, ci.P1, ci.P2, ci.K3}
	}
	return []float64{ci.K1, ci.K2, ci.P1, ci.P2, ci.K3, ci.K4, ci.K5, ci.K6}
}

// NewIntrinsicsFromKAndD constructs Intrinsics from a pinhole matrix K and
// a distortion vector D of length 5 or 8, in OpenCV order.
func NewIntrinsicsFromKAndD(width, height int, K [3][3]float64, D []float64) Intrinsics {
	ci := Intrinsics{
		Width:  width,
		Height: height,
		Fx:     K[0][0],
		Fy:     K[1][1],
		Cx:     K[0][2],
		Cy:     K[1][2],
	}
	if len(D) >= 5 {
		ci.K1, ci.K2, ci.P1, ci.P2, ci.K3 = D[0], D[1], D[2], D[3], D[4]
	}
	if len(D) >= 8 {
		ci.K4, ci.K5, ci.K6 = D[5], D[6], D[7]
	}
	return ci
}

// undistortNormalized inverts OpenCV distortion for one normalized image
// point by fixed-point iteration on the forward distortion model. xd, yd
// are distorted normalized coordinates, i.e. (pixel-principal)/focal.
func (ci Intrinsics) undistortNormalized(xd, yd float64) (x, y float64) {
	x, y = xd, yd
	const iters = 8
	for i := 0; i < iters; i++ {
		r2 := x*x + y*y
		r4 := r2 * r2
		r6 := r4 * r2

		num := 1.0 + ci.K1*r2 + ci.K2*r4 + ci.K3*r6
		den := 1.0 + ci.K4*r2 + ci.K5*r4 + ci.K6*r6
		if den == 0 {
			den = 1
		}
		radial := num / den

		dx := 2.0*ci.P1*x*y + ci.P2*(r2+2.0*x*x)
		dy := ci.P1*(r2+2.0*y*y) + 2.0*ci.P2*x*y

		x = (xd - dx) / radial
		y = (yd - dy) / radial
	}
	return x, y
}
