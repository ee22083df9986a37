package r3

import (
	"math"

	"github.com/golang/geo/s1"
)

// AngleBetween returns the angle between u and v as an s1.Angle (radians).
// Inputs need not be unit length; the cosine is computed from the
// normalized dot product and clamped to [-1, 1] to absorb floating point
// overshoot before calling math.Acos.
func AngleBetween(u, v Vec) s1.Angle {
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return 0
	}
	cos := u.Dot(v) / (lu * lv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return s1.Angle(math.Acos(cos))
}

// OneMinusCosAngle returns 1 - cos(angle between u and v). For small angles
// this is approximately half the squared angular residual; it is the
// convention this package uses for reprojection-error thresholds (see
// gate.ReprojectionResidual).
func OneMinusCosAngle(u, v Vec) float64 {
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return 1
	}
	cos := u.Dot(v) / (lu * lv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return 1 - cos
}
