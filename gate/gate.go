// Package gate implements the acceptance predicates shared by the DLT and
// midpoint triangulators: parallax, positive depth, and reprojection
// error. The gating policy, not the underlying linear algebra, is what
// separates a numerically plausible answer from a geometrically
// meaningful one.
package gate

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// Params bundles the two gate thresholds common to every triangulator:
// minimum parallax angle and minimum positive depth. A negative MinDepth
// disables the positive-depth check entirely.
type Params struct {
	MinParallax s1.Angle
	MinDepth    float64
}

// DefaultParams returns starting-point thresholds for callers: one degree
// of parallax, 1e-6 of depth.
func DefaultParams() Params {
	return Params{
		MinParallax: 1 * s1.Degree,
		MinDepth:    1e-6,
	}
}

// MaxParallaxAngle returns the largest angle subtended by any pair of
// world-frame ray directions in dirs, always scanning every pair.
// HasSufficientParallax is the separate, short-circuiting check the
// triangulators use for the parallax gate.
func MaxParallaxAngle(dirs []r3.Vec) s1.Angle {
	var best s1.Angle
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			a := r3.AngleBetween(dirs[i], dirs[j])
			if a > best {
				best = a
			}
		}
	}
	return best
}

// HasSufficientParallax reports whether any pair of directions in dirs
// subtends an angle of at least min, stopping at the first qualifying pair
// instead of scanning all O(n^2) pairs.
func HasSufficientParallax(dirs []r3.Vec, min s1.Angle) bool {
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			if r3.AngleBetween(dirs[i], dirs[j]) >= min {
				return true
			}
		}
	}
	return false
}

// PositiveDepth reports whether depth clears minDepth. A negative minDepth
// always passes, disabling the check.
func PositiveDepth(depth, minDepth float64) bool {
	if minDepth < 0 {
		return true
	}
	return depth >= minDepth
}

// ReprojectionResidual returns 1 - cos(angle between observed and
// predicted), the convention this codebase fixes for the reprojection
// threshold tau: tau bounds 1-cos(err), not a raw angle or tangent. Both
// arguments may be non-unit; they are normalized internally.
func ReprojectionResidual(observed, predicted r3.Vec) float64 {
	return r3.OneMinusCosAngle(observed, predicted)
}

// ReprojectionOK reports whether the angular residual between observed and
// predicted is within tau under the 1-cos(err) convention.
func ReprojectionOK(observed, predicted r3.Vec, tau float64) bool {
	return ReprojectionResidual(observed, predicted) <= tau
}

// TauFromAngle converts an angular reprojection tolerance into the
// equivalent tau under the 1-cos(err) convention, for callers who prefer
// to reason in angles (e.g. "half a pixel at this focal length").
func TauFromAngle(a s1.Angle) float64 {
	return 1 - math.Cos(a.Radians())
}
