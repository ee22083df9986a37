package triangulate

import (
	"math"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// epipolarNormFloor is the minimum ||t x b|| below which the epipolar
// plane's normal is considered undefined (bearing collinear with the
// baseline), and the residual is defined as 0.
const epipolarNormFloor = 1e-12

// EpipolarAngleMatrix returns an NxM matrix whose (i, j) entry is the
// epipolar angular residual between bearing B1_i and bearing B2_j under
// the relative pose (R, t) mapping frame 2 into frame 1. Matched
// correspondences produced by the true relative pose have a residual near
// zero; mismatched pairs of distinct 3D points do not.
func (s *Solver) EpipolarAngleMatrix(b1, b2 []r3.Vec, r r3.Mat3x3, t r3.Vec) [][]float64 {
	n, m := len(b1), len(b2)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, m)
	}

	bWorld := make([]r3.Vec, m)
	for j := range b2 {
		bWorld[j] = r.MulVec(b2[j])
	}

	rowFn := func(i int) {
		for j := 0; j < m; j++ {
			out[i][j] = epipolarResidual(b1[i], bWorld[j], t)
		}
	}

	if s.Parallel && n*m >= parallelRowFloor {
		shardRows(n, rowFn)
		return out
	}
	for i := 0; i < n; i++ {
		rowFn(i)
	}
	return out
}

// EpipolarAngleMatrix computes using the package-level default solver
// (serial).
func EpipolarAngleMatrix(b1, b2 []r3.Vec, r r3.Mat3x3, t r3.Vec) [][]float64 {
	return defaultSolver.EpipolarAngleMatrix(b1, b2, r, t)
}

func epipolarResidual(bearing1, bearingInFrame1 r3.Vec, t r3.Vec) float64 {
	n := t.Cross(bearingInFrame1)
	length := n.Length()
	if length < epipolarNormFloor {
		return 0
	}
	nHat := n.Divs(length)
	sin := bearing1.Unit().Dot(nHat)
	if sin > 1 {
		sin = 1
	} else if sin < -1 {
		sin = -1
	}
	return math.Abs(math.Asin(sin))
}
