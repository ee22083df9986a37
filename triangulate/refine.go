package triangulate

import (
	"github.com/scottlawsonbc/sfmtri/r3"
)

// refineWeightFloor bounds the inverse-residual IRLS weight away from
// infinity when a ray passes arbitrarily close to the current estimate.
const refineWeightFloor = 1e-6

// refineConvergenceTol is the step-size ||X_{k+1}-X_k|| below which
// iteration stops early.
const refineConvergenceTol = 1e-10

// Refine polishes an initial estimate x0 against a bundle of rays by
// iteratively reweighted least squares: each iteration reweights every
// ray by the inverse of its current residual distance to
// the estimate (down-weighting outlier rays) and re-solves the same
// normal-equations system Midpoint uses, then updates the estimate. It
// runs unconditionally for up to maxIters iterations or until the step
// size converges, never gates, and never fails: refinement always
// returns a point, including x0 itself when the inputs admit no
// improving solve.
func (s *Solver) Refine(centers []r3.Point, bearingsWorld []r3.Vec, x0 r3.Point, maxIters int) r3.Point {
	const op = "Refine"
	checkSameLength(op, "centers", len(centers), "bearingsWorld", len(bearingsWorld))
	checkMinViews(op, len(centers), minMidpointViews)
	log := s.logger()

	n := len(centers)
	bearings := make([]r3.Vec, n)
	for i := range bearingsWorld {
		bearings[i] = normalizeBearing(op, bearingsWorld[i])
	}

	x := x0
	weights := make([]float64, n)
	for iter := 0; iter < maxIters; iter++ {
		for i := range weights {
			residual := rayResidual(x, centers[i], bearings[i])
			if residual < refineWeightFloor {
				residual = refineWeightFloor
			}
			weights[i] = 1 / residual
		}

		m, v := buildNormalEquations(centers, bearings, weights)
		solved := r3.SolveSymmetric3x3(m, v)
		if !solved.OK {
			log.Debugw("refine stopped: degenerate normal equations", "iter", iter)
			break
		}

		next := r3.Point{X: solved.X.X, Y: solved.X.Y, Z: solved.X.Z}
		step := next.Sub(x).Length()
		x = next
		if step < refineConvergenceTol {
			log.Debugw("refine converged", "iter", iter, "step", step)
			break
		}
	}
	return x
}

// Refine polishes using the package-level default solver (no logging).
func Refine(centers []r3.Point, bearingsWorld []r3.Vec, x0 r3.Point, maxIters int) r3.Point {
	return defaultSolver.Refine(centers, bearingsWorld, x0, maxIters)
}

// rayResidual is the perpendicular distance from x to the ray (c, b), the
// same quantity the IRLS weighting above downweights by.
func rayResidual(x r3.Point, c r3.Point, b r3.Vec) float64 {
	w := x.Sub(c)
	along := w.Dot(b)
	perp := w.Sub(b.Muls(along))
	return perp.Length()
}
