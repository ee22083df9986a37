package triangulate

import (
	"github.com/scottlawsonbc/sfmtri/gate"
	"github.com/scottlawsonbc/sfmtri/r3"
)

const minMidpointViews = 2

// midpointSigmaFloor is the minimum acceptable smallest singular value of
// the 3x3 normal-equation matrix M: below this, M is too close to
// singular to trust the solve.
const midpointSigmaFloor = 1e-9

// buildNormalEquations assembles the least-squares closest-point system
// M*X = v for a bundle of rays (c_i, B_i), optionally reweighted (shared
// with Refine's per-iteration weights). weights may be nil, meaning every
// ray has weight 1.
func buildNormalEquations(centers []r3.Point, bearings []r3.Vec, weights []float64) (r3.Mat3x3, r3.Vec) {
	var m r3.Mat3x3
	var v r3.Vec
	for i, c := range centers {
		proj := r3.IdentityMat3x3().Sub(r3.Outer(bearings[i]))
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if w != 1 {
			proj = proj.Muls(w)
		}
		cv := r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
		m = m.Add(proj)
		v = v.Add(proj.MulVec(cv))
	}
	return m, v
}

// Midpoint triangulates a world point as the least-squares closest point to
// a bundle of rays (c_i, B_i), each B_i already expressed in the world
// frame. Gating mirrors DLT: parallax, then positive depth along each ray,
// then per-view reprojection error.
func (s *Solver) Midpoint(centers []r3.Point, bearingsWorld []r3.Vec, tauPerView []float64, alphaMin, dMin float64) Result {
	const op = "Midpoint"
	checkSameLength(op, "centers", len(centers), "bearingsWorld", len(bearingsWorld))
	checkSameLength(op, "centers", len(centers), "tauPerView", len(tauPerView))
	checkMinViews(op, len(centers), minMidpointViews)
	log := s.logger()

	n := len(centers)
	bearings := make([]r3.Vec, n)
	for i := range bearingsWorld {
		bearings[i] = normalizeBearing(op, bearingsWorld[i])
	}

	params := gateParamsFrom(alphaMin, dMin)
	if !gate.HasSufficientParallax(bearings, params.MinParallax) {
		log.Debugw("midpoint rejected: insufficient parallax", "views", n)
		return rejected()
	}

	m, v := buildNormalEquations(centers, bearings, nil)
	solved := r3.SolveSymmetric3x3(m, v)
	if !solved.OK || solved.SigmaMin < midpointSigmaFloor {
		log.Debugw("midpoint rejected: degenerate normal equations", "sigmaMin", solved.SigmaMin)
		return rejected()
	}
	x := r3.Point{X: solved.X.X, Y: solved.X.Y, Z: solved.X.Z}

	for i := 0; i < n; i++ {
		ray := x.Sub(centers[i])
		depth := ray.Dot(bearings[i])
		if !gate.PositiveDepth(depth, params.MinDepth) {
			log.Debugw("midpoint rejected: negative depth", "view", i, "depth", depth)
			return rejected()
		}
	}

	for i := 0; i < n; i++ {
		predicted := x.Sub(centers[i])
		if predicted.IsZero() {
			// X coincides with this camera's center: direction is
			// undefined. The positive-depth gate above is the mechanism
			// that rejects this case (depth 0); when that gate is
			// disabled (dMin < 0, a diagnostic mode for a shared center)
			// there is no meaningful reprojection residual to test, so
			// this view is skipped rather than treated as a failure.
			continue
		}
		if !gate.ReprojectionOK(bearings[i], predicted, tauPerView[i]) {
			log.Debugw("midpoint rejected: reprojection error", "view", i,
				"residual", gate.ReprojectionResidual(bearings[i], predicted), "tau", tauPerView[i])
			return rejected()
		}
	}

	return accepted(x)
}

// Midpoint triangulates using the package-level default solver (no
// logging).
func Midpoint(centers []r3.Point, bearingsWorld []r3.Vec, tauPerView []float64, alphaMin, dMin float64) Result {
	return defaultSolver.Midpoint(centers, bearingsWorld, tauPerView, alphaMin, dMin)
}
