package triangulate

import (
	"math"

	"github.com/scottlawsonbc/sfmtri/gate"
	"github.com/scottlawsonbc/sfmtri/r3"
)

// minDLTViews is the minimum number of views DLT's contract requires.
const minDLTViews = 2

// wDehomogenizeFloor is the minimum |w| DLT's homogeneous solution may have
// before dehomogenization is considered numerically meaningless.
const wDehomogenizeFloor = 1e-12

// DLT triangulates a world point from N>=2 calibrated poses and their
// corresponding unit bearings via the Direct Linear Transform: a (2N)x4
// homogeneous linear system solved by SVD, gated on parallax, positive
// depth, and reprojection error in that order.
func (s *Solver) DLT(poses []r3.Pose, bearings []r3.Vec, tau, alphaMin, dMin float64) Result {
	const op = "DLT"
	checkSameLength(op, "poses", len(poses), "bearings", len(bearings))
	checkMinViews(op, len(poses), minDLTViews)
	log := s.logger()

	n := len(poses)
	b := make([]r3.Vec, n)
	worldDirs := make([]r3.Vec, n)
	for i := range bearings {
		b[i] = normalizeBearing(op, bearings[i])
		worldDirs[i] = poses[i].R.Transpose().MulVec(b[i])
	}

	params := gateParamsFrom(alphaMin, dMin)
	if !gate.HasSufficientParallax(worldDirs, params.MinParallax) {
		log.Debugw("dlt rejected: insufficient parallax", "views", n)
		return rejected()
	}

	rows := make([][4]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		r0 := poses[i].Row(0)
		r1 := poses[i].Row(1)
		r2 := poses[i].Row(2)
		bx, by, bz := b[i].X, b[i].Y, b[i].Z
		rows = append(rows,
			sub4(scale4(r2, by), scale4(r1, bz)),
			sub4(scale4(r0, bz), scale4(r2, bx)),
		)
	}

	svd := r3.SolveHomogeneous(rows)
	if !svd.OK {
		log.Debugw("dlt rejected: svd factorization failed")
		return rejected()
	}
	if svd.SigmaNext <= 0 || svd.SigmaMin/svd.SigmaNext > sigmaRatioCeiling {
		log.Debugw("dlt rejected: degenerate system", "sigmaMin", svd.SigmaMin, "sigmaNext", svd.SigmaNext)
		return rejected()
	}

	w := svd.X[3]
	if math.Abs(w) < wDehomogenizeFloor {
		log.Debugw("dlt rejected: homogeneous w below floor", "w", w)
		return rejected()
	}
	x := r3.Point{X: svd.X[0] / w, Y: svd.X[1] / w, Z: svd.X[2] / w}

	for i := 0; i < n; i++ {
		camPoint := poses[i].Apply(x)
		if !gate.PositiveDepth(camPoint.Z, params.MinDepth) {
			log.Debugw("dlt rejected: negative depth", "view", i, "depth", camPoint.Z)
			return rejected()
		}
	}

	for i := 0; i < n; i++ {
		camPoint := poses[i].Apply(x)
		if !gate.ReprojectionOK(b[i], camPoint, tau) {
			log.Debugw("dlt rejected: reprojection error", "view", i,
				"residual", gate.ReprojectionResidual(b[i], camPoint), "tau", tau)
			return rejected()
		}
	}

	return accepted(x)
}

// DLT triangulates using the package-level default solver (no logging).
func DLT(poses []r3.Pose, bearings []r3.Vec, tau, alphaMin, dMin float64) Result {
	return defaultSolver.DLT(poses, bearings, tau, alphaMin, dMin)
}

func scale4(v [4]float64, s float64) [4]float64 {
	return [4]float64{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func sub4(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}
