// Package triangulate implements the five triangulation operations this
// module exposes: DLT, midpoint, two-view batched midpoint, the epipolar
// angle matrix, and iterative point refinement. Every operation is a pure
// function of its inputs: no I/O, no shared state, no retries. Numerical
// and geometric rejection are reported through Result.Accepted, never
// through an error value; only programming errors (size mismatches, too
// few views) panic.
package triangulate

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"go.uber.org/zap"

	"github.com/scottlawsonbc/sfmtri/gate"
	"github.com/scottlawsonbc/sfmtri/r3"
)

// angleFromRadians wraps a raw radian measure as an s1.Angle for the gate
// package's typed comparisons.
func angleFromRadians(r float64) s1.Angle {
	return s1.Angle(r)
}

// DefaultTau is a starting-point reprojection threshold for callers: an
// upper bound on 1-cos(err), see gate.ReprojectionOK. No function in this
// package applies it implicitly; every operation takes tau as an argument.
const DefaultTau = 1e-4

// bearingUnitTolerance is the slack allowed at input: a bearing within
// this distance of unit length is silently renormalized rather than
// rejected as a programming error.
const bearingUnitTolerance = 1e-3

// sigmaRatioCeiling is the maximum acceptable sigmaMin/sigmaNext ratio for
// a DLT solve. A well-posed system has its smallest singular value near
// zero (the null-space direction) clearly separated from the next
// smallest; a degenerate system (e.g. coincident centers) has both
// collapse toward the same small magnitude, pushing the ratio toward 1.
// At or above this ceiling the system is treated as a degeneracy rather
// than a well-posed triangulation.
const sigmaRatioCeiling = 0.99

// InvalidInputError reports a programming error: a caller-side contract
// violation such as a size mismatch or too few views, always a "fail
// loudly" condition rather than a runtime geometry outcome. Following the
// convention of panicking on caller misuse (r2.Vec.Div, r2.Vec.Divs),
// InvalidInputError is always delivered via panic, never returned.
type InvalidInputError struct {
	Op  string
	Msg string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("triangulate: %s: %s", e.Op, e.Msg)
}

func invalid(op, format string, args ...any) {
	panic(&InvalidInputError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Solver carries optional ambient configuration shared across calls: a
// diagnostic logger. The zero value is immediately usable and behaves
// identically to the package-level free functions.
type Solver struct {
	// Log receives a Debug-level entry for every gate rejection, naming
	// which gate failed and why. Logging is purely diagnostic and never
	// changes a Result. A nil Log is replaced with a no-op logger.
	Log *zap.SugaredLogger

	// Parallel enables row-wise sharding of TwoViewMidpointMany and
	// EpipolarAngleMatrix across goroutines: batched operations may be
	// parallelized over rows, since any parallel schedule is
	// observationally equivalent to serial. Disabled by default since the
	// per-row cost is tiny and goroutine fan-out only pays off for large N.
	Parallel bool
}

func (s *Solver) logger() *zap.SugaredLogger {
	if s == nil || s.Log == nil {
		return zap.NewNop().Sugar()
	}
	return s.Log
}

// defaultSolver backs the package-level convenience functions (DLT,
// Midpoint, TwoViewMidpointMany, EpipolarAngleMatrix, Refine).
var defaultSolver = &Solver{}

// normalizeBearing enforces the bearing invariant: unit norm at input,
// with tolerance for slight denormalization. Anything further off is a
// programming error, not a numerical condition the gate should absorb.
func normalizeBearing(op string, v r3.Vec) r3.Vec {
	length := v.Length()
	if math.Abs(length-1) > bearingUnitTolerance {
		invalid(op, "bearing %v has length %g, not within %g of unit length", v, length, bearingUnitTolerance)
	}
	return v.Divs(length)
}

// checkSameLength panics with InvalidInputError if the two slice lengths
// named by aName/bName disagree.
func checkSameLength(op, aName string, aLen int, bName string, bLen int) {
	if aLen != bLen {
		invalid(op, "%s has length %d but %s has length %d", aName, aLen, bName, bLen)
	}
}

// checkMinViews panics with InvalidInputError if n < min.
func checkMinViews(op string, n, min int) {
	if n < min {
		invalid(op, "need at least %d views, got %d", min, n)
	}
}

// UniformThresholds returns a per-view threshold slice broadcasting tau to
// n views, for the common case where every camera shares one reprojection
// tolerance.
func UniformThresholds(n int, tau float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = tau
	}
	return out
}

// gateParamsFrom adapts the canonical (alphaMin, dMin float64) pair used
// by every operation's signature into a gate.Params, converting the angle
// once at the boundary.
func gateParamsFrom(alphaMinRadians, dMin float64) gate.Params {
	return gate.Params{MinParallax: angleFromRadians(alphaMinRadians), MinDepth: dMin}
}
