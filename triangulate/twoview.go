package triangulate

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// parallelRowFloor is the minimum batch size at which Solver.Parallel
// actually shards work: the row count for TwoViewMidpointMany, the number
// of matrix entries (N*M) for EpipolarAngleMatrix. Below it the goroutine
// overhead would dominate the O(1)-per-row closed-form solve.
const parallelRowFloor = 2048

// twoViewDenomFloor guards the 2x2 closed-form solve against near-parallel
// bearings, where the system becomes singular and s, r blow up; this is
// detected, not gated the way DLT/midpoint are, since this solve
// deliberately carries no parallax or reprojection gate.
const twoViewDenomFloor = 1e-12

// TwoViewMidpointMany triangulates N correspondences sharing one relative
// pose (R, t frame2->frame1) via the closed-form two-ray midpoint. It is a
// tight inner loop: no SVD and no heap allocation per row. Acceptance
// requires positive depth along both rays; no parallax or reprojection
// gate is applied here, by design — callers compose with
// EpipolarAngleMatrix when a geometric consistency score is also needed.
func (s *Solver) TwoViewMidpointMany(b1, b2 []r3.Vec, r r3.Mat3x3, t r3.Vec) []Result {
	const op = "TwoViewMidpointMany"
	checkSameLength(op, "b1", len(b1), "b2", len(b2))

	n := len(b1)
	out := make([]Result, n)
	rowFn := func(i int) {
		out[i] = twoViewMidpointOne(b1[i], b2[i], r, t)
	}

	if s.Parallel && n >= parallelRowFloor {
		shardRows(n, rowFn)
		return out
	}
	for i := 0; i < n; i++ {
		rowFn(i)
	}
	return out
}

// TwoViewMidpointMany triangulates using the package-level default solver
// (serial, no logging).
func TwoViewMidpointMany(b1, b2 []r3.Vec, r r3.Mat3x3, t r3.Vec) []Result {
	return defaultSolver.TwoViewMidpointMany(b1, b2, r, t)
}

func twoViewMidpointOne(bearing1, bearing2Cam r3.Vec, r r3.Mat3x3, t r3.Vec) Result {
	d1 := bearing1.Unit()
	d2 := r.MulVec(bearing2Cam).Unit()

	w0 := t.Muls(-1) // c1 - c2 = 0 - t
	b := d1.Dot(d2)
	dd := d1.Dot(w0)
	e := d2.Dot(w0)
	denom := 1 - b*b
	if denom < twoViewDenomFloor && denom > -twoViewDenomFloor {
		return rejected()
	}

	sParam := (b*e - dd) / denom
	rParam := (e - b*dd) / denom
	if !(sParam > 0 && rParam > 0) {
		return rejected()
	}

	p1 := d1.Muls(sParam)
	p2 := t.Add(d2.Muls(rParam))
	mid := p1.Add(p2).Muls(0.5)
	return accepted(r3.Point{X: mid.X, Y: mid.Y, Z: mid.Z})
}

// shardRows runs fn(i) for i in [0,n) across GOMAXPROCS goroutines using
// errgroup, splitting the index range into contiguous chunks so output
// ordering (each rowFn writes to its own out[i]) stays positional
// regardless of schedule.
func shardRows(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
