package triangulate

import "github.com/scottlawsonbc/sfmtri/r3"

// Result is the tagged outcome of a triangulation call. When Accepted is
// false, Point is unspecified and must not be consumed: geometric
// rejection and numerical degeneracy are both reported this way and are
// indistinguishable to the caller.
type Result struct {
	Accepted bool
	Point    r3.Point
}

func rejected() Result {
	return Result{}
}

func accepted(p r3.Point) Result {
	return Result{Accepted: true, Point: p}
}
