package r3

import "gonum.org/v1/gonum/mat"

// SVDHomogeneousResult is the outcome of solving a homogeneous linear
// least-squares problem: find the unit 4-vector x minimizing ||A x||,
// i.e. the right singular vector associated with A's smallest singular
// value.
type SVDHomogeneousResult struct {
	// X is the right singular vector belonging to the smallest singular
	// value, not yet dehomogenized by its fourth component.
	X [4]float64
	// SigmaMin and SigmaNext are the two smallest singular values of A.
	// Both near zero indicates a degenerate system (e.g. camera centers
	// coincident as well as rays parallel).
	SigmaMin, SigmaNext float64
	// OK is false if the SVD factorization itself failed.
	OK bool
}

// SolveHomogeneous factors the len(rows)x4 matrix A built from rows (each
// row one linear constraint from a camera view) and returns the right
// singular vector for A's smallest singular value.
func SolveHomogeneous(rows [][4]float64) SVDHomogeneousResult {
	n := len(rows)
	data := make([]float64, 0, n*4)
	for _, r := range rows {
		data = append(data, r[0], r[1], r[2], r[3])
	}
	a := mat.NewDense(n, 4, data)

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return SVDHomogeneousResult{}
	}
	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	// V is 4x4 under SVDFull, but values holds only min(n, 4) entries: with
	// fewer than 4 rows the missing singular values are zero and belong to
	// V's trailing columns, so the smallest one is always column 3.
	sigmaAt := func(k int) float64 {
		if k < len(values) {
			return values[k]
		}
		return 0
	}
	var x [4]float64
	for i := 0; i < 4; i++ {
		x[i] = v.At(i, 3)
	}
	sigmaMin := sigmaAt(3)
	sigmaNext := sigmaAt(2)
	return SVDHomogeneousResult{X: x, SigmaMin: sigmaMin, SigmaNext: sigmaNext, OK: true}
}

// SolveSymmetricResult is the outcome of SolveSymmetric3x3.
type SolveSymmetricResult struct {
	X        Vec
	SigmaMin float64
	OK       bool
}

// SolveSymmetric3x3 solves M*x = b for the symmetric, positive
// semi-definite 3x3 matrix M that a bundle of ray-projector normal
// equations produce, via the SVD pseudoinverse. SigmaMin is M's smallest
// singular value; the caller rejects when it falls below a conditioning
// threshold rather than trusting a near-singular solve.
func SolveSymmetric3x3(m Mat3x3, b Vec) SolveSymmetricResult {
	data := []float64{
		m.M[0][0], m.M[0][1], m.M[0][2],
		m.M[1][0], m.M[1][1], m.M[1][2],
		m.M[2][0], m.M[2][1], m.M[2][2],
	}
	a := mat.NewDense(3, 3, data)

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return SolveSymmetricResult{}
	}
	values := svd.Values(nil)
	sigmaMin := values[len(values)-1]

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	bVec := mat.NewVecDense(3, []float64{b.X, b.Y, b.Z})
	var utb mat.VecDense
	utb.MulVec(u.T(), bVec)
	for i := 0; i < 3; i++ {
		if values[i] > 0 {
			utb.SetVec(i, utb.AtVec(i)/values[i])
		} else {
			utb.SetVec(i, 0)
		}
	}
	var x mat.VecDense
	x.MulVec(&v, &utb)

	return SolveSymmetricResult{
		X:        Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)},
		SigmaMin: sigmaMin,
		OK:       true,
	}
}
