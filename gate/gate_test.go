package gate_test

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/scottlawsonbc/sfmtri/gate"
	"github.com/scottlawsonbc/sfmtri/r3"
)

func TestHasSufficientParallax(t *testing.T) {
	dirs := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 0.999, Y: 0.001, Z: 0}, // near-parallel to the first
		{X: 0, Y: 1, Z: 0},         // 90 degrees from the first
	}
	require.True(t, gate.HasSufficientParallax(dirs, 1*s1.Degree))
	require.False(t, gate.HasSufficientParallax(dirs, 91*s1.Degree))
}

func TestMaxParallaxAngleSinglePair(t *testing.T) {
	dirs := []r3.Vec{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	require.InDelta(t, s1.Degree.Radians()*90, gate.MaxParallaxAngle(dirs).Radians(), 1e-9)
}

func TestPositiveDepthDisabledWhenMinNegative(t *testing.T) {
	require.True(t, gate.PositiveDepth(-100, -1e-6))
}

func TestPositiveDepthEnforcesFloor(t *testing.T) {
	require.True(t, gate.PositiveDepth(1e-6, 1e-6))
	require.False(t, gate.PositiveDepth(1e-7, 1e-6))
}

func TestReprojectionOKExactMatch(t *testing.T) {
	b := r3.Vec{X: 0, Y: 0, Z: 1}
	require.True(t, gate.ReprojectionOK(b, b, 1e-9))
}

func TestReprojectionOKRespectsTau(t *testing.T) {
	observed := r3.Vec{X: 0, Y: 0, Z: 1}
	predicted := r3.Vec{X: 0.01, Y: 0, Z: 1}
	tau := gate.ReprojectionResidual(observed, predicted)
	require.True(t, gate.ReprojectionOK(observed, predicted, tau))
	require.False(t, gate.ReprojectionOK(observed, predicted, tau*0.5))
}

func TestTauFromAngleMatchesOneMinusCos(t *testing.T) {
	a := 5 * s1.Degree
	tau := gate.TauFromAngle(a)
	u := r3.Vec{X: 0, Y: 0, Z: 1}
	v := r3.RotationMatrixX(a.Radians()).MulVec(u)
	require.InDelta(t, tau, gate.ReprojectionResidual(u, v), 1e-9)
}
