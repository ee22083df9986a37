package r3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottlawsonbc/sfmtri/r3"
)

func TestAngleBetweenOrthogonal(t *testing.T) {
	a := r3.AngleBetween(r3.Vec{X: 1, Y: 0, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 0})
	require.InDelta(t, math.Pi/2, a.Radians(), 1e-12)
}

func TestAngleBetweenParallel(t *testing.T) {
	a := r3.AngleBetween(r3.Vec{X: 2, Y: 0, Z: 0}, r3.Vec{X: 5, Y: 0, Z: 0})
	require.InDelta(t, 0, a.Radians(), 1e-12)
}

func TestAngleBetweenZeroVector(t *testing.T) {
	a := r3.AngleBetween(r3.Vec{}, r3.Vec{X: 1, Y: 0, Z: 0})
	require.InDelta(t, 0, a.Radians(), 1e-12)
}

func TestOneMinusCosAngleMatchesDirect(t *testing.T) {
	u := r3.Vec{X: 1, Y: 0, Z: 0}
	v := r3.Vec{X: 1, Y: 0.01, Z: 0}
	got := r3.OneMinusCosAngle(u, v)
	want := 1 - math.Cos(r3.AngleBetween(u, v).Radians())
	require.InDelta(t, want, got, 1e-12)
}

func TestOneMinusCosAngleZeroVectorIsOne(t *testing.T) {
	require.Equal(t, 1.0, r3.OneMinusCosAngle(r3.Vec{}, r3.Vec{X: 1, Y: 0, Z: 0}))
}
