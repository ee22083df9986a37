package noise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottlawsonbc/sfmtri/internal/noise"
	"github.com/scottlawsonbc/sfmtri/r3"
)

func TestUnitVectorIsUnit(t *testing.T) {
	src := noise.New(1)
	for i := 0; i < 100; i++ {
		v := src.UnitVector()
		require.InDelta(t, 1, v.Length(), 1e-9)
	}
}

func TestInUnitSphereIsBounded(t *testing.T) {
	src := noise.New(2)
	for i := 0; i < 100; i++ {
		v := src.InUnitSphere()
		require.Less(t, v.Length(), 1.0)
	}
}

func TestPerturbUnitStaysUnitAndBounded(t *testing.T) {
	src := noise.New(3)
	v := r3.Vec{X: 0, Y: 0, Z: 1}
	for i := 0; i < 50; i++ {
		p := src.PerturbUnit(v, 1e-3)
		require.InDelta(t, 1, p.Length(), 1e-9)
		require.InDelta(t, 0, p.Sub(v).Length(), 5e-3)
	}
}
