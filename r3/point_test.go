// Copyright Scott Lawson 2024. All rights reserverd.

package r3_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottlawsonbc/sfmtri/r3"
)

func ExamplePoint_cameraBaseline() {
	// Distance between two camera centers.
	c1 := r3.Point{X: 1, Y: 2, Z: 3}
	c2 := r3.Point{X: 4, Y: 5, Z: 6}
	baseline := c1.Sub(c2).Length()
	fmt.Printf("Baseline between %v and %v is %v\n", c1, c2, baseline)
	// Output: Baseline between (1, 2, 3) and (4, 5, 6) is 5.196152422706632
}

func ExamplePoint_rayEndpoint() {
	// Walking a camera center out along a bearing by a given depth.
	center := r3.Point{X: 0, Y: 0, Z: 0}
	bearing := r3.Vec{X: 1, Y: 1, Z: 0}.Unit()
	endpoint := center.Add(bearing.Muls(5))
	fmt.Printf("Endpoint: %v\n", endpoint)
	// Output: Endpoint: (3.5355339059327373, 3.5355339059327373, 0)
}

func TestPointSetAndGet(t *testing.T) {
	p := r3.Point{X: 1, Y: 2, Z: 3}
	require.Equal(t, r3.Point{X: 10, Y: 2, Z: 3}, p.Set(0, 10))
	require.Equal(t, r3.Point{X: 1, Y: 20, Z: 3}, p.Set(1, 20))
	require.Equal(t, r3.Point{X: 1, Y: 2, Z: 30}, p.Set(2, 30))
	require.Panics(t, func() { p.Set(-1, 0) })
	require.Panics(t, func() { p.Set(3, 0) })

	require.Equal(t, 1.0, p.Get(0))
	require.Equal(t, 2.0, p.Get(1))
	require.Equal(t, 3.0, p.Get(2))
	require.Panics(t, func() { p.Get(-1) })
	require.Panics(t, func() { p.Get(3) })
}

func TestPointArithmetic(t *testing.T) {
	p1 := r3.Point{X: 1, Y: 2, Z: 3}
	p2 := r3.Point{X: 4, Y: 5, Z: 6}
	require.Equal(t, r3.Vec{X: -3, Y: -3, Z: -3}, p1.Sub(p2))

	v := r3.Vec{X: 4, Y: 5, Z: 6}
	require.Equal(t, r3.Point{X: 5, Y: 7, Z: 9}, p1.Add(v))
	require.Equal(t, r3.Point{X: -3, Y: -3, Z: -3}, p1.Subv(v))
}

func TestPointLerp(t *testing.T) {
	p1 := r3.Point{X: 0, Y: 0, Z: 0}
	p2 := r3.Point{X: 10, Y: 10, Z: 10}
	cases := []struct {
		t        float64
		expected r3.Point
	}{
		{0, r3.Point{X: 0, Y: 0, Z: 0}},
		{0.5, r3.Point{X: 5, Y: 5, Z: 5}},
		{1, r3.Point{X: 10, Y: 10, Z: 10}},
		{-0.5, r3.Point{X: 0, Y: 0, Z: 0}},
		{1.5, r3.Point{X: 10, Y: 10, Z: 10}},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, p1.Lerp(p2, c.t))
	}
}

func TestPointEqAndIsClose(t *testing.T) {
	p1 := r3.Point{X: 1, Y: 2, Z: 3}
	p2 := r3.Point{X: 1, Y: 2, Z: 3}
	p3 := r3.Point{X: 4, Y: 5, Z: 6}
	require.True(t, p1.Eq(p2))
	require.False(t, p1.Eq(p3))

	near := r3.Point{X: 1.0000001, Y: 2.0000001, Z: 3.0000001}
	require.True(t, p1.IsClose(near, 1e-6))
	require.False(t, p1.IsClose(p3, 1e-6))
}

func TestPointPredicates(t *testing.T) {
	require.True(t, r3.Point{X: math.NaN()}.IsNaN())
	require.False(t, r3.Point{}.IsNaN())
	require.True(t, r3.Point{X: math.Inf(1)}.IsInf())
	require.False(t, r3.Point{}.IsInf())
	require.True(t, r3.Point{}.IsZero())
	require.False(t, r3.Point{X: 1e-9}.IsZero())
}

func TestPointString(t *testing.T) {
	require.Equal(t, "(1.1, 2.2, 3.3)", r3.Point{X: 1.1, Y: 2.2, Z: 3.3}.String())
}
