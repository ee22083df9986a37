package r3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottlawsonbc/sfmtri/r3"
)

func TestPoseCenterRoundTrip(t *testing.T) {
	r := r3.RotationMatrixY(0.37)
	center := r3.Point{X: 1.5, Y: -2, Z: 0.25}

	pose := r3.NewPoseFromCenter(r, center)
	got := pose.Center()

	require.InDelta(t, center.X, got.X, 1e-9)
	require.InDelta(t, center.Y, got.Y, 1e-9)
	require.InDelta(t, center.Z, got.Z, 1e-9)
}

func TestPoseApplyPlacesCenterAtOrigin(t *testing.T) {
	r := r3.RotationMatrixZ(1.1)
	center := r3.Point{X: 3, Y: 4, Z: 5}
	pose := r3.NewPoseFromCenter(r, center)

	camFrame := pose.Apply(center)
	require.InDelta(t, 0, camFrame.X, 1e-9)
	require.InDelta(t, 0, camFrame.Y, 1e-9)
	require.InDelta(t, 0, camFrame.Z, 1e-9)
}

func TestPoseRowMatchesMatrix(t *testing.T) {
	r := r3.IdentityMat3x3()
	pose := r3.NewPoseFromCenter(r, r3.Point{X: 1, Y: 2, Z: 3})

	row0 := pose.Row(0)
	require.Equal(t, [4]float64{1, 0, 0, pose.T.X}, row0)
}

func TestPoseRowPanicsOutOfRange(t *testing.T) {
	pose := r3.NewPoseFromCenter(r3.IdentityMat3x3(), r3.Point{})
	require.Panics(t, func() { pose.Row(3) })
}
