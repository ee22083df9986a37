// Package fixtures builds literal camera/bearing configurations used
// across the triangulate package's tests and the example program, so each
// configuration is defined once rather than re-derived per test file.
package fixtures

import (
	"github.com/golang/geo/s1"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// Scenario bundles a set of camera centers, their bearings toward a known
// world point (already normalized), and that ground-truth point, plus the
// DLT-style pose/local-bearing view of the same configuration (assuming
// identity camera rotation, true for every fixture in this package).
type Scenario struct {
	Centers       []r3.Point
	BearingsWorld []r3.Vec
	Truth         r3.Point
}

// Poses returns identity-rotation poses for each center, and Bearings
// returns the corresponding camera-local bearings — under identity
// rotation the local and world-frame bearings coincide, so DLT and
// Midpoint can share one Scenario.
func (s Scenario) Poses() []r3.Pose {
	poses := make([]r3.Pose, len(s.Centers))
	for i, c := range s.Centers {
		poses[i] = r3.NewPoseFromCenter(r3.IdentityMat3x3(), c)
	}
	return poses
}

// Bearings returns the camera-local bearings, identical to BearingsWorld
// since every Scenario in this package uses identity camera rotation.
func (s Scenario) Bearings() []r3.Vec {
	return s.BearingsWorld
}

func bearingTo(center, point r3.Point) r3.Vec {
	return point.Sub(center).Unit()
}

// TwoCamerasAxisAligned places two cameras at (0,0,0) and (1,0,0) viewing
// a shared ground-truth point at (0,0,1).
func TwoCamerasAxisAligned() Scenario {
	truth := r3.Point{X: 0, Y: 0, Z: 1}
	centers := []r3.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	return fromCentersAndTruth(centers, truth)
}

// FiveCamerasShortBaseline places five cameras at c_i = (0.1i, 0.02i, 0)
// for i in 0..4, viewing a shared ground-truth point at (0,0,1).
func FiveCamerasShortBaseline() Scenario {
	truth := r3.Point{X: 0, Y: 0, Z: 1}
	centers := make([]r3.Point, 5)
	for i := range centers {
		centers[i] = r3.Point{X: 0.1 * float64(i), Y: 0.02 * float64(i), Z: 0}
	}
	return fromCentersAndTruth(centers, truth)
}

// ThreeCamerasSharedCenter places three cameras at (0,0,0), (0,0,0), and
// (1,0,0) — the first two sharing a center — viewing a shared ground-truth
// point at (0,0,1).
func ThreeCamerasSharedCenter() Scenario {
	truth := r3.Point{X: 0, Y: 0, Z: 1}
	centers := []r3.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	return fromCentersAndTruth(centers, truth)
}

// TwoCamerasCoincidentCenters places both cameras at (1,0,0), with
// distinct, arbitrary bearings (0,0,1) and (1,0,0) — not derived from any
// shared truth point, since the point is what the gate is expected to
// reject.
func TwoCamerasCoincidentCenters() Scenario {
	centers := []r3.Point{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	bearings := []r3.Vec{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}}
	return Scenario{Centers: centers, BearingsWorld: bearings, Truth: centers[0]}
}

// RefinementInitialGuess is a perturbed starting point for refinement:
// TwoCamerasAxisAligned's truth offset by (0.1, 0.2, 0.3).
func RefinementInitialGuess() r3.Point {
	truth := TwoCamerasAxisAligned().Truth
	return truth.Add(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3})
}

// TwoViewBatch returns two correspondences (0,0,1) and (1,2,3) in frame 2,
// related to frame 1 by R = rotY(0.1), t = (-1, 2, 0.2). It returns the
// camera-1-frame bearings, camera-2-frame bearings, the relative pose, and
// the ground-truth points expressed in frame 1.
func TwoViewBatch() (b1, b2 []r3.Vec, r r3.Mat3x3, t r3.Vec, truths []r3.Point) {
	r = r3.RotationMatrixY(0.1)
	t = r3.Vec{X: -1, Y: 2, Z: 0.2}

	truthsFrame2 := []r3.Point{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 2, Z: 3}}

	b1 = make([]r3.Vec, len(truthsFrame2))
	b2 = make([]r3.Vec, len(truthsFrame2))
	truths = make([]r3.Point, len(truthsFrame2))
	for i, x2 := range truthsFrame2 {
		x2Vec := r3.Vec{X: x2.X, Y: x2.Y, Z: x2.Z}
		x1Vec := r.MulVec(x2Vec).Add(t)
		x1 := r3.Point{X: x1Vec.X, Y: x1Vec.Y, Z: x1Vec.Z}

		b1[i] = bearingTo(r3.Point{}, x1) // frame-1 camera center is the origin
		b2[i] = bearingTo(r3.Point{}, x2) // frame-2 camera center is the origin
		truths[i] = x1
	}
	return b1, b2, r, t, truths
}

// DefaultTau, DefaultAlphaMin, and DefaultDMin are gate thresholds shared
// by this package's fixtures and the example program.
const DefaultTau = 0.01

var DefaultAlphaMin = 2 * s1.Degree

const DefaultDMin = 1e-6

func fromCentersAndTruth(centers []r3.Point, truth r3.Point) Scenario {
	bearings := make([]r3.Vec, len(centers))
	for i, c := range centers {
		bearings[i] = bearingTo(c, truth)
	}
	return Scenario{Centers: centers, BearingsWorld: bearings, Truth: truth}
}
