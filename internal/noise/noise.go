// Package noise generates bounded random perturbations for bearing-noise
// robustness tests, built on uniform unit-sphere and unit-vector
// distributions.
package noise

import (
	"math"
	"math/rand"

	"github.com/scottlawsonbc/sfmtri/r3"
)

// Source wraps a *rand.Rand to provide the distributions this package's
// tests need. Each Source is independent; share a *rand.Rand only if
// single-threaded use is guaranteed.
type Source struct {
	*rand.Rand
}

// New creates a Source seeded deterministically, so noise-robustness tests
// are reproducible across runs.
func New(seed int64) *Source {
	return &Source{rand.New(rand.NewSource(seed))}
}

// UnitVector returns a random unit vector uniformly distributed on the
// surface of the unit sphere.
func (s *Source) UnitVector() r3.Vec {
	azimuth := s.Float64() * 2 * math.Pi
	z := s.Float64()*2 - 1
	radius := math.Sqrt(1 - z*z)
	return r3.Vec{
		X: radius * math.Cos(azimuth),
		Y: radius * math.Sin(azimuth),
		Z: z,
	}
}

// InUnitSphere returns a random vector uniformly distributed within the
// unit sphere (length strictly less than 1), by rejection sampling.
func (s *Source) InUnitSphere() r3.Vec {
	for {
		p := r3.Vec{X: s.Float64(), Y: s.Float64(), Z: s.Float64()}.
			Muls(2).Sub(r3.Vec{X: 1, Y: 1, Z: 1})
		if p.Length() < 1.0 {
			return p
		}
	}
}

// PerturbUnit returns a unit vector obtained by nudging v by a random
// offset of the given magnitude and renormalizing, for simulating bearing
// measurement noise. magnitude is an absolute distance: the offset's
// length is below magnitude regardless of v's own length.
func (s *Source) PerturbUnit(v r3.Vec, magnitude float64) r3.Vec {
	offset := s.InUnitSphere().Muls(magnitude)
	return v.Add(offset).Unit()
}
