// Package noise provides the 3-D scalar noise field that steers vortex particles.
package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Source is a deterministic, continuous 3-D noise field.
// Implementations return values in [-1, 1] and hold no mutable state after construction.
type Source interface {
	Noise3D(x, y, z float64) float64
}

// Simplex is an OpenSimplex noise field with a fixed seed.
// Two instances created with the same seed produce the same field.
type Simplex struct {
	seed  int64
	noise opensimplex.Noise
}

// NewSimplex creates a simplex noise source for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

// Seed returns the seed the field was built from.
func (s *Simplex) Seed() int64 {
	return s.seed
}

// Noise3D samples the field. OpenSimplex can overshoot the unit range by a
// tiny margin near lattice corners, so the result is clamped.
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return clamp(s.noise.Eval3(x, y, z))
}

// Constant is a flat field, used by tests and tools that need a fixed heading.
type Constant float64

// Noise3D returns the constant value clamped to [-1, 1].
func (c Constant) Noise3D(x, y, z float64) float64 {
	return clamp(float64(c))
}

// Func adapts a plain function to Source.
type Func func(x, y, z float64) float64

// Noise3D calls f and clamps the result.
func (f Func) Noise3D(x, y, z float64) float64 {
	return clamp(f(x, y, z))
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
