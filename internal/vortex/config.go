// Package vortex implements the particle vortex backdrop: a fixed-size particle
// buffer steered by a 3-D noise field and stroked as short glowing segments.
//
// The package is renderer-agnostic. Segments are emitted through the Canvas
// interface, so the same simulation drives the Ebitengine compositor, the
// headless PNG snapshot tool and the terminal preview.
package vortex

import "fmt"

// SteeringBlend is the lerp factor pulling the velocity toward the noise heading each tick.
const SteeringBlend = 0.5

// Config holds the simulation tunables. It is read once when a Simulation is
// created and never changes afterwards.
type Config struct {
	ParticleCount int

	// RangeY is the vertical spawn jitter around the surface center.
	RangeY float64

	BaseTTL  float64
	RangeTTL float64

	BaseSpeed  float64
	RangeSpeed float64

	BaseRadius  float64
	RangeRadius float64

	BaseHue  float64
	RangeHue float64

	// NoiseSteps multiplies the sampled noise before it becomes an angle.
	NoiseSteps float64
	XOff       float64
	YOff       float64
	ZOff       float64

	// Seed drives both particle randomness and the default noise field.
	// Zero means "seed from the clock".
	Seed int64
}

// DefaultConfig returns the tunables used by the portfolio page.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 700,
		RangeY:        100,
		BaseTTL:       50,
		RangeTTL:      150,
		BaseSpeed:     0,
		RangeSpeed:    1.5,
		BaseRadius:    1,
		RangeRadius:   2,
		BaseHue:       220,
		RangeHue:      100,
		NoiseSteps:    3,
		XOff:          0.00125,
		YOff:          0.00125,
		ZOff:          0.0005,
	}
}

// Validate reports the first tunable that cannot drive a simulation.
func (c Config) Validate() error {
	if c.ParticleCount <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", c.ParticleCount)
	}

	ranges := []struct {
		name  string
		value float64
	}{
		{"rangeY", c.RangeY},
		{"rangeTTL", c.RangeTTL},
		{"rangeSpeed", c.RangeSpeed},
		{"rangeRadius", c.RangeRadius},
		{"rangeHue", c.RangeHue},
		{"baseTTL", c.BaseTTL},
		{"baseSpeed", c.BaseSpeed},
		{"baseRadius", c.BaseRadius},
	}
	for _, r := range ranges {
		if r.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %.4f", r.name, r.value)
		}
	}

	if c.BaseTTL+c.RangeTTL <= 0 {
		return fmt.Errorf("particle lifetime must be positive (baseTTL %.1f + rangeTTL %.1f)", c.BaseTTL, c.RangeTTL)
	}
	return nil
}
