package vortex

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/decker502/portfolio/internal/noise"
)

const tau = 2 * math.Pi

// Canvas receives the line segments drawn by a tick.
// Implementations stroke with round caps.
type Canvas interface {
	StrokeSegment(x0, y0, x1, y1, width float64, clr color.NRGBA)
}

// Simulation owns the particle buffer, the surface dimensions and the global
// tick counter. It is not safe for concurrent use; exactly one driver owns it.
type Simulation struct {
	cfg   Config
	seed  int64
	noise noise.Source
	rng   *rand.Rand

	buf *Buffer

	width, height    float64
	centerX, centerY float64

	tick uint64
}

// New creates a simulation from cfg. A nil src gets a simplex field seeded from
// the resolved seed; a nil rng gets a PCG generator from the same seed.
// The buffer is empty until Resize and InitAll are called.
func New(cfg Config, src noise.Source, rng *rand.Rand) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if src == nil {
		src = noise.NewSimplex(seed)
	}
	if rng == nil {
		rng = NewRand(seed)
	}
	return &Simulation{
		cfg:   cfg,
		seed:  seed,
		noise: src,
		rng:   rng,
		buf:   NewBuffer(0),
	}
}

// NewRand returns the generator type the simulation uses for a given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Config returns the tunables the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Seed returns the resolved seed (never zero).
func (s *Simulation) Seed() int64 { return s.seed }

// Len returns the number of particle slots currently allocated.
func (s *Simulation) Len() int { return s.buf.Len() }

// Particle returns a copy of slot i.
func (s *Simulation) Particle(i int) Particle { return s.buf.At(i) }

// TickCount returns the global tick counter fed to the noise time axis.
func (s *Simulation) TickCount() uint64 { return s.tick }

// Size returns the drawing surface dimensions.
func (s *Simulation) Size() (width, height float64) { return s.width, s.height }

// Center returns the spawn origin.
func (s *Simulation) Center() (x, y float64) { return s.centerX, s.centerY }

// Resize records new surface dimensions and recenters the spawn origin.
// Existing particles are kept until the next InitAll.
func (s *Simulation) Resize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
	s.centerX = 0.5 * s.width
	s.centerY = 0.5 * s.height
}

// InitAll reallocates the buffer at the configured size, resets the tick
// counter and initializes every slot.
func (s *Simulation) InitAll() {
	s.tick = 0
	s.buf = NewBuffer(s.cfg.ParticleCount)
	for i := 0; i < s.buf.Len(); i++ {
		s.InitParticle(i)
	}
}

// InitParticle overwrites slot i with a freshly spawned particle.
func (s *Simulation) InitParticle(i int) {
	s.buf.Set(i, Particle{
		X:      s.rand(s.width),
		Y:      s.centerY + s.randRange(s.cfg.RangeY),
		VX:     0,
		VY:     0,
		Life:   0,
		TTL:    s.cfg.BaseTTL + s.rand(s.cfg.RangeTTL),
		Speed:  s.cfg.BaseSpeed + s.rand(s.cfg.RangeSpeed),
		Radius: s.cfg.BaseRadius + s.rand(s.cfg.RangeRadius),
		Hue:    s.cfg.BaseHue + s.rand(s.cfg.RangeHue),
	})
}

// Tick advances every particle by one step and strokes its segment onto c.
// Without a canvas or a sized surface the frame is skipped and Tick returns false.
func (s *Simulation) Tick(c Canvas) bool {
	if c == nil || s.width <= 0 || s.height <= 0 {
		return false
	}

	s.tick++
	z := float64(s.tick) * s.cfg.ZOff

	for i := 0; i < s.buf.Len(); i++ {
		r := s.buf.record(i)

		x, y := r[fieldX], r[fieldY]
		n := s.noise.Noise3D(x*s.cfg.XOff, y*s.cfg.YOff, z) * s.cfg.NoiseSteps * tau
		vx := Lerp(r[fieldVX], math.Cos(n), SteeringBlend)
		vy := Lerp(r[fieldVY], math.Sin(n), SteeringBlend)
		life := r[fieldLife]
		ttl := r[fieldTTL]
		speed := r[fieldSpeed]
		x2 := x + vx*speed
		y2 := y + vy*speed

		c.StrokeSegment(x, y, x2, y2, r[fieldRadius], ParticleColor(r[fieldHue], FadeInOut(life, ttl)))

		life++

		r[fieldX] = x2
		r[fieldY] = y2
		r[fieldVX] = vx
		r[fieldVY] = vy
		r[fieldLife] = life

		if s.outOfBounds(x2, y2) || life > ttl {
			s.InitParticle(i)
		}
	}
	return true
}

func (s *Simulation) outOfBounds(x, y float64) bool {
	return x < 0 || x >= s.width || y < 0 || y >= s.height
}

// rand returns a uniform value in [0, n).
func (s *Simulation) rand(n float64) float64 {
	return n * s.rng.Float64()
}

// randRange returns a uniform value in (-n, n].
func (s *Simulation) randRange(n float64) float64 {
	return n - s.rand(2*n)
}
