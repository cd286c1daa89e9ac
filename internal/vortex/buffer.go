package vortex

// Field offsets inside one particle record.
const (
	fieldX = iota
	fieldY
	fieldVX
	fieldVY
	fieldLife
	fieldTTL
	fieldSpeed
	fieldRadius
	fieldHue

	// Stride is the number of float64 values per particle record.
	Stride
)

// Particle is a decoded copy of one buffer record.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	TTL    float64
	Speed  float64
	Radius float64
	Hue    float64
}

// Buffer is the flat, preallocated particle store. Records are never appended
// or removed; a slot is overwritten in place when its particle is recycled.
type Buffer struct {
	props []float64
}

// NewBuffer allocates a zeroed buffer for count particles.
func NewBuffer(count int) *Buffer {
	if count < 0 {
		count = 0
	}
	return &Buffer{props: make([]float64, count*Stride)}
}

// Len returns the number of particle slots.
func (b *Buffer) Len() int {
	return len(b.props) / Stride
}

// At decodes slot i.
func (b *Buffer) At(i int) Particle {
	r := b.props[i*Stride : i*Stride+Stride]
	return Particle{
		X:      r[fieldX],
		Y:      r[fieldY],
		VX:     r[fieldVX],
		VY:     r[fieldVY],
		Life:   r[fieldLife],
		TTL:    r[fieldTTL],
		Speed:  r[fieldSpeed],
		Radius: r[fieldRadius],
		Hue:    r[fieldHue],
	}
}

// Set overwrites slot i with p.
func (b *Buffer) Set(i int, p Particle) {
	r := b.props[i*Stride : i*Stride+Stride]
	r[fieldX] = p.X
	r[fieldY] = p.Y
	r[fieldVX] = p.VX
	r[fieldVY] = p.VY
	r[fieldLife] = p.Life
	r[fieldTTL] = p.TTL
	r[fieldSpeed] = p.Speed
	r[fieldRadius] = p.Radius
	r[fieldHue] = p.Hue
}

// record exposes slot i for in-place mutation by the tick loop.
func (b *Buffer) record(i int) []float64 {
	return b.props[i*Stride : i*Stride+Stride]
}
