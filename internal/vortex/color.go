package vortex

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	particleSaturation = 1.0
	particleLightness  = 0.6
)

// ParticleColor returns hsla(hue, 100%, 60%, alpha) as a straight-alpha colour.
func ParticleColor(hue, alpha float64) color.NRGBA {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, particleSaturation, particleLightness).Clamped().RGB255()

	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}
