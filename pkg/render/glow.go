package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GlowPass is one blur + brightness pass added back onto the particle layer.
type GlowPass struct {
	Blur       float64 // blur radius in pixels
	Brightness float64 // colour multiplier, 2 = 200%
}

// DefaultGlowPasses mirrors a CSS "blur(8px) brightness(200%)" pass followed by
// "blur(4px) brightness(200%)".
func DefaultGlowPasses() []GlowPass {
	return []GlowPass{
		{Blur: 8, Brightness: 2},
		{Blur: 4, Brightness: 2},
	}
}

// glowShaderSrc samples a 7x7 gaussian kernel spread over Radius pixels and
// scales the colour by Brightness.
const glowShaderSrc = `//kage:unit pixels

package main

var Radius float
var Brightness float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	var sum vec4
	var total float
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			d := vec2(float(i), float(j))
			w := exp(-dot(d, d) / 4.5)
			sum += imageSrc0At(srcPos + d*Radius/3.0) * w
			total += w
		}
	}
	c := sum / total
	c.rgb = c.rgb * Brightness
	return c
}
`

// newGlowShader compiles the glow shader.
func newGlowShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(glowShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile glow shader: %w", err)
	}
	return s, nil
}
