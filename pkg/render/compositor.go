package render

import (
	"image/color"
	"log"

	"github.com/decker502/portfolio/internal/vortex"
	"github.com/hajimehoshi/ebiten/v2"
)

// Compositor renders a vortex.Simulation into an offscreen layer, adds glow
// passes and blends the layer additively onto the visible screen.
//
// The layer is redrawn from scratch every frame:
//  1. clear + fill background
//  2. one simulation tick stroked into the layer
//  3. each GlowPass: copy layer -> scratch, draw blurred scratch back with BlendLighter
//
// DrawTo then performs the final additive pass.
type Compositor struct {
	layer   *ebiten.Image
	scratch *ebiten.Image
	canvas  *ImageCanvas
	shader  *ebiten.Shader

	background color.Color
	passes     []GlowPass
}

// NewCompositor creates a compositor without surfaces; call Resize before Render.
// If the glow shader fails to compile the compositor still works without glow.
func NewCompositor(background color.Color, passes []GlowPass) *Compositor {
	if background == nil {
		background = color.Black
	}
	c := &Compositor{
		canvas:     NewImageCanvas(nil),
		background: background,
		passes:     passes,
	}

	if len(passes) > 0 {
		shader, err := newGlowShader()
		if err != nil {
			log.Printf("[Compositor] Warning: %v (glow disabled)", err)
		} else {
			c.shader = shader
		}
	}
	return c
}

// Resize reallocates the offscreen surfaces. Non-positive sizes release them,
// after which Render skips frames until the next valid Resize.
func (c *Compositor) Resize(width, height int) {
	c.release()
	if width <= 0 || height <= 0 {
		return
	}
	c.layer = ebiten.NewImage(width, height)
	c.scratch = ebiten.NewImage(width, height)
	c.canvas.SetTarget(c.layer)
}

// Layer returns the offscreen particle layer, or nil before Resize.
func (c *Compositor) Layer() *ebiten.Image {
	return c.layer
}

// GlowEnabled reports whether glow passes will run.
func (c *Compositor) GlowEnabled() bool {
	return c.shader != nil && len(c.passes) > 0
}

// Render draws one frame of sim into the layer. It returns false when the
// frame was skipped because there is no surface to draw on.
func (c *Compositor) Render(sim *vortex.Simulation) bool {
	if c.layer == nil || sim == nil {
		return false
	}

	c.layer.Clear()
	c.layer.Fill(c.background)

	c.canvas.ResetStats()
	if !sim.Tick(c.canvas) {
		return false
	}

	if c.GlowEnabled() {
		c.renderGlow()
	}
	return true
}

// Segments returns how many segments were stroked in the last Render.
func (c *Compositor) Segments() int {
	return c.canvas.Segments()
}

func (c *Compositor) renderGlow() {
	bounds := c.layer.Bounds()
	for _, pass := range c.passes {
		c.scratch.Clear()
		c.scratch.DrawImage(c.layer, &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy})

		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = c.scratch
		op.Uniforms = map[string]any{
			"Radius":     float32(pass.Blur),
			"Brightness": float32(pass.Brightness),
		}
		op.Blend = ebiten.BlendLighter
		c.layer.DrawRectShader(bounds.Dx(), bounds.Dy(), c.shader, op)
	}
}

// DrawTo blends the layer onto dst additively, scaled by opacity in [0, 1].
func (c *Compositor) DrawTo(dst *ebiten.Image, opacity float64) {
	if c.layer == nil || dst == nil {
		return
	}
	opacity = clampUnit(opacity)
	if opacity == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
	op.ColorScale.ScaleAlpha(float32(opacity))
	dst.DrawImage(c.layer, op)
}

// Dispose releases the offscreen surfaces.
func (c *Compositor) Dispose() {
	c.release()
}

func (c *Compositor) release() {
	c.canvas.SetTarget(nil)
	if c.layer != nil {
		c.layer.Deallocate()
		c.layer = nil
	}
	if c.scratch != nil {
		c.scratch.Deallocate()
		c.scratch = nil
	}
}
