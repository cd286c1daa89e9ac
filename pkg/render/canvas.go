// Package render draws the vortex simulation with Ebitengine: an ImageCanvas
// that strokes particle segments onto an offscreen image, and a Compositor that
// layers glow passes over the result and blends it onto the screen.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage avoids bleeding edges when used as the DrawTriangles source.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ImageCanvas strokes round-capped segments onto an ebiten.Image.
//
// Segments go through vector.FillPath, which batches every path drawn onto the
// same image and renders them the next time the image is used.
type ImageCanvas struct {
	dst      *ebiten.Image
	segment  vector.Path
	outline  vector.Path
	strokeOp vector.AddStrokeOptions
	drawOp   vector.DrawPathOptions
	segments int
}

// NewImageCanvas creates a canvas drawing onto dst.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	c := &ImageCanvas{dst: dst}
	c.strokeOp.LineCap = vector.LineCapRound
	c.drawOp.AntiAlias = true
	return c
}

// SetTarget switches the destination image.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// StrokeSegment draws a line from (x0, y0) to (x1, y1) with round caps.
// Fully transparent segments are dropped.
func (c *ImageCanvas) StrokeSegment(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if c.dst == nil || clr.A == 0 || width <= 0 {
		return
	}

	// A zero-length path produces no caps, so nudge the end point.
	if x0 == x1 && y0 == y1 {
		x1 += 0.01
	}
	c.segment.Reset()
	c.segment.MoveTo(float32(x0), float32(y0))
	c.segment.LineTo(float32(x1), float32(y1))

	c.outline.Reset()
	c.strokeOp.Width = float32(width)
	c.outline.AddStroke(&c.segment, &c.strokeOp)

	c.drawOp.ColorScale.Reset()
	c.drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, &c.outline, nil, &c.drawOp)
	c.segments++
}

// Segments returns how many segments were drawn since the last ResetStats.
func (c *ImageCanvas) Segments() int {
	return c.segments
}

// ResetStats zeroes the segment counter.
func (c *ImageCanvas) ResetStats() {
	c.segments = 0
}

// clampUnit limits v to [0, 1].
func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
