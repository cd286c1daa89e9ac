// Package raster strokes vortex segments onto an in-memory image with the
// golang.org/x/image/vector rasterizer. It backs the headless snapshot tool.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// capSteps is the number of edges approximating each round cap.
const capSteps = 8

// Canvas implements vortex.Canvas on an *image.RGBA. Segments are blended
// additively, matching the "lighter" composite used on screen.
type Canvas struct {
	dst  *image.RGBA
	z    *vector.Rasterizer
	mask *image.Alpha

	segments int
}

// NewCanvas creates a width×height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := &Canvas{
		dst: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(0, 0),
	}
	c.Clear(bg)
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Segments returns how many segments touched the image.
func (c *Canvas) Segments() int {
	return c.segments
}

// Clear fills the whole image with bg.
func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// StrokeSegment draws a round-capped line of the given width. Pixels outside
// the image are clipped; a segment entirely outside is skipped.
func (c *Canvas) StrokeSegment(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 || width <= 0 {
		return
	}
	r := width / 2

	box := image.Rect(
		int(math.Floor(math.Min(x0, x1)-r)), int(math.Floor(math.Min(y0, y1)-r)),
		int(math.Ceil(math.Max(x0, x1)+r)), int(math.Ceil(math.Max(y0, y1)+r)),
	).Intersect(c.dst.Bounds())
	if box.Empty() {
		return
	}

	c.rasterize(capsule(x0, y0, x1, y1, r), box)
	c.blend(box, clr)
	c.segments++
}

// rasterize fills the mask with the coverage of poly inside box.
func (c *Canvas) rasterize(poly [][2]float64, box image.Rectangle) {
	w, h := box.Dx(), box.Dy()
	if c.mask == nil || c.mask.Rect.Dx() < w || c.mask.Rect.Dy() < h {
		c.mask = image.NewAlpha(image.Rect(0, 0, max(w, 16), max(h, 16)))
	}
	area := image.Rect(0, 0, w, h)
	draw.Draw(c.mask, area, image.Transparent, image.Point{}, draw.Src)

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Src
	c.z.MoveTo(float32(poly[0][0])-ox, float32(poly[0][1])-oy)
	for _, p := range poly[1:] {
		c.z.LineTo(float32(p[0])-ox, float32(p[1])-oy)
	}
	c.z.ClosePath()
	c.z.Draw(c.mask, area, image.Opaque, image.Point{})
}

// blend adds clr weighted by mask coverage to dst, saturating at 255.
func (c *Canvas) blend(box image.Rectangle, clr color.NRGBA) {
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			cov := uint32(c.mask.Pix[y*c.mask.Stride+x])
			if cov == 0 {
				continue
			}
			a := cov * uint32(clr.A) / 255
			i := c.dst.PixOffset(box.Min.X+x, box.Min.Y+y)
			px := c.dst.Pix[i : i+4 : i+4]
			px[0] = addSat(px[0], uint32(clr.R)*a/255)
			px[1] = addSat(px[1], uint32(clr.G)*a/255)
			px[2] = addSat(px[2], uint32(clr.B)*a/255)
			px[3] = addSat(px[3], a)
		}
	}
}

func addSat(v uint8, d uint32) uint8 {
	s := uint32(v) + d
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// capsule returns the outline of a segment of half-width r with round caps.
func capsule(x0, y0, x1, y1, r float64) [][2]float64 {
	dx, dy := x1-x0, y1-y0
	angle := 0.0
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}

	poly := make([][2]float64, 0, 2*(capSteps+1))
	// end cap: from +normal through the direction to -normal
	for i := 0; i <= capSteps; i++ {
		a := angle - math.Pi/2 + math.Pi*float64(i)/capSteps
		poly = append(poly, [2]float64{x1 + r*math.Cos(a), y1 + r*math.Sin(a)})
	}
	// start cap: from -normal through the reverse direction to +normal
	for i := 0; i <= capSteps; i++ {
		a := angle + math.Pi/2 + math.Pi*float64(i)/capSteps
		poly = append(poly, [2]float64{x0 + r*math.Cos(a), y0 + r*math.Sin(a)})
	}
	return poly
}
