package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cornerSegments is the number of straight pieces per rounded corner in
// RoundedRectOutline.
const cornerSegments = 8

// RoundedRectPath returns a closed rounded rectangle path. The radius is
// clamped to half of the shorter side.
func RoundedRectPath(x, y, w, h, r float32) *vector.Path {
	r = clampRadius(w, h, r)

	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x+w, y+h-r)
	path.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x+r, y+h)
	path.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x, y+r)
	path.Arc(x+r, y+r, r, math.Pi, math.Pi*3/2, vector.Clockwise)
	path.Close()
	return &path
}

// RoundedRectOutline returns the corner points of a rounded rectangle in
// clockwise order, starting at the top-left arc.
func RoundedRectOutline(x, y, w, h, r float32) [][2]float32 {
	r = clampRadius(w, h, r)
	centres := [4][2]float32{
		{x + r, y + r},
		{x + w - r, y + r},
		{x + w - r, y + h - r},
		{x + r, y + h - r},
	}
	points := make([][2]float32, 0, 4*(cornerSegments+1))
	for corner, c := range centres {
		start := math.Pi + float64(corner)*math.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + float64(i)*(math.Pi/2)/cornerSegments
			points = append(points, [2]float32{
				c[0] + r*float32(math.Cos(a)),
				c[1] + r*float32(math.Sin(a)),
			})
		}
	}
	return points
}

func clampRadius(w, h, r float32) float32 {
	r = float32(math.Min(float64(r), math.Min(float64(w), float64(h))/2))
	if r < 0 {
		return 0
	}
	return r
}

func drawPathOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

// FillRoundedRect fills a rounded rectangle with clr.
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillPath(dst, RoundedRectPath(x, y, w, h, r), nil, drawPathOptions(clr))
}

// StrokeRoundedRect outlines a rounded rectangle with clr.
func StrokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float32, clr color.Color) {
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	vector.StrokePath(dst, RoundedRectPath(x, y, w, h, r), &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	}, drawPathOptions(clr))
}

// DrawImageRounded draws img scaled into the rectangle with rounded corners
// clipped away. The whole image is stretched over the rectangle; callers keep
// the aspect ratio by choosing w and h.
func DrawImageRounded(dst, img *ebiten.Image, x, y, w, h, r float32, alpha float32) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	sx := float32(b.Dx()) / w
	sy := float32(b.Dy()) / h

	// 圆角矩形是凸多边形，以中心为扇形原点三角化
	outline := RoundedRectOutline(x, y, w, h, r)
	vs := make([]ebiten.Vertex, 0, len(outline)+1)
	vs = append(vs, ebiten.Vertex{DstX: x + w/2, DstY: y + h/2})
	for _, p := range outline {
		vs = append(vs, ebiten.Vertex{DstX: p[0], DstY: p[1]})
	}
	for i := range vs {
		vs[i].SrcX = float32(b.Min.X) + (vs[i].DstX-x)*sx
		vs[i].SrcY = float32(b.Min.Y) + (vs[i].DstY-y)*sy
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, alpha
	}

	n := uint16(len(outline))
	is := make([]uint16, 0, 3*int(n))
	for i := uint16(0); i < n; i++ {
		is = append(is, 0, 1+i, 1+(i+1)%n)
	}
	dst.DrawTriangles(vs, is, img, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		Filter:    ebiten.FilterLinear,
	})
}

// FillVerticalGradient fills a rectangle blending from top to bottom.
func FillVerticalGradient(dst *ebiten.Image, x, y, w, h float32, top, bottom color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	tr, tg, tb, ta := floatRGBA(top)
	br, bg, bb, ba := floatRGBA(bottom)
	vs := []ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x + w, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		{DstX: x + w, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	}
	is := []uint16{0, 1, 2, 1, 3, 2}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// floatRGBA returns premultiplied components in [0, 1].
func floatRGBA(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// FillRect fills an axis-aligned rectangle with clr.
func FillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(dst, x, y, w, h, clr, false)
}

// FillCircle fills a disc centred on (cx, cy).
func FillCircle(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(dst, cx, cy, r, clr, true)
}

// StrokeCircle outlines a circle centred on (cx, cy).
func StrokeCircle(dst *ebiten.Image, cx, cy, r, width float32, clr color.Color) {
	if r <= 0 || width <= 0 {
		return
	}
	vector.StrokeCircle(dst, cx, cy, r, width, clr, true)
}
