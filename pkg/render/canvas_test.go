package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestImageCanvas_StrokeSegment(t *testing.T) {
	dst := ebiten.NewImage(64, 64)
	c := NewImageCanvas(dst)

	tests := []struct {
		name  string
		width float64
		clr   color.NRGBA
		count bool
	}{
		{"visible", 2, color.NRGBA{R: 255, A: 255}, true},
		{"transparent", 2, color.NRGBA{R: 255, A: 0}, false},
		{"zero width", 0, color.NRGBA{R: 255, A: 255}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.ResetStats()
			c.StrokeSegment(1, 1, 10, 10, tt.width, tt.clr)
			if got := c.Segments() == 1; got != tt.count {
				t.Errorf("Segments() = %d, counted = %v, want %v", c.Segments(), got, tt.count)
			}
		})
	}
}

func TestImageCanvas_ZeroLengthSegment(t *testing.T) {
	dst := ebiten.NewImage(16, 16)
	c := NewImageCanvas(dst)
	c.StrokeSegment(8, 8, 8, 8, 4, color.NRGBA{G: 255, A: 255})
	if c.Segments() != 1 {
		t.Fatalf("zero-length segment should be drawn, segments=%d", c.Segments())
	}

	// 零长度线段画成一个圆点
	pix := readLayer(t, dst)
	if g := pix[4*(8*16+8)+1]; g == 0 {
		t.Error("zero-length segment should leave a round dot")
	}
}

func TestImageCanvas_NilTarget(t *testing.T) {
	c := NewImageCanvas(nil)
	c.StrokeSegment(0, 0, 10, 10, 2, color.NRGBA{A: 255})
	if c.Segments() != 0 {
		t.Errorf("nil target should drop segments, got %d", c.Segments())
	}
}

// 线段按颜色绘制，线段以外保持透明
func TestImageCanvas_Pixels(t *testing.T) {
	dst := ebiten.NewImage(32, 32)
	c := NewImageCanvas(dst)
	c.StrokeSegment(4, 16, 28, 16, 4, color.NRGBA{R: 255, A: 255})

	pix := readLayer(t, dst)
	at := func(x, y int) []byte { i := 4 * (y*32 + x); return pix[i : i+4] }
	if p := at(16, 16); p[0] < 250 || p[1] != 0 || p[2] != 0 {
		t.Errorf("pixel on segment = %v, want red", p)
	}
	if p := at(16, 4); p[3] != 0 {
		t.Errorf("pixel away from segment = %v, want transparent", p)
	}
}

func TestDefaultGlowPasses(t *testing.T) {
	passes := DefaultGlowPasses()
	want := []GlowPass{{Blur: 8, Brightness: 2}, {Blur: 4, Brightness: 2}}
	if len(passes) != len(want) {
		t.Fatalf("got %d passes, want %d", len(passes), len(want))
	}
	for i := range want {
		if passes[i] != want[i] {
			t.Errorf("pass %d = %+v, want %+v", i, passes[i], want[i])
		}
	}
}
