package render

import (
	"image/color"
	"testing"

	"github.com/decker502/portfolio/internal/noise"
	"github.com/decker502/portfolio/internal/vortex"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestSim() *vortex.Simulation {
	cfg := vortex.DefaultConfig()
	cfg.ParticleCount = 20
	cfg.Seed = 5
	return vortex.New(cfg, noise.Constant(0), nil)
}

func TestCompositor_RenderWithoutSurface(t *testing.T) {
	c := NewCompositor(nil, nil)
	sim := newTestSim()

	if c.Layer() != nil {
		t.Error("Layer should be nil before Resize")
	}
	if c.Render(sim) {
		t.Error("Render without a surface should skip the frame")
	}
	if sim.TickCount() != 0 {
		t.Errorf("skipped frame must not tick, got %d", sim.TickCount())
	}
	if c.Render(nil) {
		t.Error("Render(nil) should return false")
	}
	c.DrawTo(ebiten.NewImage(4, 4), 1) // should not panic
}

func TestCompositor_Resize(t *testing.T) {
	c := NewCompositor(nil, nil)

	c.Resize(120, 80)
	if c.Layer() == nil {
		t.Fatal("Layer should exist after Resize")
	}
	if b := c.Layer().Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("Layer size = %dx%d, want 120x80", b.Dx(), b.Dy())
	}

	c.Resize(0, 80)
	if c.Layer() != nil {
		t.Error("non-positive size should release the layer")
	}

	c.Resize(10, 10)
	c.Dispose()
	if c.Layer() != nil {
		t.Error("Dispose should release the layer")
	}
}

func TestCompositor_Render(t *testing.T) {
	c := NewCompositor(nil, nil)
	sim := newTestSim()
	sim.Resize(200, 100)
	sim.InitAll()
	c.Resize(200, 100)

	if !c.Render(sim) {
		t.Fatal("Render should draw when a surface exists")
	}
	if sim.TickCount() != 1 {
		t.Errorf("TickCount = %d, want 1", sim.TickCount())
	}
	// 新生粒子 alpha 为 0，首帧全部被丢弃
	if c.Segments() != 0 {
		t.Errorf("first frame should drop transparent newborn segments, got %d", c.Segments())
	}

	c.Render(sim)
	if c.Segments() == 0 {
		t.Error("second frame should stroke visible segments")
	}
}

func TestCompositor_GlowEnabled(t *testing.T) {
	if NewCompositor(nil, nil).GlowEnabled() {
		t.Error("glow should be disabled without passes")
	}
	if !NewCompositor(nil, DefaultGlowPasses()).GlowEnabled() {
		t.Error("glow should be enabled with default passes")
	}
}

// renderLitFrame 渲染两帧：TTL 为 2 时第二帧所有线段 alpha 为 1
func renderLitFrame(t *testing.T, passes []GlowPass) []byte {
	t.Helper()
	const w, h = 120, 80

	cfg := vortex.DefaultConfig()
	cfg.ParticleCount = 6
	cfg.Seed = 11
	cfg.RangeY = 10
	cfg.BaseTTL, cfg.RangeTTL = 2, 0
	cfg.BaseSpeed, cfg.RangeSpeed = 4, 0
	cfg.BaseRadius, cfg.RangeRadius = 2, 0
	sim := vortex.New(cfg, noise.Constant(0), nil)
	sim.Resize(w, h)
	sim.InitAll()

	c := NewCompositor(color.Black, passes)
	if len(passes) > 0 && !c.GlowEnabled() {
		t.Fatal("glow shader should compile")
	}
	c.Resize(w, h)
	defer c.Dispose()

	c.Render(sim)
	if !c.Render(sim) || c.Segments() == 0 {
		t.Fatal("second frame should stroke visible segments")
	}
	return readLayer(t, c.Layer())
}

func rgbSum(pix []byte, i int) int {
	return int(pix[i]) + int(pix[i+1]) + int(pix[i+2])
}

// TestCompositor_RenderGlow 辉光把模糊提亮后的图层叠加回去：
// 总亮度增加，线段旁边原本黑色的像素被照亮，已点亮的像素不会变暗
func TestCompositor_RenderGlow(t *testing.T) {
	plain := renderLitFrame(t, nil)
	glow := renderLitFrame(t, DefaultGlowPasses())

	var plainTotal, glowTotal, halo int
	for i := 0; i < len(plain); i += 4 {
		p, g := rgbSum(plain, i), rgbSum(glow, i)
		plainTotal += p
		glowTotal += g
		if p == 0 && g > 0 {
			halo++
		}
		if g < p {
			t.Fatalf("pixel %d darker with glow: %d < %d", i/4, g, p)
		}
	}

	if plainTotal == 0 {
		t.Fatal("frame without glow should contain lit segments")
	}
	if glowTotal <= plainTotal {
		t.Errorf("glow total brightness = %d, want > %d", glowTotal, plainTotal)
	}
	if halo == 0 {
		t.Error("glow should light pixels next to the stroked segments")
	}
}
