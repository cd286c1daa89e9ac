package main

import (
	"image/color"
	"testing"

	"github.com/decker502/portfolio/internal/vortex"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTermCanvas_StrokeSegment(t *testing.T) {
	c := newTermCanvas(10, 5, 1)

	c.StrokeSegment(0, 0, 9, 9, 1, color.NRGBA{R: 255, A: 255})
	if c.r[1*10+2] != 1 {
		t.Errorf("segment ending at (9, 9) should light cell (2, 1), got %v", c.r[12])
	}

	// 超出范围和透明线段被忽略
	c.StrokeSegment(0, 0, 100, 100, 1, color.NRGBA{R: 255, A: 255})
	c.StrokeSegment(0, 0, -1, 3, 1, color.NRGBA{R: 255, A: 255})
	c.StrokeSegment(0, 0, 1, 1, 1, color.NRGBA{R: 255})
	lit := 0
	for i := range c.r {
		if c.r[i] > 0 {
			lit++
		}
	}
	if lit != 1 {
		t.Errorf("lit cells = %d, want 1", lit)
	}

	c.decay(0.5)
	if c.r[12] != 0.5 {
		t.Errorf("decay(0.5) = %v, want 0.5", c.r[12])
	}
}

func TestTermCanvas_Cell(t *testing.T) {
	c := newTermCanvas(2, 1, 1)
	if ch, _ := c.cell(0, 0); ch != ' ' {
		t.Errorf("dark cell = %q, want space", ch)
	}

	c.StrokeSegment(0, 0, 1, 1, 2, color.NRGBA{G: 255, A: 255})
	ch, fg := c.cell(0, 0)
	if ch != '█' {
		t.Errorf("bright cell = %q, want full block", ch)
	}
	if r, g, b := fg.RGB(); r != 0 || g != 255 || b != 0 {
		t.Errorf("cell colour = (%d, %d, %d), want pure green", r, g, b)
	}
}

func TestPreview_ResizeReinitializes(t *testing.T) {
	screen := newTestScreen(t, 40, 12)

	cfg := vortex.DefaultConfig()
	cfg.ParticleCount = 50
	cfg.Seed = 3
	p := newPreview(screen, vortex.New(cfg, nil, nil), 0.8)

	if w, h := p.sim.Size(); w != 160 || h != 96 {
		t.Fatalf("simulation size = %vx%v, want 160x96", w, h)
	}

	for i := 0; i < 5; i++ {
		p.step()
	}
	if p.sim.TickCount() != 5 {
		t.Errorf("TickCount = %d, want 5", p.sim.TickCount())
	}

	if !p.handleEvent(tcell.NewEventResize(20, 6)) {
		t.Fatal("resize should not quit")
	}
	if w, h := p.sim.Size(); w != 80 || h != 48 {
		t.Errorf("simulation size after resize = %vx%v, want 80x48", w, h)
	}
	if cx, cy := p.sim.Center(); cx != 40 || cy != 24 {
		t.Errorf("center = (%v, %v), want (40, 24)", cx, cy)
	}
	if p.sim.TickCount() != 0 {
		t.Errorf("resize should reset the tick counter, got %d", p.sim.TickCount())
	}
	for i := 0; i < p.sim.Len(); i++ {
		if x := p.sim.Particle(i).X; x < 0 || x >= 80 {
			t.Fatalf("particle %d x = %v outside [0, 80)", i, x)
		}
	}
}

func TestPreview_QuitKeys(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	cfg := vortex.DefaultConfig()
	cfg.ParticleCount = 5
	p := newPreview(screen, vortex.New(cfg, nil, nil), 0.8)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.handleEvent(tt.ev); got != tt.want {
				t.Errorf("handleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}
