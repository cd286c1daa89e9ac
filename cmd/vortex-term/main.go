// Package main previews the particle vortex backdrop in a terminal.
//
// Usage:
//
//	go run ./cmd/vortex-term [flags]
//
// Flags:
//
//	--seed <n>         Random seed (0 = time based)
//	--particles <n>    Particle count (default: 300)
//	--decay <f>        Per-frame trail decay in (0, 1) (default: 0.85)
//	--fps <n>          Frames per second (default: 30)
//
// Controls:
//
//	Q/Escape/Ctrl-C  - Quit
//	R                - Reinitialize all particles
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/portfolio/internal/vortex"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/gdamore/tcell/v2"
)

var (
	seedFlag      = flag.Int64("seed", 0, "Random seed (0 = time based)")
	particlesFlag = flag.Int("particles", 300, "Particle count")
	decayFlag     = flag.Float64("decay", 0.85, "Per-frame trail decay")
	fpsFlag       = flag.Int("fps", 30, "Frames per second")
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vortex-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *decayFlag <= 0 || *decayFlag >= 1 || *fpsFlag <= 0 {
		return fmt.Errorf("decay must be in (0, 1) and fps positive")
	}

	cfg := config.DefaultVortexConfig()
	cfg.Seed = *seedFlag
	cfg.ParticleCount = *particlesFlag
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := newPreview(screen, vortex.New(cfg.SimulationConfig(), nil, nil), *decayFlag)
	p.run(ctx, time.Second/time.Duration(*fpsFlag))
	return nil
}

// preview 终端预览主循环
//
// 事件 goroutine 只负责把 tcell 事件转发到通道，
// 模拟和字符格缓冲区只由 run 所在的 goroutine 读写。
type preview struct {
	screen tcell.Screen
	sim    *vortex.Simulation
	canvas *termCanvas
	decay  float64
}

func newPreview(screen tcell.Screen, sim *vortex.Simulation, decay float64) *preview {
	cols, rows := screen.Size()
	p := &preview{
		screen: screen,
		sim:    sim,
		canvas: newTermCanvas(cols, rows, 0.5),
		decay:  decay,
	}
	p.reset()
	return p
}

// reset 按当前字符格尺寸重置模拟
func (p *preview) reset() {
	w, h := p.canvas.pixelSize()
	p.sim.Resize(w, h)
	p.sim.InitAll()
}

// run 按帧率推进模拟，直到 ctx 取消或用户退出
func (p *preview) run(ctx context.Context, frame time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !p.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			p.step()
			p.screen.Show()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (p *preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			p.reset()
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		p.canvas.resize(cols, rows)
		p.reset()
		p.screen.Sync()
	}
	return true
}

// step 推进一帧并写入屏幕缓冲区（不调用 Show）
func (p *preview) step() {
	p.canvas.decay(p.decay)
	p.sim.Tick(p.canvas)
	p.canvas.flush(p.screen)
}
