package modules

import (
	"math"
	"testing"

	"github.com/decker502/portfolio/pkg/config"
)

func newTestVortexModule(t *testing.T) *VortexModule {
	t.Helper()
	cfg := config.DefaultVortexConfig()
	cfg.ParticleCount = 50
	cfg.Seed = 99
	cfg.Glow = nil
	m, err := NewVortexModule(cfg)
	if err != nil {
		t.Fatalf("NewVortexModule() error = %v", err)
	}
	return m
}

func TestNewVortexModule_InvalidConfig(t *testing.T) {
	cfg := config.DefaultVortexConfig()
	cfg.ParticleCount = 0
	if _, err := NewVortexModule(cfg); err == nil {
		t.Error("Expected error for zero particles")
	}
}

func TestNewVortexModule_DefaultConfig(t *testing.T) {
	m, err := NewVortexModule(nil)
	if err != nil {
		t.Fatalf("NewVortexModule(nil) error = %v", err)
	}
	if m.Simulation().Config().ParticleCount != 700 {
		t.Errorf("Expected default 700 particles, got %d", m.Simulation().Config().ParticleCount)
	}
}

// TestVortexModule_Lifecycle 测试启动/停止对缓冲区访问的控制
func TestVortexModule_Lifecycle(t *testing.T) {
	m := newTestVortexModule(t)

	if m.IsRunning() {
		t.Error("Module should not run before Start()")
	}

	// 停止期间的 Resize 只记录尺寸
	m.Resize(800, 600)
	if m.Simulation().Len() != 0 {
		t.Errorf("Buffer should not be initialized before Start(), got %d", m.Simulation().Len())
	}

	m.Start()
	if !m.IsRunning() {
		t.Fatal("Module should run after Start()")
	}
	if m.Simulation().Len() != 50 {
		t.Errorf("Start() should apply the pending size, got %d particles", m.Simulation().Len())
	}
	cx, cy := m.Simulation().Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Center = (%v, %v), want (400, 300)", cx, cy)
	}

	m.Stop()
	before := m.Simulation().TickCount()
	m.Update(1.0 / 60.0)
	if m.Simulation().TickCount() != before {
		t.Error("Update after Stop() must not tick the simulation")
	}
}

// TestVortexModule_ResizeWhileRunning 测试运行中 Resize 同步重置粒子
func TestVortexModule_ResizeWhileRunning(t *testing.T) {
	m := newTestVortexModule(t)
	m.Start()
	m.Resize(320, 200)

	cx, cy := m.Simulation().Center()
	if cx != 160 || cy != 100 {
		t.Errorf("Center = (%v, %v), want (160, 100)", cx, cy)
	}
	if m.Simulation().TickCount() != 0 {
		t.Errorf("Resize should reset the tick counter, got %d", m.Simulation().TickCount())
	}
	for i := 0; i < m.Simulation().Len(); i++ {
		p := m.Simulation().Particle(i)
		if p.X < 0 || p.X >= 320 || p.Life != 0 {
			t.Fatalf("particle %d not reinitialized: %+v", i, p)
		}
	}
}

// TestVortexModule_Opacity 测试淡入曲线
func TestVortexModule_Opacity(t *testing.T) {
	m := newTestVortexModule(t)
	m.Start()

	if m.Opacity() != 0 {
		t.Errorf("Opacity at start = %v, want 0", m.Opacity())
	}

	m.elapsed = 0.5
	if got := m.Opacity(); math.Abs(got-0.875) > 1e-9 {
		t.Errorf("Opacity at 0.5s = %v, want 0.875", got)
	}

	m.elapsed = 2
	if m.Opacity() != 1 {
		t.Errorf("Opacity after fade = %v, want 1", m.Opacity())
	}

	m.fadeInSeconds = 0
	m.elapsed = 0
	if m.Opacity() != 1 {
		t.Errorf("Opacity without fade = %v, want 1", m.Opacity())
	}
}

// TestVortexModule_UpdateWithoutSurface 测试没有图层时跳过帧
func TestVortexModule_UpdateWithoutSurface(t *testing.T) {
	m := newTestVortexModule(t)
	m.Start()
	m.Update(1.0 / 60.0)
	if m.Simulation().TickCount() != 0 {
		t.Errorf("Update without a surface should skip the frame, got tick %d", m.Simulation().TickCount())
	}
	if m.elapsed == 0 {
		t.Error("Fade-in clock should advance even while no surface exists")
	}
}
