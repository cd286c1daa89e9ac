package modules

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/decker502/portfolio/internal/vortex"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// VortexModule 背景粒子漩涡动画驱动
//
// 职责：
//   - 持有粒子模拟（vortex.Simulation）和合成器（render.Compositor）
//   - 每个 Update 推进一帧模拟并渲染到离屏图层（与显示刷新同步）
//   - Draw 将图层叠加到屏幕（最终合成）
//   - 视口尺寸变化时重建图层、重新居中出生点并重置全部粒子
//   - 启动后 FadeInSeconds 内背景透明度从 0 缓动到 1
//
// 生命周期：
//   - Start() 之后 Update/Draw/Resize 才会访问粒子缓冲区
//   - Stop() 之后它们全部直接返回，停止前排队的帧不会再触碰缓冲区
//   - 停止期间的 Resize 只记录尺寸，下次 Start 时应用
type VortexModule struct {
	sim        *vortex.Simulation
	compositor *render.Compositor

	running atomic.Bool

	fadeInSeconds float64
	elapsed       float64

	// 最近一次请求的视口尺寸，以及是否尚未应用到模拟
	width, height int
	sizeDirty     bool
}

// NewVortexModule 创建背景动画模块
//
// 参数:
//   - cfg: 背景粒子配置（nil 时使用默认配置）
//
// 返回:
//   - *VortexModule: 新创建的模块实例（未启动）
//   - error: 配置无效时返回错误
func NewVortexModule(cfg *config.VortexConfig) (*VortexModule, error) {
	if cfg == nil {
		cfg = config.DefaultVortexConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vortex config: %w", err)
	}

	background, err := utils.ParseHexColor(cfg.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("invalid vortex background: %w", err)
	}

	passes := make([]render.GlowPass, 0, len(cfg.Glow))
	for _, p := range cfg.Glow {
		passes = append(passes, render.GlowPass{Blur: p.Blur, Brightness: p.Brightness})
	}

	sim := vortex.New(cfg.SimulationConfig(), nil, nil)
	log.Printf("[VortexModule] %d particles, seed %d, %d glow passes",
		cfg.ParticleCount, sim.Seed(), len(passes))

	return &VortexModule{
		sim:           sim,
		compositor:    render.NewCompositor(background, passes),
		fadeInSeconds: cfg.FadeInSeconds,
	}, nil
}

// Start 启动动画。重复调用无副作用。
func (m *VortexModule) Start() {
	if m.running.Swap(true) {
		return
	}
	m.elapsed = 0
	m.applySize()
}

// Stop 停止动画。之后的 Update/Draw 不再访问缓冲区。
func (m *VortexModule) Stop() {
	m.running.Store(false)
}

// IsRunning 返回动画是否在运行
func (m *VortexModule) IsRunning() bool {
	return m.running.Load()
}

// Resize 同步调整图层尺寸，出生中心移到 (w/2, h/2) 并重置全部粒子
func (m *VortexModule) Resize(width, height int) {
	if width == m.width && height == m.height && !m.sizeDirty {
		return
	}
	m.width, m.height = width, height
	m.sizeDirty = true
	if m.running.Load() {
		m.applySize()
	}
}

func (m *VortexModule) applySize() {
	if !m.sizeDirty {
		return
	}
	m.sizeDirty = false

	m.compositor.Resize(m.width, m.height)
	m.sim.Resize(m.width, m.height)
	m.sim.InitAll()
	log.Printf("[VortexModule] Resize: %dx%d", m.width, m.height)
}

// Update 推进一帧模拟并渲染到离屏图层
func (m *VortexModule) Update(deltaTime float64) {
	if !m.running.Load() {
		return
	}
	m.elapsed += deltaTime
	m.compositor.Render(m.sim)
}

// Draw 将离屏图层按当前淡入透明度叠加到屏幕
func (m *VortexModule) Draw(screen *ebiten.Image) {
	if !m.running.Load() {
		return
	}
	m.compositor.DrawTo(screen, m.Opacity())
}

// Opacity 返回背景淡入透明度 [0, 1]
func (m *VortexModule) Opacity() float64 {
	if m.fadeInSeconds <= 0 {
		return 1
	}
	return utils.EaseOutCubic(m.elapsed / m.fadeInSeconds)
}

// Simulation 返回底层模拟（只读用途）
func (m *VortexModule) Simulation() *vortex.Simulation {
	return m.sim
}

// Segments 返回上一帧绘制的线段数量
func (m *VortexModule) Segments() int {
	return m.compositor.Segments()
}

// Cleanup 停止动画并释放图层
func (m *VortexModule) Cleanup() {
	m.Stop()
	m.compositor.Dispose()
}
