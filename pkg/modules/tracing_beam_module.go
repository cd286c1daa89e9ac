package modules

import (
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// beamDotRingWidth 圆点描边宽度
const beamDotRingWidth = 2.0

// TracingBeamModule 滚动追踪光束
//
// 职责：
//   - 在内容区左侧绘制一条竖直轨道
//   - 渐变光束的长度跟随页面滚动进度，每帧以弹簧方式平滑逼近
//   - 轨道顶部的圆点在开始滚动前为空心，滚动后填充
type TracingBeamModule struct {
	palette config.Palette

	// 轨道位置（x 为屏幕坐标，top 为内容坐标）
	x, top, length float64

	target   float64 // 滚动进度 [0, 1]
	progress float64 // 平滑后的光束进度 [0, 1]
	started  bool
}

// NewTracingBeamModule 创建追踪光束模块
func NewTracingBeamModule(palette config.Palette) *TracingBeamModule {
	return &TracingBeamModule{palette: palette}
}

// SetTrack 设置轨道位置和长度
func (m *TracingBeamModule) SetTrack(x, top, length float64) {
	m.x, m.top = x, top
	if length < 0 {
		length = 0
	}
	m.length = length
}

// ScrollProgress 根据滚动偏移和最大滚动距离计算进度 [0, 1]
func ScrollProgress(scrollY, maxScroll float64) float64 {
	if maxScroll <= 0 {
		return 0
	}
	return utils.Clamp01(scrollY / maxScroll)
}

// Update 更新目标进度并让光束平滑逼近
func (m *TracingBeamModule) Update(deltaTime, scrollY, maxScroll float64) {
	m.target = ScrollProgress(scrollY, maxScroll)
	m.started = scrollY > 0
	m.progress = utils.Clamp01(utils.Damp(m.progress, m.target, config.BeamSpringRate, deltaTime))
}

// Progress 返回平滑后的光束进度
func (m *TracingBeamModule) Progress() float64 { return m.progress }

// Target 返回当前滚动进度
func (m *TracingBeamModule) Target() float64 { return m.target }

// Started 报告页面是否已开始滚动
func (m *TracingBeamModule) Started() bool { return m.started }

// Draw 绘制轨道、光束和顶部圆点
func (m *TracingBeamModule) Draw(screen *ebiten.Image, scrollY float64) {
	if m.length <= 0 {
		return
	}
	x := float32(m.x)
	top := float32(m.top - scrollY)
	half := float32(config.BeamTrackWidth / 2)

	render.FillRect(screen, x-half, top, config.BeamTrackWidth, float32(m.length), m.palette.Border)

	if beam := float32(m.length * m.progress); beam > 0 {
		render.FillVerticalGradient(screen, x-half, top, config.BeamTrackWidth, beam,
			m.palette.BeamStart, m.palette.BeamEnd)
	}

	if m.started {
		render.FillCircle(screen, x, top, config.BeamDotRadius, m.palette.BeamStart)
	} else {
		render.FillCircle(screen, x, top, config.BeamDotRadius, m.palette.Panel)
		render.StrokeCircle(screen, x, top, config.BeamDotRadius, beamDotRingWidth, m.palette.Border)
	}
}
