package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/modules"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PortfolioScene 作品集页面
//
// 职责：
//   - 组合背景漩涡、首屏标题、追踪光束、卡片网格和顶部导航栏
//   - 管理页面滚动（滚轮、触摸拖动、键盘），滚动范围限制在内容高度内
//   - 点击导航链接时以缓入缓出动画滚动到锚点
//   - 通过 ButtonSystem 统一处理导航链接和卡片按钮的指针交互
//   - 视口尺寸变化时重新排版并重置背景粒子
//
// 绘制顺序（从下到上）：背景漩涡 → 首屏标题 → 光束 → 卡片 → 导航栏
type PortfolioScene struct {
	pageContext     *game.PageContext
	resourceManager *game.ResourceManager
	palette         config.Palette

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem

	vortex *modules.VortexModule
	nav    *modules.NavigationBarModule
	grid   *modules.CardGridModule
	beam   *modules.TracingBeamModule

	heroFace *text.GoTextFace

	// 滚动状态（内容坐标 = 屏幕坐标 + scrollY）
	scrollY       float64
	contentHeight float64

	// 锚点滚动动画
	scrollAnim scrollAnimation

	hovered bool
}

// scrollAnimation 从 from 到 to 的缓入缓出滚动
type scrollAnimation struct {
	active   bool
	from, to float64
	elapsed  float64
}

// NewPortfolioScene 创建作品集页面
//
// 参数:
//   - ctx: 页面上下文（作者、视口尺寸）
//   - rm: 资源管理器
//   - portfolio: 页面内容配置
//   - vortexCfg: 背景粒子配置
//   - opener: 卡片 "Open" 回调，nil 时使用系统对话框
//
// 返回:
//   - *PortfolioScene: 新创建的场景（背景动画已启动，等待第一次 Resize）
//   - error: 配置无效时返回错误
func NewPortfolioScene(
	ctx *game.PageContext,
	rm *game.ResourceManager,
	portfolio *config.PortfolioConfig,
	vortexCfg *config.VortexConfig,
	opener modules.DialogOpener,
) (*PortfolioScene, error) {
	palette, err := portfolio.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	vortex, err := modules.NewVortexModule(vortexCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vortex module: %w", err)
	}

	em := ecs.NewEntityManager()
	s := &PortfolioScene{
		pageContext:     ctx,
		resourceManager: rm,
		palette:         palette,
		entityManager:   em,
		buttonSystem:    systems.NewButtonSystem(em, config.NavBarHeight),
		vortex:          vortex,
		beam:            modules.NewTracingBeamModule(palette),
		heroFace:        rm.Face(game.FontBold, config.HeroFontSize),
	}
	s.grid = modules.NewCardGridModule(em, rm, portfolio, palette, opener)
	s.nav = modules.NewNavigationBarModule(em, ctx, rm, portfolio.Nav, palette, s.ScrollTo)

	s.vortex.Start()
	log.Printf("[PortfolioScene] Created (%d cards, %d nav links)", len(s.grid.Cards()), s.nav.LinkCount())
	return s, nil
}

// Resize 重新排版页面并重置背景粒子
func (s *PortfolioScene) Resize(width, height int) {
	s.pageContext.SetViewport(width, height)
	s.vortex.Resize(width, height)

	w := float64(width)
	s.nav.Layout(w)
	s.contentHeight = s.grid.Layout(w, float64(height))

	trackTop := s.grid.GalleryTop()
	trackLength := s.contentHeight - config.ContentPaddingBottom - trackTop
	s.beam.SetTrack(s.grid.ContentLeft()+config.BeamOffsetX, trackTop, trackLength)

	s.scrollY = s.clampScroll(s.scrollY)
	if s.scrollAnim.active {
		s.scrollAnim.to = s.clampScroll(s.scrollAnim.to)
	}
}

// MaxScroll 返回最大滚动距离
func (s *PortfolioScene) MaxScroll() float64 {
	return math.Max(0, s.contentHeight-float64(s.pageContext.Viewport().Height))
}

func (s *PortfolioScene) clampScroll(y float64) float64 {
	return math.Max(0, math.Min(y, s.MaxScroll()))
}

// ScrollY 返回当前滚动偏移
func (s *PortfolioScene) ScrollY() float64 {
	return s.scrollY
}

// AnchorOffset 返回锚点对应的滚动偏移
func (s *PortfolioScene) AnchorOffset(anchor string) float64 {
	switch anchor {
	case config.AnchorGallery:
		return s.clampScroll(s.grid.GalleryTop() - config.NavBarHeight)
	default:
		return 0
	}
}

// ScrollTo 以动画滚动到锚点
func (s *PortfolioScene) ScrollTo(anchor string) {
	target := s.AnchorOffset(anchor)
	if target == s.scrollY {
		s.scrollAnim.active = false
		return
	}
	s.scrollAnim = scrollAnimation{active: true, from: s.scrollY, to: target}
}

// Update 处理输入并推进所有模块
func (s *PortfolioScene) Update(deltaTime float64) {
	input := utils.GetInputState(float64(s.pageContext.Viewport().Height))
	s.update(input, deltaTime)

	if s.hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (s *PortfolioScene) update(input utils.InputState, deltaTime float64) {
	// 用户手动滚动会打断锚点动画
	if input.ScrollDelta != 0 {
		s.scrollAnim.active = false
		s.scrollY = s.clampScroll(s.scrollY + input.ScrollDelta)
	}
	s.stepScrollAnimation(deltaTime)

	s.hovered = s.buttonSystem.Update(input, s.scrollY)

	s.nav.SetScrolled(s.scrollY > 0)
	s.beam.Update(deltaTime, s.scrollY, s.MaxScroll())
	s.vortex.Update(deltaTime)
}

func (s *PortfolioScene) stepScrollAnimation(deltaTime float64) {
	if !s.scrollAnim.active {
		return
	}
	s.scrollAnim.elapsed += deltaTime
	t := s.scrollAnim.elapsed / config.ScrollToDuration
	if t >= 1 {
		s.scrollY = s.clampScroll(s.scrollAnim.to)
		s.scrollAnim.active = false
		return
	}
	s.scrollY = s.clampScroll(utils.Lerp(s.scrollAnim.from, s.scrollAnim.to, utils.EaseInOutCubic(t)))
}

// Draw 按层次绘制页面
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.vortex.Draw(screen)

	vp := s.pageContext.Viewport()
	if s.heroFace != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(vp.Width)/2, float64(vp.Height)/2-s.scrollY)
		op.ColorScale.ScaleWithColor(s.palette.Text)
		text.Draw(screen, s.HeroText(), s.heroFace, op)
	}

	s.beam.Draw(screen, s.scrollY)
	s.grid.Draw(screen, s.scrollY)
	s.nav.Draw(screen)
}

// HeroText 首屏居中显示的作者名
func (s *PortfolioScene) HeroText() string {
	return s.pageContext.DisplayName()
}

// Dispose 停止背景动画并释放页面实体
func (s *PortfolioScene) Dispose() {
	s.vortex.Cleanup()
	s.grid.Cleanup()
	s.nav.Cleanup()
	if n := s.entityManager.EntityCount(); n > 0 {
		log.Printf("[PortfolioScene] Warning: %d entities left after dispose", n)
	}
	log.Printf("[PortfolioScene] Disposed")
}

// Vortex 返回背景动画模块
func (s *PortfolioScene) Vortex() *modules.VortexModule { return s.vortex }

// Grid 返回卡片网格模块
func (s *PortfolioScene) Grid() *modules.CardGridModule { return s.grid }

// Beam 返回追踪光束模块
func (s *PortfolioScene) Beam() *modules.TracingBeamModule { return s.beam }

// Nav 返回导航栏模块
func (s *PortfolioScene) Nav() *modules.NavigationBarModule { return s.nav }
