package modules

import (
	"log"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// navBarBackgroundAlpha 导航栏半透明背景的不透明度（滚动后）
const navBarBackgroundAlpha = 0.8

// NavigationBarModule 顶部导航栏模块
//
// 职责：
//   - 固定在屏幕顶部，不随页面滚动
//   - 左侧显示作者标题（来自 PageContext）
//   - 右侧按配置顺序显示导航链接，每个链接是一个固定坐标的可点击实体
//   - 悬停链接时显示强调色和下划线
//   - 点击链接时通过 onNavigate 回调通知场景滚动到锚点
//   - 页面滚动后显示半透明背景和底部分隔线
type NavigationBarModule struct {
	entityManager *ecs.EntityManager
	pageContext   *game.PageContext
	palette       config.Palette

	titleFace *text.GoTextFace
	linkFace  *text.GoTextFace

	links []navLink

	width    float64
	scrolled bool

	onNavigate func(anchor string)
}

// navLink 一个导航链接及其可点击实体
type navLink struct {
	label  string
	anchor string
	width  float64
	entity ecs.EntityID
}

// NewNavigationBarModule 创建导航栏模块
//
// 参数:
//   - em: EntityManager 实例（链接实体注册到这里，由 ButtonSystem 处理交互）
//   - ctx: 页面上下文（提供作者标题）
//   - rm: 资源管理器（提供字体）
//   - links: 导航链接配置
//   - palette: 配色
//   - onNavigate: 链接点击回调，参数为锚点名
func NewNavigationBarModule(
	em *ecs.EntityManager,
	ctx *game.PageContext,
	rm *game.ResourceManager,
	links []config.NavLink,
	palette config.Palette,
	onNavigate func(anchor string),
) *NavigationBarModule {
	m := &NavigationBarModule{
		entityManager: em,
		pageContext:   ctx,
		palette:       palette,
		titleFace:     rm.Face(game.FontBold, config.NavTitleFontSize),
		linkFace:      rm.Face(game.FontRegular, config.NavLinkFontSize),
		onNavigate:    onNavigate,
		links:         make([]navLink, 0, len(links)),
	}

	for _, l := range links {
		link := navLink{
			label:  l.Label,
			anchor: l.Anchor,
			width:  measureText(l.Label, m.linkFace, config.NavLinkFontSize),
			entity: em.CreateEntity(),
		}
		anchor := l.Anchor
		ecs.AddComponent(em, link.entity, &components.ClickableComponent{
			Height:    config.NavBarHeight,
			Fixed:     true,
			IsEnabled: true,
			OnClick: func() {
				log.Printf("[NavigationBarModule] Navigate to '%s'", anchor)
				if m.onNavigate != nil {
					m.onNavigate(anchor)
				}
			},
		})
		m.links = append(m.links, link)
	}

	log.Printf("[NavigationBarModule] Initialized with %d links", len(m.links))
	return m
}

// Layout 根据视口宽度把链接右对齐排列
func (m *NavigationBarModule) Layout(viewportWidth float64) {
	m.width = viewportWidth

	x := viewportWidth - config.NavBarPaddingX
	for i := len(m.links) - 1; i >= 0; i-- {
		link := m.links[i]
		x -= link.width
		if c, ok := ecs.GetComponent[*components.ClickableComponent](m.entityManager, link.entity); ok {
			c.X = x
			c.Y = 0
			c.Width = link.width
		}
		x -= config.NavLinkGap
	}
}

// SetScrolled 设置页面是否已滚动离开顶部
func (m *NavigationBarModule) SetScrolled(scrolled bool) {
	m.scrolled = scrolled
}

// Height 返回导航栏高度
func (m *NavigationBarModule) Height() float64 {
	return config.NavBarHeight
}

// LinkCount 返回链接数量
func (m *NavigationBarModule) LinkCount() int {
	return len(m.links)
}

// LinkEntity 返回第 i 个链接的实体 ID
func (m *NavigationBarModule) LinkEntity(i int) ecs.EntityID {
	return m.links[i].entity
}

// Title 导航栏左侧显示的标题
func (m *NavigationBarModule) Title() string {
	return m.pageContext.Title()
}

// Draw 绘制导航栏（在所有内容之后绘制，覆盖在最上层）
func (m *NavigationBarModule) Draw(screen *ebiten.Image) {
	w := float32(m.width)
	h := float32(config.NavBarHeight)
	if m.scrolled {
		render.FillRect(screen, 0, 0, w, h, utils.WithAlpha(m.palette.Panel, navBarBackgroundAlpha))
		render.FillRect(screen, 0, h-1, w, 1, m.palette.Border)
	}

	centerY := config.NavBarHeight / 2
	drawText(screen, m.Title(), m.titleFace, config.NavBarPaddingX, centerY, text.AlignStart, m.palette.Text)

	for _, link := range m.links {
		c, ok := ecs.GetComponent[*components.ClickableComponent](m.entityManager, link.entity)
		if !ok {
			continue
		}
		clr := m.palette.Muted
		if c.State == components.UIHovered || c.State == components.UIClicked {
			clr = m.palette.Accent
			underlineY := float32(centerY + config.NavLinkFontSize*0.75)
			render.FillRect(screen, float32(c.X), underlineY, float32(c.Width), 2, m.palette.Accent)
		}
		drawText(screen, link.label, m.linkFace, c.X, centerY, text.AlignStart, clr)
	}
}

// Cleanup 销毁链接实体
func (m *NavigationBarModule) Cleanup() {
	for _, link := range m.links {
		m.entityManager.DestroyEntity(link.entity)
	}
	m.entityManager.RemoveMarkedEntities()
	m.links = nil
}
