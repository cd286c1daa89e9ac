package modules

import (
	"log"
	"math"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CardGridModule 画廊卡片网格
//
// 职责：
//   - 为每条画廊记录按顺序创建一张 CardModule
//   - 宽度 < 1024 时单列，否则两列，间距 80
//   - 绘制画廊标题，记录 "gallery" 锚点位置
//   - 计算内容总高度（供场景限制滚动范围）
type CardGridModule struct {
	entityManager *ecs.EntityManager
	palette       config.Palette

	heading     string
	headingFace *text.GoTextFace

	cards []*CardModule

	columns       int
	contentLeft   float64
	contentWidth  float64
	galleryTop    float64
	contentHeight float64
}

// NewCardGridModule 创建画廊网格
//
// 参数:
//   - em: EntityManager 实例
//   - rm: 资源管理器
//   - cfg: 页面内容配置（标题、卡片、徽章）
//   - palette: 配色
//   - opener: 卡片 "Open" 回调，nil 时使用系统对话框
func NewCardGridModule(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	cfg *config.PortfolioConfig,
	palette config.Palette,
	opener DialogOpener,
) *CardGridModule {
	m := &CardGridModule{
		entityManager: em,
		palette:       palette,
		heading:       cfg.Heading,
		headingFace:   rm.Face(game.FontBold, config.HeadingFontSize),
		cards:         make([]*CardModule, 0, len(cfg.Gallery)),
		columns:       1,
	}
	for _, card := range cfg.Gallery {
		m.cards = append(m.cards, NewCardModule(em, rm, card, cfg.BadgesFor(card), palette, opener))
	}

	if missing := rm.MissingImages(); len(missing) > 0 {
		log.Printf("[CardGridModule] %d gallery images replaced by placeholders", len(missing))
	}
	log.Printf("[CardGridModule] Initialized with %d cards", len(m.cards))
	return m
}

// Layout 按视口宽度排版所有卡片，返回内容总高度
//
// top 为画廊区域的内容 y 坐标（首屏背景区域的下方）。
func (m *CardGridModule) Layout(viewportWidth, top float64) float64 {
	m.columns = config.GridColumns(viewportWidth)
	m.contentWidth = math.Max(0, math.Min(config.ContentMaxWidth, viewportWidth)-2*config.ContentPaddingX)
	m.contentLeft = (viewportWidth - m.contentWidth) / 2

	y := top + config.ContentPaddingTop
	m.galleryTop = y
	if m.heading != "" {
		y += config.HeadingFontSize + config.HeadingMarginBottom
	}

	cols := float64(m.columns)
	cardWidth := math.Max(0, (m.contentWidth-(cols-1)*config.GridGap)/cols)

	for row := 0; row*m.columns < len(m.cards); row++ {
		rowHeight := 0.0
		for col := 0; col < m.columns; col++ {
			i := row*m.columns + col
			if i >= len(m.cards) {
				break
			}
			x := m.contentLeft + float64(col)*(cardWidth+config.GridGap)
			rowHeight = math.Max(rowHeight, m.cards[i].Layout(x, y, cardWidth))
		}
		y += rowHeight + config.GridGap
	}
	if len(m.cards) > 0 {
		y -= config.GridGap
	}

	m.contentHeight = y + config.ContentPaddingBottom
	return m.contentHeight
}

// Draw 绘制标题和可见卡片
func (m *CardGridModule) Draw(screen *ebiten.Image, scrollY float64) {
	if m.heading != "" {
		drawText(screen, m.heading, m.headingFace, m.contentLeft,
			m.galleryTop+config.HeadingFontSize/2-scrollY, text.AlignStart, m.palette.Text)
	}
	for _, card := range m.cards {
		card.Draw(screen, scrollY)
	}
}

// Columns 返回当前列数
func (m *CardGridModule) Columns() int { return m.columns }

// Cards 返回所有卡片（按配置顺序）
func (m *CardGridModule) Cards() []*CardModule { return m.cards }

// GalleryTop 返回 "gallery" 锚点的内容 y 坐标
func (m *CardGridModule) GalleryTop() float64 { return m.galleryTop }

// ContentHeight 返回内容总高度
func (m *CardGridModule) ContentHeight() float64 { return m.contentHeight }

// ContentLeft 返回内容区左边缘
func (m *CardGridModule) ContentLeft() float64 { return m.contentLeft }

// Cleanup 销毁所有卡片实体
func (m *CardGridModule) Cleanup() {
	for _, card := range m.cards {
		card.Cleanup()
	}
	m.entityManager.RemoveMarkedEntities()
	m.cards = nil
}
