package modules

import (
	"errors"
	"log"
	"math"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
)

// 卡片绘制参数
const (
	cardPanelAlpha       = 0.55 // 玻璃面板不透明度
	cardBorderWidth      = 1.0
	cardBadgePaddingX    = 10.0
	cardBadgeHeight      = 24.0
	cardBadgeGap         = 8.0
	cardButtonRadius     = 8.0
	cardBodyLineSpacing  = 1.5
	cardButtonLabel      = "Open"
	cardButtonHoverAlpha = 0.15
)

// DialogOpener 显示卡片详情的回调
type DialogOpener func(title, description string)

// ZenityDialogOpener 使用系统原生对话框显示卡片详情
//
// 对话框在独立的 goroutine 中阻塞等待用户关闭，不访问页面状态。
func ZenityDialogOpener(title, description string) {
	go func() {
		err := zenity.Info(description, zenity.Title(title), zenity.InfoIcon)
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("[CardModule] Warning: failed to show dialog for '%s': %v", title, err)
		}
	}()
}

// CardModule 画廊卡片
//
// 职责：
//   - 玻璃质感面板（半透明底色 + 细边框 + 圆角）
//   - 图片按比例缩放进最大 640×320 的区域，圆角裁切
//   - 标题、自动换行的描述、描边徽章
//   - 右对齐的描边 "Open" 按钮：随页面滚动的可点击实体，点击后打开详情对话框
//
// 坐标：Layout 传入的是内容坐标，Draw 时减去滚动偏移。
type CardModule struct {
	entityManager *ecs.EntityManager
	palette       config.Palette

	card   config.CardConfig
	badges []config.BadgeConfig
	image  *ebiten.Image

	titleFace  *text.GoTextFace
	bodyFace   *text.GoTextFace
	badgeFace  *text.GoTextFace
	buttonFace *text.GoTextFace

	buttonEntity ecs.EntityID
	openDialog   DialogOpener

	// 布局结果（内容坐标）
	x, y, width, height float64
	imageW, imageH      float64
	lines               []string
}

// NewCardModule 创建一张卡片
//
// 参数:
//   - em: EntityManager 实例（"Open" 按钮注册到这里）
//   - rm: 资源管理器（图片和字体；图片缺失时使用占位图）
//   - card: 卡片内容
//   - badges: 要显示的徽章
//   - palette: 配色
//   - opener: 点击 "Open" 时调用，nil 时使用 ZenityDialogOpener
func NewCardModule(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	card config.CardConfig,
	badges []config.BadgeConfig,
	palette config.Palette,
	opener DialogOpener,
) *CardModule {
	if opener == nil {
		opener = ZenityDialogOpener
	}
	m := &CardModule{
		entityManager: em,
		palette:       palette,
		card:          card,
		badges:        badges,
		image:         rm.LoadImageOrPlaceholder(card.Image),
		titleFace:     rm.Face(game.FontBold, config.CardTitleFontSize),
		bodyFace:      rm.Face(game.FontRegular, config.CardBodyFontSize),
		badgeFace:     rm.Face(game.FontRegular, config.CardBadgeFontSize),
		buttonFace:    rm.Face(game.FontBold, config.CardBodyFontSize),
		openDialog:    opener,
		buttonEntity:  em.CreateEntity(),
	}

	ecs.AddComponent(em, m.buttonEntity, &components.ClickableComponent{
		Width:     config.CardButtonWidth,
		Height:    config.CardButtonHeight,
		IsEnabled: true,
		OnClick: func() {
			log.Printf("[CardModule] Open '%s'", m.card.Title)
			m.openDialog(m.card.Title, m.card.Description)
		},
	})
	return m
}

// FitImage 按比例把 srcW×srcH 缩放进 maxW×maxH
func FitImage(srcW, srcH, maxW, maxH float64) (w, h float64) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := math.Min(maxW/srcW, maxH/srcH)
	return srcW * scale, srcH * scale
}

// Layout 在内容坐标 (x, y) 处按给定宽度排版，返回卡片高度
func (m *CardModule) Layout(x, y, width float64) float64 {
	m.x, m.y, m.width = x, y, width
	inner := math.Max(0, width-2*config.CardPadding)

	cursor := y + config.CardPadding

	if m.image != nil {
		b := m.image.Bounds()
		m.imageW, m.imageH = FitImage(float64(b.Dx()), float64(b.Dy()),
			math.Min(inner, config.CardImageMaxWidth), config.CardImageMaxHeight)
		cursor += m.imageH + config.CardSpacing
	}

	cursor += config.CardTitleFontSize + config.CardSpacing

	m.lines = utils.WrapText(m.card.Description, m.bodyFace, inner)
	cursor += float64(len(m.lines))*m.bodyLineHeight() + config.CardSpacing

	if len(m.badges) > 0 {
		cursor += m.badgeRowsHeight(inner) + config.CardSpacing
	}

	if c, ok := ecs.GetComponent[*components.ClickableComponent](m.entityManager, m.buttonEntity); ok {
		c.X = x + width - config.CardPadding - config.CardButtonWidth
		c.Y = cursor
	}
	cursor += config.CardButtonHeight + config.CardPadding

	m.height = cursor - y
	return m.height
}

func (m *CardModule) bodyLineHeight() float64 {
	return config.CardBodyFontSize * cardBodyLineSpacing
}

func (m *CardModule) badgeWidth(label string) float64 {
	return measureText(label, m.badgeFace, config.CardBadgeFontSize) + 2*cardBadgePaddingX
}

// badgeRowsHeight 返回徽章换行排列后的总高度
func (m *CardModule) badgeRowsHeight(inner float64) float64 {
	rows := 1
	x := 0.0
	for _, b := range m.badges {
		w := m.badgeWidth(b.Label)
		if x > 0 && x+w > inner {
			rows++
			x = 0
		}
		x += w + cardBadgeGap
	}
	return float64(rows)*cardBadgeHeight + float64(rows-1)*cardBadgeGap
}

// Draw 绘制卡片，scrollY 为页面滚动偏移
func (m *CardModule) Draw(screen *ebiten.Image, scrollY float64) {
	if !utils.IsVisible(m.y, m.height, scrollY, float64(screen.Bounds().Dy())) {
		return
	}

	left, top := utils.ContentToScreen(m.x, m.y, scrollY)
	inner := math.Max(0, m.width-2*config.CardPadding)
	render.FillRoundedRect(screen, float32(left), float32(top), float32(m.width), float32(m.height),
		config.CardCornerRadius, utils.WithAlpha(m.palette.Panel, cardPanelAlpha))
	render.StrokeRoundedRect(screen, float32(left), float32(top), float32(m.width), float32(m.height),
		config.CardCornerRadius, cardBorderWidth, m.palette.Border)

	x := left + config.CardPadding
	cursor := top + config.CardPadding

	if m.image != nil && m.imageW > 0 {
		render.DrawImageRounded(screen, m.image, float32(x), float32(cursor),
			float32(m.imageW), float32(m.imageH), config.CardCornerRadius, 1)
		cursor += m.imageH + config.CardSpacing
	}

	drawText(screen, m.card.Title, m.titleFace, x, cursor+config.CardTitleFontSize/2, text.AlignStart, m.palette.Text)
	cursor += config.CardTitleFontSize + config.CardSpacing

	for _, line := range m.lines {
		drawText(screen, line, m.bodyFace, x, cursor+m.bodyLineHeight()/2, text.AlignStart, m.palette.Muted)
		cursor += m.bodyLineHeight()
	}
	cursor += config.CardSpacing

	if len(m.badges) > 0 {
		m.drawBadges(screen, x, cursor, inner)
		cursor += m.badgeRowsHeight(inner) + config.CardSpacing
	}

	m.drawButton(screen, scrollY)
}

func (m *CardModule) drawBadges(screen *ebiten.Image, left, top, inner float64) {
	x, y := left, top
	for _, b := range m.badges {
		w := m.badgeWidth(b.Label)
		if x > left && x-left+w > inner {
			x = left
			y += cardBadgeHeight + cardBadgeGap
		}
		clr := m.palette.BadgeColor(b.Variant)
		render.StrokeRoundedRect(screen, float32(x), float32(y), float32(w), cardBadgeHeight,
			cardBadgeHeight/2, cardBorderWidth, clr)
		drawText(screen, b.Label, m.badgeFace, x+w/2, y+cardBadgeHeight/2, text.AlignCenter, clr)
		x += w + cardBadgeGap
	}
}

func (m *CardModule) drawButton(screen *ebiten.Image, scrollY float64) {
	c, ok := ecs.GetComponent[*components.ClickableComponent](m.entityManager, m.buttonEntity)
	if !ok {
		return
	}
	sx, sy := utils.ContentToScreen(c.X, c.Y, scrollY)
	x, y := float32(sx), float32(sy)
	w, h := float32(c.Width), float32(c.Height)

	clr := m.palette.Text
	switch c.State {
	case components.UIHovered:
		render.FillRoundedRect(screen, x, y, w, h, cardButtonRadius, utils.WithAlpha(m.palette.Accent, cardButtonHoverAlpha))
		clr = m.palette.Accent
	case components.UIClicked:
		render.FillRoundedRect(screen, x, y, w, h, cardButtonRadius, utils.WithAlpha(m.palette.Accent, 2*cardButtonHoverAlpha))
		clr = m.palette.Accent
	}
	render.StrokeRoundedRect(screen, x, y, w, h, cardButtonRadius, cardBorderWidth, clr)
	drawText(screen, cardButtonLabel, m.buttonFace, float64(x+w/2), float64(y+h/2), text.AlignCenter, clr)
}

// Title 返回卡片标题
func (m *CardModule) Title() string { return m.card.Title }

// Description 返回卡片描述
func (m *CardModule) Description() string { return m.card.Description }

// DescriptionLines 返回换行后的描述（Layout 之后有效）
func (m *CardModule) DescriptionLines() []string { return m.lines }

// Badges 返回卡片显示的徽章
func (m *CardModule) Badges() []config.BadgeConfig { return m.badges }

// Bounds 返回卡片在内容坐标中的位置和尺寸
func (m *CardModule) Bounds() (x, y, w, h float64) { return m.x, m.y, m.width, m.height }

// ImageSize 返回图片绘制尺寸
func (m *CardModule) ImageSize() (w, h float64) { return m.imageW, m.imageH }

// ButtonEntity 返回 "Open" 按钮实体
func (m *CardModule) ButtonEntity() ecs.EntityID { return m.buttonEntity }

// Cleanup 销毁按钮实体
func (m *CardModule) Cleanup() {
	m.entityManager.DestroyEntity(m.buttonEntity)
}
