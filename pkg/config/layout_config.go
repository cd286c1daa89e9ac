package config

// 布局配置常量
// 本文件定义了页面的布局参数，所有值为逻辑像素

// Window (窗口)
const (
	// DefaultWindowWidth 默认窗口宽度，不小于 BreakpointLG，默认显示两列
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 800

	// WindowTitle 窗口标题
	WindowTitle = "Portfolio"
)

// Navigation Bar (导航栏)
const (
	// NavBarHeight 导航栏高度，导航栏固定在顶部，内容从其下方开始
	NavBarHeight = 64.0

	// NavBarPaddingX 导航栏左右内边距
	NavBarPaddingX = 24.0

	// NavLinkGap 导航链接之间的间距
	NavLinkGap = 28.0

	// NavTitleFontSize 作者标题字号
	NavTitleFontSize = 22.0

	// NavLinkFontSize 导航链接字号
	NavLinkFontSize = 16.0
)

// Hero (首屏)
const (
	// HeroFontSize 首屏作者标题字号，首屏高度等于视口高度，背景漩涡在其中完整可见
	HeroFontSize = 56.0
)

// Content (内容区)
const (
	// BreakpointLG 两列布局断点：宽度 >= 1024 时两列，否则一列
	BreakpointLG = 1024.0

	// ContentMaxWidth 内容区最大宽度（居中）
	ContentMaxWidth = 1400.0

	// ContentPaddingX 内容区左右内边距，左侧留给追踪光束
	ContentPaddingX = 72.0

	// ContentPaddingTop 内容区顶部留白（导航栏下方）
	ContentPaddingTop = 48.0

	// ContentPaddingBottom 内容区底部留白
	ContentPaddingBottom = 120.0

	// HeadingFontSize 画廊标题字号
	HeadingFontSize = 36.0

	// HeadingMarginBottom 画廊标题与卡片网格之间的间距
	HeadingMarginBottom = 40.0

	// GridGap 卡片网格间距（gap-20 = 20 * 4px）
	GridGap = 80.0
)

// Card (卡片)
const (
	// CardImageMaxWidth 卡片图片最大宽度
	CardImageMaxWidth = 640.0

	// CardImageMaxHeight 卡片图片最大高度
	CardImageMaxHeight = 320.0

	// CardPadding 卡片内边距
	CardPadding = 24.0

	// CardCornerRadius 卡片与图片圆角半径
	CardCornerRadius = 16.0

	// CardTitleFontSize 卡片标题字号
	CardTitleFontSize = 24.0

	// CardBodyFontSize 卡片描述字号
	CardBodyFontSize = 16.0

	// CardBadgeFontSize 徽章字号
	CardBadgeFontSize = 12.0

	// CardSpacing 卡片内元素之间的垂直间距
	CardSpacing = 14.0

	// CardButtonWidth "Open" 按钮宽度
	CardButtonWidth = 88.0

	// CardButtonHeight "Open" 按钮高度
	CardButtonHeight = 34.0
)

// Tracing Beam (追踪光束)
const (
	// BeamOffsetX 光束轨道相对内容区左边缘的偏移（负值在左侧）
	BeamOffsetX = -40.0

	// BeamDotRadius 顶部圆点半径
	BeamDotRadius = 8.0

	// BeamTrackWidth 轨道线宽
	BeamTrackWidth = 2.0

	// BeamSpringRate 光束长度逼近滚动进度的速率（每秒）
	BeamSpringRate = 6.0
)

// Scrolling (滚动)
const (
	// ScrollToDuration 点击导航链接后滚动到锚点的动画时长（秒）
	ScrollToDuration = 0.6
)

// GridColumns 根据视口宽度返回卡片网格列数
func GridColumns(viewportWidth float64) int {
	if viewportWidth >= BreakpointLG {
		return 2
	}
	return 1
}
