package systems

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理可点击实体的指针悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 IsEnabled 决定是否响应交互
//   - 对随页面滚动的实体换算滚动偏移
//
// 注意：光标形状由调用者（如 PortfolioScene）根据 Update 的返回值统一管理
type ButtonSystem struct {
	entityManager *ecs.EntityManager

	// overlayHeight 屏幕顶部被固定导航栏覆盖的高度，
	// 指针在此区域内时滚动内容不响应交互
	overlayHeight float64
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, overlayHeight float64) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		overlayHeight: overlayHeight,
	}
}

// Update 更新按钮交互状态
//
// 参数:
//   - input: 本帧指针输入
//   - scrollY: 页面滚动偏移（内容坐标 = 屏幕坐标 + scrollY）
//
// 返回:
//   - bool: 指针是否悬停在任一可用按钮上
func (s *ButtonSystem) Update(input utils.InputState, scrollY float64) bool {
	px, py := float64(input.X), float64(input.Y)
	underOverlay := py < s.overlayHeight
	anyHovered := false

	for _, entityID := range ecs.GetEntitiesWith[*components.ClickableComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.IsEnabled {
			button.State = components.UIDisabled
			continue
		}

		isHovered := false
		if button.Fixed {
			isHovered = utils.PointInRect(px, py, button.X, button.Y, button.Width, button.Height)
		} else if !underOverlay {
			cx, cy := utils.ScreenToContent(px, py, scrollY)
			isHovered = utils.PointInRect(cx, cy, button.X, button.Y, button.Width, button.Height)
		}

		if !isHovered {
			button.State = components.UINormal
			continue
		}

		anyHovered = true
		switch {
		case input.JustReleased:
			// 释放瞬间触发回调，释放后恢复悬停状态
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		case input.Pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}
	return anyHovered
}
