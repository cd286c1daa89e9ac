// coordinates.go 提供页面坐标转换
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **内容坐标**：相对于页面顶部（首屏 + 画廊），随页面长度增长
//   - **屏幕坐标**：相对于窗口左上角
//
// 固定元素（导航栏）直接使用屏幕坐标；随页面滚动的元素（卡片、光束）
// 在内容坐标中排版，绘制和命中测试时再做转换。
//
// # 核心转换公式
//
//	screenY = contentY - scrollY
//	contentY = screenY + scrollY
//
// 水平方向不滚动，x 在两个坐标系中相同。
package utils

// ContentToScreen 内容坐标 → 屏幕坐标
func ContentToScreen(x, y, scrollY float64) (float64, float64) {
	return x, y - scrollY
}

// ScreenToContent 屏幕坐标 → 内容坐标
func ScreenToContent(x, y, scrollY float64) (float64, float64) {
	return x, y + scrollY
}

// IsVisible 判断内容坐标中 [top, top+height) 的区域在滚动后是否与视口相交
func IsVisible(top, height, scrollY, viewportHeight float64) bool {
	_, screenTop := ContentToScreen(0, top, scrollY)
	return screenTop < viewportHeight && screenTop+height > 0
}
