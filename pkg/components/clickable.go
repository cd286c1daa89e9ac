package components

// ClickableComponent 标记实体可以被指针点击
// 定义了可点击区域、交互状态和点击回调
//
// 坐标空间：
//   - Fixed = true: 屏幕坐标（如固定在顶部的导航栏）
//   - Fixed = false: 内容坐标，命中测试时需要加上页面滚动偏移
type ClickableComponent struct {
	X, Y      float64 // 可点击区域左上角
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	Fixed     bool    // 是否不随页面滚动
	IsEnabled bool    // 是否可以被点击

	// State 当前交互状态（由 ButtonSystem 更新）
	State UIState

	// OnClick 点击回调（指针在区域内释放时触发）
	OnClick func()
}
