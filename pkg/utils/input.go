// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 滚动步长（像素）
const (
	WheelStep = 60.0 // 每格滚轮
	KeyStep   = 40.0 // 方向键
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标、触摸和滚动输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针是否按住
	Pressed bool
	// 指针是否刚刚释放（触摸拖动滚动后的释放不算）
	JustReleased bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 本帧页面滚动量（像素，正数向下）
	ScrollDelta float64
}

// 触摸超过此距离视为拖动滚动，释放时不触发点击
const touchDragSlop = 10

// 保存上一帧触摸位置（用于触摸拖动滚动和释放位置）
var (
	lastTouchX, lastTouchY int
	touchStartY            int
	touchActive            bool
	touchDragged           bool
)

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState(viewportHeight float64) InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.Pressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		lastTouchX, lastTouchY, touchStartY = state.X, state.Y, state.Y
		touchActive, touchDragged = true, false
		return state
	}

	// 活动的触摸：拖动即滚动
	if allTouchIDs := ebiten.AppendTouchIDs(nil); len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.Pressed = true
		state.IsTouching = true
		if touchActive {
			state.ScrollDelta = float64(lastTouchY - state.Y)
			if abs(state.Y-touchStartY) > touchDragSlop {
				touchDragged = true
			}
		}
		lastTouchX, lastTouchY, touchActive = state.X, state.Y, true
		return state
	}

	// 触摸释放时使用保存的最后触摸位置
	if touchActive {
		touchActive = false
		state.X, state.Y = lastTouchX, lastTouchY
		state.IsTouching = true
		state.JustReleased = !touchDragged
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	_, wheelY := ebiten.Wheel()
	state.ScrollDelta = WheelScrollDelta(wheelY) + KeyboardScrollDelta(readScrollKeys(), viewportHeight)
	return state
}

// ScrollKeys 记录本帧按下的滚动按键
type ScrollKeys struct {
	Up, Down         bool
	PageUp, PageDown bool
	Home, End        bool
}

func readScrollKeys() ScrollKeys {
	pressed := func(k ebiten.Key) bool {
		return inpututil.IsKeyJustPressed(k) || inpututil.KeyPressDuration(k) > 20
	}
	return ScrollKeys{
		Up:       pressed(ebiten.KeyArrowUp),
		Down:     pressed(ebiten.KeyArrowDown),
		PageUp:   pressed(ebiten.KeyPageUp),
		PageDown: pressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Home:     inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:      inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	}
}

// WheelScrollDelta 将滚轮刻度转换为滚动像素
// ebiten 的 wheelY 向上为正，页面滚动向下为正，所以取反
func WheelScrollDelta(wheelY float64) float64 {
	return -wheelY * WheelStep
}

// KeyboardScrollDelta 将按键转换为滚动像素
// Home/End 返回极大值，由调用方限制到页面范围
func KeyboardScrollDelta(keys ScrollKeys, viewportHeight float64) float64 {
	const far = 1e9
	page := viewportHeight * 0.9

	switch {
	case keys.Home:
		return -far
	case keys.End:
		return far
	}

	delta := 0.0
	if keys.Up {
		delta -= KeyStep
	}
	if keys.Down {
		delta += KeyStep
	}
	if keys.PageUp {
		delta -= page
	}
	if keys.PageDown {
		delta += page
	}
	return delta
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// PointInRect 判断点是否在矩形内（右、下边界不包含）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
