package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (e.g., the portfolio page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收视口尺寸变化
//
// App 在 Layout 中记录新尺寸，在下一次 Update 开始时调用 Resize，
// 保证尺寸变化和粒子缓冲区的读写发生在同一个 goroutine。
type Resizable interface {
	Resize(width, height int)
}

// Disposable 是一个可选接口，用于在场景切换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - 被 SwitchTo 替换
//   - 窗口关闭
type Disposable interface {
	Dispose()
}
