// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/modules"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 背景粒子随机种子，非 0 时覆盖配置文件
	Seed int64
	// Particles 背景粒子数量，大于 0 时覆盖配置文件
	Particles int
	// Author 作者信息，非空字段覆盖配置文件
	Author game.Author
	// DialogOpener 卡片 "Open" 回调，nil 时桌面端使用系统对话框，移动端只记录日志
	DialogOpener modules.DialogOpener
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	pageContext  *game.PageContext
	verbose      bool

	// Layout 记录的视口尺寸，在下一次 Update 开始时应用
	pendingWidth, pendingHeight int
	resizePending               bool
}

// NewApp 创建并初始化页面应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 非 verbose 模式下日志被静默；初始化失败时恢复原来的日志输出，
// 让调用方的 log.Fatalf 仍然可见。
func NewApp(cfg Config) (_ *App, err error) {
	// 配置日志输出
	if !cfg.Verbose {
		restore := silenceLog()
		defer func() {
			if err != nil {
				restore()
			}
		}()
	}

	vortexCfg, err := config.LoadVortexConfig(config.VortexConfigPath)
	if err != nil {
		return nil, fmt.Errorf("背景配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		vortexCfg.Seed = cfg.Seed
	}
	if cfg.Particles > 0 {
		vortexCfg.ParticleCount = cfg.Particles
	} else if utils.IsMobile() {
		// 移动端粒子数量减半
		vortexCfg.ParticleCount = max(1, vortexCfg.ParticleCount/2)
	}
	log.Printf("[Config] 加载背景配置: %s (%d particles)", config.VortexConfigPath, vortexCfg.ParticleCount)

	portfolioCfg, err := config.LoadPortfolioConfig(config.PortfolioConfigPath)
	if err != nil {
		return nil, fmt.Errorf("页面配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载页面配置: %s (%d cards)", config.PortfolioConfigPath, len(portfolioCfg.Gallery))

	pageContext := game.NewPageContext(mergeAuthor(game.AuthorFromConfig(portfolioCfg.Author), cfg.Author))

	resourceManager := game.NewResourceManager()

	opener := cfg.DialogOpener
	if opener == nil && utils.IsMobile() {
		// 移动端没有系统对话框，只记录日志
		opener = func(title, description string) {
			log.Printf("[App] Open card '%s': %s", title, description)
		}
	}

	scene, err := scenes.NewPortfolioScene(pageContext, resourceManager, portfolioCfg, vortexCfg, opener)
	if err != nil {
		return nil, fmt.Errorf("页面初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Page ready: %s", pageContext.Title())

	return &App{
		sceneManager: sceneManager,
		pageContext:  pageContext,
		verbose:      cfg.Verbose,
	}, nil
}

// silenceLog 丢弃标准 log 输出，返回恢复函数
func silenceLog() (restore func()) {
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(io.Discard)
	log.SetFlags(0)
	return func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	}
}

// mergeAuthor 用 override 的非空字段覆盖 base
func mergeAuthor(base, override game.Author) game.Author {
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.Age != "" {
		base.Age = override.Age
	}
	if override.Title != "" {
		base.Title = override.Title
	}
	return base
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 视口尺寸变化在这里应用，保证与粒子缓冲区的读写在同一个 goroutine
	if a.resizePending {
		a.resizePending = false
		a.sceneManager.Resize(a.pendingWidth, a.pendingHeight)
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制页面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的滤波和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回页面的逻辑屏幕尺寸
// 页面跟随窗口尺寸排版，尺寸变化在下一次 Update 中应用
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	if outsideWidth != a.pendingWidth || outsideHeight != a.pendingHeight {
		a.pendingWidth, a.pendingHeight = outsideWidth, outsideHeight
		a.resizePending = true
	}
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时释放场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// PageContext 返回页面上下文
func (a *App) PageContext() *game.PageContext {
	return a.pageContext
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
