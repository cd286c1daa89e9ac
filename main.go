package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	seed := flag.Int64("seed", 0, "Random seed for the particle backdrop (0 = time based)")
	particles := flag.Int("particles", 0, "Override the particle count from data/vortex.yaml")
	author := flag.String("author", "", "Title shown in the navigation bar")
	authorName := flag.String("author-name", "", "Author name shown in the hero section")
	authorAge := flag.String("author-age", "", "Author age")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode (F11 toggles)")
	configDir := flag.String("config-dir", "", "Directory whose files override the embedded data/ configs")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)
	if *configDir != "" {
		embedded.SetOverrideDir(*configDir)
	}

	pageApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Seed:      *seed,
		Particles: *particles,
		Author:    game.Author{Name: *authorName, Age: *authorAge, Title: *author},
	})
	if err != nil {
		log.Fatalf("页面初始化失败: %v", err)
	}
	defer pageApp.GetSceneManager().Dispose()

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	// 非 verbose 模式下 log 已被静默，运行错误直接写 stderr
	if err := ebiten.RunGame(pageApp); err != nil {
		pageApp.GetSceneManager().Dispose()
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}
