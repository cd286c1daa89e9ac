package app

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/scenes"
)

func initTestData(t *testing.T, vortexYAML, portfolioYAML string) {
	t.Helper()
	embedded.SetOverrideDir("")
	embedded.SetAssetsFS(fstest.MapFS{})
	embedded.Init(fstest.MapFS{
		"data/vortex.yaml":    {Data: []byte(vortexYAML)},
		"data/portfolio.yaml": {Data: []byte(portfolioYAML)},
	})
}

func noDialog(string, string) {}

func TestNewApp_Overrides(t *testing.T) {
	initTestData(t, "particleCount: 300\nseed: 1\n", "author:\n  name: Ada\n  title: Ada's Sky\n")

	a, err := NewApp(Config{Verbose: true, Seed: 42, Particles: 25, Author: game.Author{Title: "Grace"}, DialogOpener: noDialog})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PortfolioScene)
	if !ok {
		t.Fatal("当前场景应为 PortfolioScene")
	}
	defer a.GetSceneManager().Dispose()

	sim := scene.Vortex().Simulation()
	if sim.Config().ParticleCount != 25 {
		t.Errorf("ParticleCount = %d, 期望 25", sim.Config().ParticleCount)
	}
	if sim.Seed() != 42 {
		t.Errorf("Seed = %d, 期望 42", sim.Seed())
	}
	if got := a.PageContext().Title(); got != "Grace" {
		t.Errorf("Title() = %q, 期望 %q", got, "Grace")
	}
	// 命令行只覆盖了标题，名字仍来自配置文件
	if got := a.PageContext().DisplayName(); got != "Ada" {
		t.Errorf("DisplayName() = %q, 期望 %q", got, "Ada")
	}
}

func TestMergeAuthor(t *testing.T) {
	base := game.Author{Name: "Ada", Age: "36", Title: "Portfolio"}
	tests := []struct {
		name     string
		override game.Author
		want     game.Author
	}{
		{"无覆盖", game.Author{}, base},
		{"只覆盖标题", game.Author{Title: "Sky"}, game.Author{Name: "Ada", Age: "36", Title: "Sky"}},
		{"全部覆盖", game.Author{Name: "Grace", Age: "40", Title: "Sky"}, game.Author{Name: "Grace", Age: "40", Title: "Sky"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergeAuthor(base, tt.override); got != tt.want {
				t.Errorf("mergeAuthor() = %+v, 期望 %+v", got, tt.want)
			}
		})
	}
}

// TestNewApp_ErrorKeepsLogOutput 非 verbose 模式初始化失败后，日志输出恢复，
// main 中的 log.Fatalf 仍然能打印错误
func TestNewApp_ErrorKeepsLogOutput(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	initTestData(t, "particleCount: 0\n", "")
	_, err := NewApp(Config{Verbose: false, DialogOpener: noDialog})
	if err == nil {
		t.Fatal("期望返回错误")
	}

	log.Printf("页面初始化失败: %v", err)
	if !strings.Contains(buf.String(), "页面初始化失败") {
		t.Errorf("初始化失败后日志应可见, got %q", buf.String())
	}
	if log.Writer() != &buf {
		t.Error("日志输出应恢复为调用前的 writer")
	}
}

// TestNewApp_QuietOnSuccess 非 verbose 模式初始化成功后日志保持静默
func TestNewApp_QuietOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	initTestData(t, "particleCount: 10\n", "")
	a, err := NewApp(Config{Verbose: false, DialogOpener: noDialog})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	defer a.GetSceneManager().Dispose()

	log.Printf("should be discarded")
	if buf.Len() != 0 {
		t.Errorf("非 verbose 模式不应输出日志, got %q", buf.String())
	}
}

func TestNewApp_ConfigValues(t *testing.T) {
	initTestData(t, "particleCount: 40\nseed: 9\n", "")

	a, err := NewApp(Config{Verbose: true, DialogOpener: noDialog})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	defer a.GetSceneManager().Dispose()

	scene := a.GetSceneManager().GetCurrentScene().(*scenes.PortfolioScene)
	if n := scene.Vortex().Simulation().Config().ParticleCount; n != 40 {
		t.Errorf("ParticleCount = %d, 期望 40", n)
	}
	if got := a.PageContext().Title(); got != config.DefaultAuthor {
		t.Errorf("Title() = %q, 期望默认标题 %q", got, config.DefaultAuthor)
	}
	if len(scene.Grid().Cards()) != 3 {
		t.Errorf("默认画廊应有 3 张卡片, got %d", len(scene.Grid().Cards()))
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		vortex    string
		portfolio string
	}{
		{"粒子数量非法", "particleCount: 0\n", ""},
		{"YAML 语法错误", "particleCount: [\n", ""},
		{"锚点非法", "", "nav:\n  - label: About\n    anchor: about\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initTestData(t, tt.vortex, tt.portfolio)
			if _, err := NewApp(Config{Verbose: true, DialogOpener: noDialog}); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

// TestApp_Layout 尺寸变化只记录，不立即应用
func TestApp_Layout(t *testing.T) {
	initTestData(t, "particleCount: 10\n", "")
	a, err := NewApp(Config{Verbose: true, DialogOpener: noDialog})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	defer a.GetSceneManager().Dispose()

	w, h := a.Layout(1024, 700)
	if w != 1024 || h != 700 {
		t.Errorf("Layout() = (%d, %d), 期望 (1024, 700)", w, h)
	}
	if !a.resizePending {
		t.Error("尺寸变化后应标记待应用")
	}
	if a.PageContext().Viewport().Valid() {
		t.Error("Layout 不应直接修改视口，尺寸在 Update 中应用")
	}

	a.resizePending = false
	a.Layout(1024, 700)
	if a.resizePending {
		t.Error("尺寸未变化时不应重复标记")
	}

	if w, h := a.Layout(0, 0); w != config.DefaultWindowWidth || h != config.DefaultWindowHeight {
		t.Errorf("Layout(0, 0) = (%d, %d), 期望默认窗口尺寸", w, h)
	}
}
