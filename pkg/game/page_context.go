package game

import "github.com/decker502/portfolio/pkg/config"

// Viewport 视口尺寸（逻辑像素）
type Viewport struct {
	Width  int
	Height int
}

// Valid 报告视口是否有可绘制的面积
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Author 作者信息，字段均可为空
type Author struct {
	Name  string
	Age   string
	Title string
}

// AuthorFromConfig 由配置文件中的作者信息创建 Author
func AuthorFromConfig(c config.AuthorConfig) Author {
	return Author{Name: c.Name, Age: c.Age, Title: c.Title}
}

// NavTitle 导航栏标题：Title 为空时显示 "Portfolio"
func (a Author) NavTitle() string {
	if a.Title == "" {
		return config.DefaultAuthor
	}
	return a.Title
}

// DisplayName 首屏显示的名字：Name 为空时回退到导航栏标题
func (a Author) DisplayName() string {
	if a.Name == "" {
		return a.NavTitle()
	}
	return a.Name
}

// PageContext 页面共享状态：作者信息和视口尺寸
//
// 由 App 创建，沿视图构建链显式传递给场景和各模块，
// 不使用全局单例。所有方法只在 Update/Draw 所在的 goroutine 调用。
type PageContext struct {
	author   Author
	viewport Viewport
}

// NewPageContext 创建页面上下文
func NewPageContext(author Author) *PageContext {
	return &PageContext{author: author}
}

// Author 返回作者信息
func (p *PageContext) Author() Author {
	return p.author
}

// SetAuthor 整体替换作者信息
func (p *PageContext) SetAuthor(author Author) {
	p.author = author
}

// Title 返回导航栏标题
func (p *PageContext) Title() string {
	return p.author.NavTitle()
}

// DisplayName 返回首屏显示的作者名
func (p *PageContext) DisplayName() string {
	return p.author.DisplayName()
}

// Viewport 返回当前视口尺寸
func (p *PageContext) Viewport() Viewport {
	return p.viewport
}

// SetViewport 记录视口尺寸，返回尺寸是否发生变化
func (p *PageContext) SetViewport(width, height int) bool {
	next := Viewport{Width: width, Height: height}
	if next == p.viewport {
		return false
	}
	p.viewport = next
	return true
}
