package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/utils"
	"gopkg.in/yaml.v3"
)

// PortfolioConfigPath 页面内容配置文件路径
const PortfolioConfigPath = "data/portfolio.yaml"

// 页面锚点
const (
	AnchorTop     = "top"
	AnchorGallery = "gallery"
)

// 徽章样式
const (
	BadgeAccent    = "accent"
	BadgeSuccess   = "success"
	BadgeSecondary = "secondary"
	BadgeDefault   = "default"
)

// DefaultAuthor 未设置作者时导航栏显示的标题
const DefaultAuthor = "Portfolio"

// AuthorConfig 作者信息，三个字段都可以为空
//
//	author:
//	  name: Jane Doe
//	  age: "28"
//	  title: Jane's Sky
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Age   string `yaml:"age"`
	Title string `yaml:"title"` // 导航栏标题
}

// UnmarshalYAML 兼容简写 `author: Jane Doe`，标量视为 title
func (a *AuthorConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Title = value.Value
		return nil
	}
	type plain AuthorConfig
	p := plain(*a)
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = AuthorConfig(p)
	return nil
}

// PortfolioConfig 页面内容配置
//
// 配置文件位置: data/portfolio.yaml
type PortfolioConfig struct {
	// Author 作者信息，title 为空时导航栏显示 DefaultAuthor
	Author AuthorConfig `yaml:"author"`

	// Nav 导航链接，按顺序从左到右显示
	Nav []NavLink `yaml:"nav"`

	// Heading 画廊上方的标题
	Heading string `yaml:"heading"`

	// DefaultBadges 卡片未指定徽章时使用的徽章
	DefaultBadges []BadgeConfig `yaml:"defaultBadges"`

	// Gallery 画廊卡片，按顺序渲染
	Gallery []CardConfig `yaml:"gallery"`

	// Theme 配色
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig 页面配色，全部为 "#rrggbb" 格式
type ThemeConfig struct {
	Text      string `yaml:"text"`
	Muted     string `yaml:"muted"`
	Panel     string `yaml:"panel"`
	Border    string `yaml:"border"`
	Accent    string `yaml:"accent"`
	Success   string `yaml:"success"`
	Secondary string `yaml:"secondary"`
	BeamStart string `yaml:"beamStart"`
	BeamEnd   string `yaml:"beamEnd"`
}

// NavLink 导航链接
type NavLink struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"` // "top" 或 "gallery"
}

// BadgeConfig 卡片徽章
type BadgeConfig struct {
	Label   string `yaml:"label"`
	Variant string `yaml:"variant"` // accent / success / secondary / default
}

// CardConfig 画廊卡片
type CardConfig struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Image       string        `yaml:"image"` // "assets/" 开头的图片路径，缺失时使用占位图
	Badges      []BadgeConfig `yaml:"badges"`
}

// DefaultPortfolioConfig 返回默认页面内容
func DefaultPortfolioConfig() *PortfolioConfig {
	return &PortfolioConfig{
		Author: AuthorConfig{Title: DefaultAuthor},
		Nav: []NavLink{
			{Label: "Home", Anchor: AnchorTop},
			{Label: "Gallery", Anchor: AnchorGallery},
		},
		Heading: "Astrophotography",
		DefaultBadges: []BadgeConfig{
			{Label: "celestron", Variant: BadgeAccent},
			{Label: "sv305", Variant: BadgeSuccess},
			{Label: "planetary", Variant: BadgeSecondary},
		},
		Gallery: []CardConfig{
			{Title: "Moon", Description: "Shot from Xiaomi Redmi K30 Pro", Image: "assets/images/moon.png"},
			{Title: "Sun", Description: "Shot from SV305 Camera", Image: "assets/images/sun.png"},
			{Title: "Centaurus A Galaxy", Description: "Shot from SV305 Camera", Image: "assets/images/galaxy.png"},
		},
		Theme: ThemeConfig{
			Text:      "#f4f4f5",
			Muted:     "#a1a1aa",
			Panel:     "#18181b",
			Border:    "#3f3f46",
			Accent:    "#c084fc",
			Success:   "#4ade80",
			Secondary: "#94a3b8",
			BeamStart: "#18ccfc",
			BeamEnd:   "#ae48ff",
		},
	}
}

// LoadPortfolioConfig 加载页面内容配置
//
// 通过 embedded 包读取（支持 --config-dir 覆盖）。
func LoadPortfolioConfig(path string) (*PortfolioConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio config %s: %w", path, err)
	}
	cfg, err := ParsePortfolioConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsePortfolioConfig 从 YAML 内容解析配置，未出现的字段使用默认值
func ParsePortfolioConfig(data []byte) (*PortfolioConfig, error) {
	cfg := DefaultPortfolioConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 导航链接必须有文字，锚点只能是 "top" 或 "gallery"
//   - 卡片必须有标题
//   - 徽章样式必须是已知样式
//   - 配色可解析
func (c *PortfolioConfig) Validate() error {
	for i, link := range c.Nav {
		if link.Label == "" {
			return fmt.Errorf("nav link %d: label is required", i)
		}
		if link.Anchor != AnchorTop && link.Anchor != AnchorGallery {
			return fmt.Errorf("nav link '%s': unknown anchor '%s'", link.Label, link.Anchor)
		}
	}

	if err := validateBadges("defaultBadges", c.DefaultBadges); err != nil {
		return err
	}

	for i, card := range c.Gallery {
		if card.Title == "" {
			return fmt.Errorf("gallery card %d: title is required", i)
		}
		if err := validateBadges(fmt.Sprintf("card '%s'", card.Title), card.Badges); err != nil {
			return err
		}
	}

	if _, err := c.Theme.Palette(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

func validateBadges(owner string, badges []BadgeConfig) error {
	for _, b := range badges {
		switch b.Variant {
		case BadgeAccent, BadgeSuccess, BadgeSecondary, BadgeDefault, "":
		default:
			return fmt.Errorf("%s: badge '%s' has unknown variant '%s'", owner, b.Label, b.Variant)
		}
	}
	return nil
}

// BadgesFor 返回卡片的徽章：卡片自己的徽章优先，否则使用默认徽章
func (c *PortfolioConfig) BadgesFor(card CardConfig) []BadgeConfig {
	if len(card.Badges) > 0 {
		return card.Badges
	}
	return c.DefaultBadges
}

// Palette 解析后的配色
type Palette struct {
	Text, Muted, Panel, Border color.RGBA
	Accent, Success, Secondary color.RGBA
	BeamStart, BeamEnd         color.RGBA
}

// Palette 解析配色，任一颜色非法时返回错误
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"text", t.Text, &p.Text},
		{"muted", t.Muted, &p.Muted},
		{"panel", t.Panel, &p.Panel},
		{"border", t.Border, &p.Border},
		{"accent", t.Accent, &p.Accent},
		{"success", t.Success, &p.Success},
		{"secondary", t.Secondary, &p.Secondary},
		{"beamStart", t.BeamStart, &p.BeamStart},
		{"beamEnd", t.BeamEnd, &p.BeamEnd},
	}
	for _, f := range fields {
		c, err := utils.ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// BadgeColor 返回徽章样式对应的颜色
func (p Palette) BadgeColor(variant string) color.RGBA {
	switch variant {
	case BadgeAccent:
		return p.Accent
	case BadgeSuccess:
		return p.Success
	case BadgeSecondary:
		return p.Secondary
	}
	return p.Muted
}
