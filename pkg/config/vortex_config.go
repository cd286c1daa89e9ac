package config

import (
	"fmt"

	"github.com/decker502/portfolio/internal/vortex"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/utils"
	"gopkg.in/yaml.v3"
)

// VortexConfigPath 背景粒子配置文件路径
const VortexConfigPath = "data/vortex.yaml"

// VortexConfig 背景粒子漩涡配置
//
// 字段与 vortex.Config 一一对应，另外包含背景色和辉光通道。
// 文件中缺失的字段保留 DefaultVortexConfig 的默认值。
//
// 配置文件位置: data/vortex.yaml
type VortexConfig struct {
	ParticleCount int     `yaml:"particleCount"`
	RangeY        float64 `yaml:"rangeY"`
	BaseTTL       float64 `yaml:"baseTTL"`
	RangeTTL      float64 `yaml:"rangeTTL"`
	BaseSpeed     float64 `yaml:"baseSpeed"`
	RangeSpeed    float64 `yaml:"rangeSpeed"`
	BaseRadius    float64 `yaml:"baseRadius"`
	RangeRadius   float64 `yaml:"rangeRadius"`
	BaseHue       float64 `yaml:"baseHue"`
	RangeHue      float64 `yaml:"rangeHue"`
	NoiseSteps    float64 `yaml:"noiseSteps"`
	XOff          float64 `yaml:"xOff"`
	YOff          float64 `yaml:"yOff"`
	ZOff          float64 `yaml:"zOff"`

	// BackgroundColor 每帧填充色，"#rgb" 或 "#rrggbb"
	BackgroundColor string `yaml:"backgroundColor"`

	// Seed 随机种子，0 表示按时间播种
	Seed int64 `yaml:"seed"`

	// Glow 辉光通道，按顺序叠加
	Glow []GlowPassConfig `yaml:"glow"`

	// FadeInSeconds 背景淡入时长（秒）
	FadeInSeconds float64 `yaml:"fadeInSeconds"`
}

// GlowPassConfig 单个辉光通道（模糊半径 + 亮度倍数）
type GlowPassConfig struct {
	Blur       float64 `yaml:"blur"`
	Brightness float64 `yaml:"brightness"`
}

// DefaultVortexConfig 返回默认配置
func DefaultVortexConfig() *VortexConfig {
	d := vortex.DefaultConfig()
	return &VortexConfig{
		ParticleCount:   d.ParticleCount,
		RangeY:          d.RangeY,
		BaseTTL:         d.BaseTTL,
		RangeTTL:        d.RangeTTL,
		BaseSpeed:       d.BaseSpeed,
		RangeSpeed:      d.RangeSpeed,
		BaseRadius:      d.BaseRadius,
		RangeRadius:     d.RangeRadius,
		BaseHue:         d.BaseHue,
		RangeHue:        d.RangeHue,
		NoiseSteps:      d.NoiseSteps,
		XOff:            d.XOff,
		YOff:            d.YOff,
		ZOff:            d.ZOff,
		BackgroundColor: "#000000",
		Glow: []GlowPassConfig{
			{Blur: 8, Brightness: 2},
			{Blur: 4, Brightness: 2},
		},
		FadeInSeconds: 1,
	}
}

// LoadVortexConfig 加载背景粒子配置
//
// 通过 embedded 包读取（支持 --config-dir 覆盖）。
//
// 参数:
//   - path: 配置文件路径（如 "data/vortex.yaml"）
//
// 返回:
//   - *VortexConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadVortexConfig(path string) (*VortexConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vortex config %s: %w", path, err)
	}
	cfg, err := ParseVortexConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseVortexConfig 从 YAML 内容解析配置，未出现的字段使用默认值
func ParseVortexConfig(data []byte) (*VortexConfig, error) {
	cfg := DefaultVortexConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse vortex config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vortex config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 粒子参数（数量、范围、生命周期），规则同 vortex.Config.Validate
//   - 背景色可解析
//   - 辉光通道的模糊半径和亮度非负
//   - 淡入时长非负
func (c *VortexConfig) Validate() error {
	if err := c.SimulationConfig().Validate(); err != nil {
		return err
	}

	if _, err := utils.ParseHexColor(c.BackgroundColor); err != nil {
		return fmt.Errorf("backgroundColor: %w", err)
	}

	for i, pass := range c.Glow {
		if pass.Blur < 0 || pass.Brightness < 0 {
			return fmt.Errorf("glow pass %d: blur and brightness must be >= 0, got %.1f/%.1f",
				i, pass.Blur, pass.Brightness)
		}
	}

	if c.FadeInSeconds < 0 {
		return fmt.Errorf("fadeInSeconds must be >= 0, got %.2f", c.FadeInSeconds)
	}
	return nil
}

// SimulationConfig 转换为 vortex.Config
func (c *VortexConfig) SimulationConfig() vortex.Config {
	return vortex.Config{
		ParticleCount: c.ParticleCount,
		RangeY:        c.RangeY,
		BaseTTL:       c.BaseTTL,
		RangeTTL:      c.RangeTTL,
		BaseSpeed:     c.BaseSpeed,
		RangeSpeed:    c.RangeSpeed,
		BaseRadius:    c.BaseRadius,
		RangeRadius:   c.RangeRadius,
		BaseHue:       c.BaseHue,
		RangeHue:      c.RangeHue,
		NoiseSteps:    c.NoiseSteps,
		XOff:          c.XOff,
		YOff:          c.YOff,
		ZOff:          c.ZOff,
		Seed:          c.Seed,
	}
}
