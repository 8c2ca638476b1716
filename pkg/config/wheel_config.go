package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/decker502/roulette/pkg/embedded"
	"github.com/decker502/roulette/pkg/render"
	"github.com/decker502/roulette/pkg/wheel"
	"gopkg.in/yaml.v3"
)

// DefaultWheelConfigPath 内置轮盘配置在 embed.FS 中的路径
const DefaultWheelConfigPath = "data/wheel.yaml"

// WheelConfig 轮盘配置
//
// 配置文件位置: data/wheel.yaml（编译时嵌入），可通过 --config 指定磁盘文件覆盖
type WheelConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Wheel   DiskConfig    `yaml:"wheel"`
	Pointer PointerConfig `yaml:"pointer"`
	Physics PhysicsConfig `yaml:"physics"`
	Sectors SectorsConfig `yaml:"sectors"`
}

// WindowConfig 逻辑屏幕配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

// DiskConfig 轮盘外观
type DiskConfig struct {
	Radius       float64  `yaml:"radius"`
	CapRadius    float64  `yaml:"capRadius"`
	Label        string   `yaml:"label"`
	LabelSize    float64  `yaml:"labelSize"`
	NumberSize   float64  `yaml:"numberSize"`
	NumberRadius float64  `yaml:"numberRadius"` // 编号所在半径比例 (0, 1]
	OutlineWidth float64  `yaml:"outlineWidth"`
	SectorStroke float64  `yaml:"sectorStroke"`
	Spectrum     []string `yaml:"spectrum"` // 渐变色标，至少 1 个
	OutlineColor string   `yaml:"outlineColor"`
	CapColor     string   `yaml:"capColor"`
	TextColor    string   `yaml:"textColor"`
}

// PointerConfig 指针外观（距离均相对于轮盘圆心向上）
type PointerConfig struct {
	Color     string  `yaml:"color"`
	HalfWidth float64 `yaml:"halfWidth"`
	Base      float64 `yaml:"base"`
	Tip       float64 `yaml:"tip"`
}

// PhysicsConfig 旋转物理参数
type PhysicsConfig struct {
	InitialVelocity float64 `yaml:"initialVelocity"` // 弧度/tick
	DecayRate       float64 `yaml:"decayRate"`
	MaxJitter       float64 `yaml:"maxJitter"`
	TickIntervalMs  int     `yaml:"tickIntervalMs"`
	MaxTicks        int     `yaml:"maxTicks"`
}

// SectorsConfig 扇区配置
type SectorsConfig struct {
	Default int `yaml:"default"`
}

// DefaultWheelConfig 返回与 data/wheel.yaml 一致的默认配置
// 嵌入资源不可用时（如单元测试）使用
func DefaultWheelConfig() *WheelConfig {
	return &WheelConfig{
		Window: WindowConfig{
			Width:      GameWindowWidth,
			Height:     GameWindowHeight,
			Title:      "Roulette",
			Background: "#ffffff",
		},
		Wheel: DiskConfig{
			Radius:       400,
			CapRadius:    100,
			Label:        "Roulette",
			LabelSize:    50,
			NumberSize:   30,
			NumberRadius: 0.9,
			OutlineWidth: 5,
			SectorStroke: 2,
			Spectrum:     []string{"#ffd1fd", "#d1faff", "#ffd1fd"},
			OutlineColor: "#000000",
			CapColor:     "#ffffff",
			TextColor:    "#000000",
		},
		Pointer: PointerConfig{
			Color:     "#ff6b6b",
			HalfWidth: 30,
			Base:      450,
			Tip:       375,
		},
		Physics: PhysicsConfig{
			InitialVelocity: 0.3,
			DecayRate:       0.01,
			MaxJitter:       0.00005,
			TickIntervalMs:  10,
			MaxTicks:        10000,
		},
		Sectors: SectorsConfig{
			Default: wheel.DefaultSectors,
		},
	}
}

// ParseWheelConfig 解析 YAML 格式的轮盘配置
// 未出现的字段保留默认值
func ParseWheelConfig(data []byte) (*WheelConfig, error) {
	cfg := DefaultWheelConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wheel config: %w", err)
	}
	return cfg, nil
}

// LoadWheelConfig 从磁盘加载轮盘配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *WheelConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadWheelConfig(path string) (*WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

// LoadEmbeddedWheelConfig 加载内置的 data/wheel.yaml
func LoadEmbeddedWheelConfig() (*WheelConfig, error) {
	data, err := embedded.ReadFile(DefaultWheelConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

// Validate 验证配置有效性
func (c *WheelConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Wheel.Radius <= 0 {
		errs = append(errs, fmt.Errorf("wheel radius must be positive, got %.1f", c.Wheel.Radius))
	}
	if c.Wheel.CapRadius < 0 || c.Wheel.CapRadius >= c.Wheel.Radius {
		errs = append(errs, fmt.Errorf("capRadius(%.1f) must be in [0, radius(%.1f))", c.Wheel.CapRadius, c.Wheel.Radius))
	}
	if c.Wheel.NumberRadius <= 0 || c.Wheel.NumberRadius > 1 {
		errs = append(errs, fmt.Errorf("numberRadius must be in (0, 1], got %.2f", c.Wheel.NumberRadius))
	}
	if len(c.Wheel.Spectrum) == 0 {
		errs = append(errs, errors.New("spectrum needs at least one color"))
	}
	for _, s := range c.Wheel.Spectrum {
		if _, err := render.ParseHexColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	for _, s := range []string{c.Window.Background, c.Wheel.OutlineColor, c.Wheel.CapColor, c.Wheel.TextColor, c.Pointer.Color} {
		if _, err := render.ParseHexColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Pointer.Tip >= c.Pointer.Base {
		errs = append(errs, fmt.Errorf("pointer tip(%.1f) must be closer to the center than its base(%.1f)", c.Pointer.Tip, c.Pointer.Base))
	}

	p := c.Physics
	if p.InitialVelocity <= 0 {
		errs = append(errs, fmt.Errorf("initialVelocity must be positive, got %v", p.InitialVelocity))
	}
	if p.DecayRate <= 0 || p.DecayRate >= 1 {
		errs = append(errs, fmt.Errorf("decayRate must be in (0, 1), got %v", p.DecayRate))
	}
	if p.MaxJitter < 0 {
		errs = append(errs, fmt.Errorf("maxJitter must not be negative, got %v", p.MaxJitter))
	}
	if p.TickIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("tickIntervalMs must be positive, got %d", p.TickIntervalMs))
	}
	if p.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("maxTicks must not be negative, got %d", p.MaxTicks))
	}
	// 没有抖动时速度只按比例衰减，永远不会小于 0，必须靠 maxTicks 结束
	if p.MaxJitter == 0 && p.MaxTicks == 0 {
		errs = append(errs, errors.New("maxJitter and maxTicks cannot both be 0: the spin would never stop"))
	}

	if c.Sectors.Default < wheel.MinSectors || c.Sectors.Default > wheel.MaxSectors {
		errs = append(errs, fmt.Errorf("default sector count must be in [%d, %d], got %d",
			wheel.MinSectors, wheel.MaxSectors, c.Sectors.Default))
	}

	return errors.Join(errs...)
}

// PhysicsParams 转换为旋转引擎参数
func (c *WheelConfig) PhysicsParams() wheel.PhysicsConfig {
	return wheel.PhysicsConfig{
		InitialVelocity: c.Physics.InitialVelocity,
		DecayRate:       c.Physics.DecayRate,
		MaxJitter:       c.Physics.MaxJitter,
		TickInterval:    time.Duration(c.Physics.TickIntervalMs) * time.Millisecond,
		MaxTicks:        c.Physics.MaxTicks,
	}
}

// WheelStyle 转换为渲染外观
// 颜色已在 Validate 中检查过，这里解析失败时退回默认值
func (c *WheelConfig) WheelStyle() render.WheelStyle {
	style := render.DefaultWheelStyle()

	style.Radius = c.Wheel.Radius
	style.CapRadius = c.Wheel.CapRadius
	style.Label = c.Wheel.Label
	style.LabelSize = c.Wheel.LabelSize
	style.NumberSize = c.Wheel.NumberSize
	style.NumberRadius = c.Wheel.NumberRadius
	style.OutlineWidth = c.Wheel.OutlineWidth
	style.SectorStroke = c.Wheel.SectorStroke

	stops := make([]color.RGBA, 0, len(c.Wheel.Spectrum))
	for _, s := range c.Wheel.Spectrum {
		if clr, err := render.ParseHexColor(s); err == nil {
			stops = append(stops, clr)
		}
	}
	if len(stops) > 0 {
		style.Spectrum = render.NewSpectrum(0, 1, stops...)
	}

	style.OutlineColor = parseColorOr(c.Wheel.OutlineColor, style.OutlineColor)
	style.CapColor = parseColorOr(c.Wheel.CapColor, style.CapColor)
	style.TextColor = parseColorOr(c.Wheel.TextColor, style.TextColor)

	style.PointerColor = parseColorOr(c.Pointer.Color, style.PointerColor)
	style.PointerHalfWidth = c.Pointer.HalfWidth
	style.PointerBase = c.Pointer.Base
	style.PointerTip = c.Pointer.Tip

	return style
}

// BackgroundColor 返回背景色
func (c *WheelConfig) BackgroundColor() color.RGBA {
	return parseColorOr(c.Window.Background, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func parseColorOr(s string, fallback color.RGBA) color.RGBA {
	clr, err := render.ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return clr
}
