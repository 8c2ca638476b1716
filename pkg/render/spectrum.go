package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Spectrum 多色渐变
//
// 数值区间 [Min, Max] 被平均分成 len(Stops)-1 段，每段在相邻两个颜色之间线性插值。
// 轮盘用 [0, sectorCount] 作为区间，因此第 0 个和第 sectorCount 个位置颜色相同。
type Spectrum struct {
	Stops []color.RGBA
	Min   float64
	Max   float64
}

// NewSpectrum 创建渐变
func NewSpectrum(min, max float64, stops ...color.RGBA) Spectrum {
	return Spectrum{
		Stops: stops,
		Min:   min,
		Max:   max,
	}
}

// WithRange 返回相同颜色、不同数值区间的渐变
func (s Spectrum) WithRange(min, max float64) Spectrum {
	s.Min = min
	s.Max = max
	return s
}

// ColorAt 返回数值 n 处的颜色，超出区间时取端点颜色
func (s Spectrum) ColorAt(n float64) color.RGBA {
	switch len(s.Stops) {
	case 0:
		return color.RGBA{A: 0xff}
	case 1:
		return s.Stops[0]
	}

	segments := len(s.Stops) - 1
	span := s.Max - s.Min
	if span <= 0 {
		return s.Stops[0]
	}

	segment := span / float64(segments)
	index := int(math.Floor((math.Max(n, s.Min) - s.Min) / segment))
	if index > segments-1 {
		index = segments - 1
	}

	lo := s.Min + segment*float64(index)
	hi := lo + segment
	return blendRGB(s.Stops[index], s.Stops[index+1], lo, hi, n)
}

// blendRGB 在 RGB 空间线性插值，n 超出 [lo, hi] 时取端点
func blendRGB(from, to color.RGBA, lo, hi, n float64) color.RGBA {
	t := (n - lo) / (hi - lo)
	t = math.Min(math.Max(t, 0), 1)

	c1, _ := colorful.MakeColor(opaque(from))
	c2, _ := colorful.MakeColor(opaque(to))
	r, g, b := c1.BlendRgb(c2, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// opaque 渐变只使用不透明颜色，MakeColor 遇到 alpha 为 0 会失败
func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色，"#" 可省略
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	// colorful.Hex 按宽度扫描，"#12345" 也能扫出三个分量，这里先检查长度
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHexColor 同 ParseHexColor，解析失败时 panic（只用于常量）
func MustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
