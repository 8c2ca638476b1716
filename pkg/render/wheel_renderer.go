package render

import (
	"image/color"
	"math"
	"strconv"
)

// WheelStyle 轮盘外观参数
type WheelStyle struct {
	Radius       float64 // 轮盘半径
	CapRadius    float64 // 中心圆半径
	Label        string  // 中心文字
	LabelSize    float64 // 中心文字字号
	NumberSize   float64 // 扇区编号字号
	NumberRadius float64 // 扇区编号所在半径占轮盘半径的比例

	OutlineWidth float64 // 外圈描边宽度
	SectorStroke float64 // 扇区描边宽度

	Spectrum     Spectrum   // 扇区颜色渐变（区间在绘制时按扇区数设置）
	OutlineColor color.RGBA // 描边颜色
	CapColor     color.RGBA // 中心圆填充色
	TextColor    color.RGBA // 文字颜色

	PointerColor     color.RGBA
	PointerHalfWidth float64 // 指针底边半宽
	PointerBase      float64 // 指针底边在圆心上方的距离
	PointerTip       float64 // 指针尖端在圆心上方的距离
}

// DefaultWheelStyle 返回默认外观
func DefaultWheelStyle() WheelStyle {
	return WheelStyle{
		Radius:       400,
		CapRadius:    100,
		Label:        "Roulette",
		LabelSize:    50,
		NumberSize:   30,
		NumberRadius: 0.9,
		OutlineWidth: 5,
		SectorStroke: 2,
		Spectrum: NewSpectrum(0, 1,
			MustParseHexColor("#ffd1fd"),
			MustParseHexColor("#d1faff"),
			MustParseHexColor("#ffd1fd"),
		),
		OutlineColor:     color.RGBA{A: 0xff},
		CapColor:         color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		TextColor:        color.RGBA{A: 0xff},
		PointerColor:     MustParseHexColor("#ff6b6b"),
		PointerHalfWidth: 30,
		PointerBase:      450,
		PointerTip:       375,
	}
}

// sectorStartAngle 第一个扇区的起始角（正上方）
const sectorStartAngle = -math.Pi / 2

// WheelRenderer 轮盘渲染器
// 无内部状态，每次 Draw 都完整重绘
type WheelRenderer struct {
	style WheelStyle
}

// NewWheelRenderer 创建轮盘渲染器
func NewWheelRenderer(style WheelStyle) *WheelRenderer {
	return &WheelRenderer{style: style}
}

// Style 返回外观参数
func (r *WheelRenderer) Style() WheelStyle {
	return r.style
}

// Draw 以转角 angle 绘制 sectorCount 个扇区的轮盘
//
// 轮盘、扇区、中心圆和中心文字随 angle 旋转；指针固定在轮盘上方。
func (r *WheelRenderer) Draw(s Surface, angle float64, sectorCount int) {
	width, height := s.Size()
	cx, cy := width/2, height/2

	s.Clear()

	s.Save()
	s.Translate(cx, cy)
	s.Rotate(angle)
	s.Translate(-cx, -cy)

	r.drawSectors(s, cx, cy, sectorCount)
	s.FillCircle(cx, cy, r.style.CapRadius, r.style.CapColor)
	s.StrokeCircle(cx, cy, r.style.CapRadius, r.style.OutlineWidth, r.style.OutlineColor)
	s.Text(cx, cy, r.style.Label, r.style.LabelSize, r.style.TextColor)

	s.Restore()

	r.drawPointer(s, cx, cy)
}

func (r *WheelRenderer) drawSectors(s Surface, cx, cy float64, count int) {
	radius := r.style.Radius
	s.StrokeCircle(cx, cy, radius, r.style.OutlineWidth, r.style.OutlineColor)

	if count < 1 {
		return
	}

	unit := 2 * math.Pi / float64(count)
	spectrum := r.style.Spectrum.WithRange(0, float64(count))

	for i := 0; i < count; i++ {
		start := sectorStartAngle + unit*float64(i)
		end := start + unit

		s.FillWedge(cx, cy, radius, start, end, spectrum.ColorAt(float64(i)))
		s.StrokeWedge(cx, cy, radius, start, end, r.style.SectorStroke, r.style.OutlineColor)

		// 编号放在扇区角平分线上，文字方向沿半径朝外
		mid := start + unit/2
		tx := cx + math.Cos(mid)*radius*r.style.NumberRadius
		ty := cy + math.Sin(mid)*radius*r.style.NumberRadius

		s.Save()
		s.Translate(tx, ty)
		s.Rotate(unit * (float64(i) + 0.5))
		s.Text(0, 0, strconv.Itoa(i+1), r.style.NumberSize, r.style.TextColor)
		s.Restore()
	}
}

func (r *WheelRenderer) drawPointer(s Surface, cx, cy float64) {
	st := r.style
	s.FillTriangle(
		cx-st.PointerHalfWidth, cy-st.PointerBase,
		cx+st.PointerHalfWidth, cy-st.PointerBase,
		cx, cy-st.PointerTip,
		st.PointerColor,
	)
}
