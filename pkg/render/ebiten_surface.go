package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImageOnce sync.Once
	whiteSubImage  *ebiten.Image
)

// getWhiteSubImage DrawTriangles 使用的纯白纹理
// 取 3x3 图片中间的 1 像素，避免采样到边缘
func getWhiteSubImage() *ebiten.Image {
	whiteImageOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenSurface 基于 Ebitengine 的 Surface 实现
//
// 变换栈用 ebiten.GeoM 表示；路径先在局部坐标系中生成，
// 再把顶点乘上当前变换后用 DrawTriangles 绘制。
type EbitenSurface struct {
	dst        *ebiten.Image
	fontSource *text.GoTextFaceSource
	background color.Color

	geoM  ebiten.GeoM
	stack []ebiten.GeoM

	vertices []ebiten.Vertex
	indices  []uint16
	faces    map[float64]*text.GoTextFace
}

// NewEbitenSurface 创建绘图表面
//
// 参数：
//   - fontSource: 文字字体，为 nil 时不绘制文字
//   - background: Clear 使用的背景色
func NewEbitenSurface(fontSource *text.GoTextFaceSource, background color.Color) *EbitenSurface {
	return &EbitenSurface{
		fontSource: fontSource,
		background: background,
		faces:      make(map[float64]*text.GoTextFace),
	}
}

// Bind 绑定本帧的目标图像并重置变换栈
func (s *EbitenSurface) Bind(dst *ebiten.Image) {
	s.dst = dst
	s.geoM.Reset()
	s.stack = s.stack[:0]
}

// Size 返回目标图像尺寸
func (s *EbitenSurface) Size() (float64, float64) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear 用背景色填充整个目标图像
func (s *EbitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	if s.background == nil {
		s.dst.Clear()
		return
	}
	s.dst.Fill(s.background)
}

func (s *EbitenSurface) Save() {
	s.stack = append(s.stack, s.geoM)
}

func (s *EbitenSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geoM = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate 之后的绘制先平移再应用已有变换（canvas 语义）
func (s *EbitenSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.prepend(m)
}

// Rotate 之后的绘制先旋转再应用已有变换（canvas 语义）
func (s *EbitenSurface) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	s.prepend(m)
}

func (s *EbitenSurface) prepend(m ebiten.GeoM) {
	m.Concat(s.geoM)
	s.geoM = m
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	s.fill(&path, clr)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	s.stroke(&path, width, clr)
}

func (s *EbitenSurface) FillWedge(cx, cy, r, start, end float64, clr color.Color) {
	path := wedgePath(cx, cy, r, start, end)
	s.fill(path, clr)
}

func (s *EbitenSurface) StrokeWedge(cx, cy, r, start, end, width float64, clr color.Color) {
	path := wedgePath(cx, cy, r, start, end)
	s.stroke(path, width, clr)
}

func wedgePath(cx, cy, r, start, end float64) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.LineTo(float32(cx+math.Cos(start)*r), float32(cy+math.Sin(start)*r))
	path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	path.Close()
	return &path
}

func (s *EbitenSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()
	s.fill(&path, clr)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.fill(rectPath(x, y, w, h), clr)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.stroke(rectPath(x, y, w, h), width, clr)
}

func rectPath(x, y, w, h float64) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(x), float32(y))
	path.LineTo(float32(x+w), float32(y))
	path.LineTo(float32(x+w), float32(y+h))
	path.LineTo(float32(x), float32(y+h))
	path.Close()
	return &path
}

// Text 以 (x, y) 为中心绘制文字，文字随当前变换旋转
func (s *EbitenSurface) Text(x, y float64, str string, size float64, clr color.Color) {
	if s.dst == nil || s.fontSource == nil || str == "" {
		return
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geoM)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(s.dst, str, s.face(size), op)
}

// TextWidth 返回文字宽度，没有字体时为 0
func (s *EbitenSurface) TextWidth(str string, size float64) float64 {
	if s.fontSource == nil || str == "" {
		return 0
	}
	return text.Advance(str, s.face(size))
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	s.faces[size] = f
	return f
}

func (s *EbitenSurface) fill(path *vector.Path, clr color.Color) {
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(clr)
}

func (s *EbitenSurface) stroke(path *vector.Path, width float64, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawTriangles(clr)
}

// drawTriangles 把顶点变换到屏幕坐标后绘制
func (s *EbitenSurface) drawTriangles(clr color.Color) {
	if s.dst == nil || len(s.indices) == 0 {
		return
	}

	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	for i := range s.vertices {
		v := &s.vertices[i]
		x, y := s.geoM.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX = float32(x)
		v.DstY = float32(y)
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = cr
		v.ColorG = cg
		v.ColorB = cb
		v.ColorA = ca
	}

	s.dst.DrawTriangles(s.vertices, s.indices, getWhiteSubImage(), trianglesOptions())
}

// trianglesOptions 填充和描边共用的绘制选项
// 使用非零环绕规则，凹多边形（如超过半圆的扇形）和自相交的描边三角形都能正确填充
func trianglesOptions() *ebiten.DrawTrianglesOptions {
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	// 颜色值来自 color.Color.RGBA()，已是预乘 alpha
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return op
}
