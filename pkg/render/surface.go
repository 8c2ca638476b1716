// Package render 负责轮盘的绘制
//
// WheelRenderer 只依赖 Surface 接口描述的基本绘图操作，
// EbitenSurface 用 ebiten/v2/vector 和 text/v2 实现该接口。
package render

import "image/color"

// Surface 二维绘图表面
//
// 坐标变换语义与 HTML canvas 一致：Translate/Rotate 作用于之后的所有绘制，
// Save/Restore 保存和恢复变换栈。角度单位为弧度，顺时针为正（y 轴向下）。
type Surface interface {
	// Size 返回表面像素尺寸
	Size() (width, height float64)
	// Clear 清空整个表面
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)

	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	// FillWedge 填充扇形：圆心 -> 起始角 -> 圆弧 -> 圆心
	FillWedge(cx, cy, r, start, end float64, clr color.Color)
	StrokeWedge(cx, cy, r, start, end, width float64, clr color.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.Color)
	// FillRect/StrokeRect 以 (x, y) 为左上角
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	// Text 以 (x, y) 为中心绘制文字
	Text(x, y float64, s string, size float64, clr color.Color)
	// TextWidth 返回文字的水平宽度，用于定位光标
	TextWidth(s string, size float64) float64
}
