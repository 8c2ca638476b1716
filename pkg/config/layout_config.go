package config

// 布局配置常量
// 本文件定义了逻辑屏幕尺寸和右侧控制面板中各 UI 元素的位置

// 逻辑屏幕尺寸，与 data/wheel.yaml 的 window 节保持一致
const (
	GameWindowWidth  = 1920
	GameWindowHeight = 1080

	// WindowScale 启动时窗口相对逻辑屏幕的缩放比例
	WindowScale = 0.5
)

// Control Panel Configuration (控制面板配置)
// 轮盘居中绘制（圆心 960,540，半径 400），面板放在轮盘右侧空白处
const (
	// PanelX 面板左边缘X坐标
	PanelX = 1460.0

	// PanelWidth 面板宽度
	PanelWidth = 360.0

	// ResultY 结果读数的中心Y坐标
	ResultY = 300.0

	// ResultTextSize 结果读数字号
	ResultTextSize = 96.0

	// CountInputY 扇区数量输入框的Y坐标
	CountInputY = 460.0

	// CountInputHeight 输入框高度
	CountInputHeight = 70.0

	// CountLabelWidth 输入框左侧标签所占宽度
	CountLabelWidth = 140.0

	// ButtonY 按钮行的Y坐标
	ButtonY = 600.0

	// ButtonWidth 单个按钮宽度（两个按钮并排，中间留 ButtonGap）
	ButtonWidth = 170.0

	// ButtonHeight 按钮高度
	ButtonHeight = 80.0

	// ButtonGap 两个按钮之间的间距
	ButtonGap = 20.0

	// SoundButtonY 音效开关按钮的Y坐标（占满面板宽度）
	SoundButtonY = ButtonY + ButtonHeight + ButtonGap

	// UITextSize 按钮和输入框的字号
	UITextSize = 36.0
)

// ButtonColumns 返回两个并排按钮的左上角X坐标
// 返回值：左按钮X，右按钮X
func ButtonColumns() (float64, float64) {
	left := PanelX
	right := PanelX + ButtonWidth + ButtonGap
	return left, right
}
