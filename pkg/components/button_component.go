package components

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 背景用纯色矩形绘制，不依赖图片资源
//   - 文字在按钮内居中显示
type ButtonComponent struct {
	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// TextSize 字号（像素）
	TextSize float64
	// TextColor 文字颜色（RGBA）
	TextColor [4]uint8 // R, G, B, A

	// ===== 按钮外观 =====
	// NormalColor 正常状态背景色
	NormalColor [4]uint8
	// HoverColor 悬停状态背景色
	HoverColor [4]uint8
	// PressedColor 按下状态背景色
	PressedColor [4]uint8
	// DisabledColor 禁用状态背景色
	DisabledColor [4]uint8
	// BorderColor 边框颜色
	BorderColor [4]uint8
	// BorderWidth 边框宽度（像素，0 = 无边框）
	BorderWidth float64

	// ===== 按钮尺寸 =====
	Width  float64
	Height float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
