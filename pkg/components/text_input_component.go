package components

// TextInputComponent 文本输入框组件
// 用于输入扇区数量
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 输入框样式
	Width       float64  // 输入框宽度（像素）
	Height      float64  // 输入框高度（像素）
	TextSize    float64  // 字号（像素）
	TextColor   [4]uint8 // 文字颜色
	BorderColor [4]uint8 // 未获得焦点时的边框颜色
	FocusColor  [4]uint8 // 获得焦点时的边框颜色

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	DigitsOnly  bool   // 只接受 0-9
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// OnChange 文本变化后回调，参数为新文本
	OnChange func(text string)
}
