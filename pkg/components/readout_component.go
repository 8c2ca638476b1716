package components

// ReadoutComponent 当前扇区读数
// 渲染为 "[ n ]"，以 PositionComponent 为中心
type ReadoutComponent struct {
	Value     int
	TextSize  float64
	TextColor [4]uint8
}

// LabelComponent 静态文字标签，以 PositionComponent 为中心
type LabelComponent struct {
	Text      string
	TextSize  float64
	TextColor [4]uint8
}
