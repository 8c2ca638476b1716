package components

// PositionComponent 实体在逻辑屏幕上的位置
// 对 UI 元素表示左上角坐标
type PositionComponent struct {
	X float64
	Y float64
}
