package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入接口（鼠标或触摸）
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// Position 返回当前指针位置（逻辑屏幕坐标）
	Position() (int, int)
	// Pressed 主键或触摸是否处于按下状态
	Pressed() bool
	// JustPressed 本帧是否刚按下
	JustPressed() bool
	// JustReleased 本帧是否刚松开
	JustReleased() bool
}

// KeyboardInput 键盘输入接口
type KeyboardInput interface {
	// AppendInputChars 追加本帧输入的字符
	AppendInputChars(runes []rune) []rune
	// KeyPressDuration 按键已持续按下的帧数，未按下为 0
	KeyPressDuration(key ebiten.Key) int
	// IsKeyJustPressed 本帧是否刚按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenPointerInput Ebitengine 默认实现，优先检测触摸
type ebitenPointerInput struct {
	lastTouchX, lastTouchY int
}

func (e *ebitenPointerInput) Position() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		e.lastTouchX, e.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return e.lastTouchX, e.lastTouchY
	}
	// 触摸刚结束的那一帧 TouchPosition 已不可用，沿用上一次的位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return e.lastTouchX, e.lastTouchY
	}
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) Pressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (e *ebitenPointerInput) JustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (e *ebitenPointerInput) JustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// ebitenKeyboardInput Ebitengine 默认实现
type ebitenKeyboardInput struct{}

func (ebitenKeyboardInput) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (ebitenKeyboardInput) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

func (ebitenKeyboardInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DefaultPointerInput 返回基于 Ebitengine 的指针输入
func DefaultPointerInput() PointerInput {
	return &ebitenPointerInput{}
}

// DefaultKeyboardInput 返回基于 Ebitengine 的键盘输入
func DefaultKeyboardInput() KeyboardInput {
	return ebitenKeyboardInput{}
}

// isRepeat 按住按键时的重复触发规则
// 第1帧立即响应，30帧之后每隔3帧响应一次
func isRepeat(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}

// pointInRect 检测点是否在矩形范围内（含边界）
func pointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
