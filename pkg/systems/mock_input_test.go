package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
}

func (m *mockPointerInput) Position() (int, int) { return m.x, m.y }
func (m *mockPointerInput) Pressed() bool        { return m.pressed }
func (m *mockPointerInput) JustPressed() bool    { return m.justPressed }
func (m *mockPointerInput) JustReleased() bool   { return m.justReleased }

// release 模拟在 (x, y) 松开指针的那一帧
func (m *mockPointerInput) release(x, y int) {
	m.x, m.y = x, y
	m.pressed = false
	m.justPressed = false
	m.justReleased = true
}

// mockKeyboardInput 用于测试的 mock 键盘输入
// chars 在下一次 AppendInputChars 后清空，模拟单帧输入
type mockKeyboardInput struct {
	chars     []rune
	durations map[ebiten.Key]int
	just      map[ebiten.Key]bool
}

func newMockKeyboard() *mockKeyboardInput {
	return &mockKeyboardInput{
		durations: make(map[ebiten.Key]int),
		just:      make(map[ebiten.Key]bool),
	}
}

func (m *mockKeyboardInput) AppendInputChars(runes []rune) []rune {
	runes = append(runes, m.chars...)
	m.chars = nil
	return runes
}

func (m *mockKeyboardInput) KeyPressDuration(key ebiten.Key) int { return m.durations[key] }
func (m *mockKeyboardInput) IsKeyJustPressed(key ebiten.Key) bool { return m.just[key] }

// tap 模拟按键第一帧
func (m *mockKeyboardInput) tap(key ebiten.Key) {
	m.durations[key] = 1
	m.just[key] = true
}

// releaseAll 清除所有按键状态
func (m *mockKeyboardInput) releaseAll() {
	m.durations = make(map[ebiten.Key]int)
	m.just = make(map[ebiten.Key]bool)
}

// surfaceCall 记录一次绘图调用
type surfaceCall struct {
	op   string
	args []float64
	text string
	clr  color.Color
}

// fakeSurface 只记录 UI 渲染系统会用到的调用
type fakeSurface struct {
	calls []surfaceCall
}

func (s *fakeSurface) add(op string, clr color.Color, args ...float64) {
	s.calls = append(s.calls, surfaceCall{op: op, args: args, clr: clr})
}

func (s *fakeSurface) Size() (float64, float64) { return 1920, 1080 }
func (s *fakeSurface) Clear()                    { s.add("clear", nil) }
func (s *fakeSurface) Save()                     { s.add("save", nil) }
func (s *fakeSurface) Restore()                  { s.add("restore", nil) }
func (s *fakeSurface) Translate(x, y float64)    { s.add("translate", nil, x, y) }
func (s *fakeSurface) Rotate(theta float64)      { s.add("rotate", nil, theta) }

func (s *fakeSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.add("fillCircle", clr, cx, cy, r)
}

func (s *fakeSurface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	s.add("strokeCircle", clr, cx, cy, r, width)
}

func (s *fakeSurface) FillWedge(cx, cy, r, start, end float64, clr color.Color) {
	s.add("fillWedge", clr, cx, cy, r, start, end)
}

func (s *fakeSurface) StrokeWedge(cx, cy, r, start, end, width float64, clr color.Color) {
	s.add("strokeWedge", clr, cx, cy, r, start, end, width)
}

func (s *fakeSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	s.add("fillTriangle", clr, x1, y1, x2, y2, x3, y3)
}

func (s *fakeSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.add("fillRect", clr, x, y, w, h)
}

func (s *fakeSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.add("strokeRect", clr, x, y, w, h, width)
}

func (s *fakeSurface) Text(x, y float64, str string, size float64, clr color.Color) {
	s.calls = append(s.calls, surfaceCall{op: "text", args: []float64{x, y, size}, text: str, clr: clr})
}

// TextWidth 每个字符按 10 像素计算
func (s *fakeSurface) TextWidth(str string, size float64) float64 {
	return float64(len([]rune(str))) * 10
}

func (s *fakeSurface) find(op string) []surfaceCall {
	var out []surfaceCall
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}
