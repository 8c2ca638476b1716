package systems

import (
	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本输入框的焦点切换、键盘输入、光标闪烁等逻辑
//
// 文本每次变化后调用 TextInputComponent.OnChange，
// 是否接受新值由回调方决定，输入框本身只负责字符过滤和长度限制。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerInput
	keyboard      KeyboardInput
	logger        log.Logger
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager, logger log.Logger) *TextInputSystem {
	return NewTextInputSystemWithInput(em, DefaultPointerInput(), DefaultKeyboardInput(), logger)
}

// NewTextInputSystemWithInput 创建带自定义输入的文本输入系统（用于测试）
func NewTextInputSystemWithInput(em *ecs.EntityManager, pointer PointerInput, keyboard KeyboardInput, logger log.Logger) *TextInputSystem {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &TextInputSystem{
		entityManager: em,
		pointer:       pointer,
		keyboard:      keyboard,
		logger:        log.With(logger, "component", "text_input"),
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	if s.pointer.JustPressed() {
		s.updateFocus()
	}

	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		before := input.Text
		s.handleKeyboardInput(input)
		if input.Text != before && input.OnChange != nil {
			input.OnChange(input.Text)
		}
	}
}

// updateFocus 点击输入框获得焦点，点击其他位置失去焦点
func (s *TextInputSystem) updateFocus() {
	x, y := s.pointer.Position()

	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		focused := pointInRect(float64(x), float64(y), pos.X, pos.Y, input.Width, input.Height)
		if focused && !input.IsFocused {
			// 获得焦点时光标移到末尾
			input.CursorPosition = len([]rune(input.Text))
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
		}
		input.IsFocused = focused
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	edited := false

	if runes := s.keyboard.AppendInputChars(nil); len(runes) > 0 {
		s.insertText(input, runes)
		edited = true
	}

	if isRepeat(s.keyboard.KeyPressDuration(ebiten.KeyBackspace)) {
		s.deleteCharBefore(input)
		edited = true
	}
	if isRepeat(s.keyboard.KeyPressDuration(ebiten.KeyDelete)) {
		s.deleteCharAfter(input)
		edited = true
	}
	if isRepeat(s.keyboard.KeyPressDuration(ebiten.KeyArrowLeft)) {
		if input.CursorPosition > 0 {
			input.CursorPosition--
		}
		edited = true
	}
	if isRepeat(s.keyboard.KeyPressDuration(ebiten.KeyArrowRight)) {
		if input.CursorPosition < len([]rune(input.Text)) {
			input.CursorPosition++
		}
		edited = true
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		edited = true
	}
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		edited = true
	}

	// 回车确认输入并释放焦点
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnter) || s.keyboard.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		input.IsFocused = false
		input.CursorVisible = false
		return
	}

	// 编辑时光标应该可见
	if edited {
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// insertText 在光标位置插入文本，超出 MaxLength 的部分丢弃
func (s *TextInputSystem) insertText(input *components.TextInputComponent, typed []rune) {
	filtered := make([]rune, 0, len(typed))
	for _, r := range typed {
		if input.DigitsOnly && (r < '0' || r > '9') {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return
	}

	textRunes := []rune(input.Text)
	if input.MaxLength > 0 {
		room := input.MaxLength - len(textRunes)
		if room <= 0 {
			level.Debug(s.logger).Log("msg", "max length reached", "max", input.MaxLength)
			return
		}
		if len(filtered) > room {
			filtered = filtered[:room]
		}
	}

	pos := clampCursor(input.CursorPosition, len(textRunes))
	result := make([]rune, 0, len(textRunes)+len(filtered))
	result = append(result, textRunes[:pos]...)
	result = append(result, filtered...)
	result = append(result, textRunes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos == 0 {
		return // 光标在开头，无法删除
	}

	input.Text = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	input.CursorPosition = pos - 1
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos >= len(runes) {
		return // 光标在结尾，无法删除
	}

	input.Text = string(append(runes[:pos:pos], runes[pos+1:]...))
	input.CursorPosition = pos
}

// clampCursor 外部直接修改 Text 后光标可能越界
func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}
