package systems

import (
	"image/color"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/decker502/roulette/pkg/render"
)

// placeholderColor 占位符文字颜色
var placeholderColor = color.RGBA{150, 150, 150, 255}

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(surface render.Surface) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.DrawInputBox(surface, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(surface render.Surface, input *components.TextInputComponent, pos *components.PositionComponent) {
	x, y := pos.X, pos.Y
	cx, cy := x+input.Width/2, y+input.Height/2

	// 1. 边框，获得焦点时高亮
	border := input.BorderColor
	if input.IsFocused {
		border = input.FocusColor
	}
	surface.StrokeRect(x, y, input.Width, input.Height, 3, rgba(border))

	// 2. 文本或占位符（水平居中）
	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		surface.Text(cx, cy, input.Placeholder, input.TextSize, placeholderColor)
	} else if input.Text != "" {
		surface.Text(cx, cy, input.Text, input.TextSize, rgba(input.TextColor))
	}

	// 3. 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(surface, input, cx, cy)
	}
}

// drawCursor 在光标位置绘制竖线
func (s *TextInputRenderSystem) drawCursor(surface render.Surface, input *components.TextInputComponent, cx, cy float64) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))

	fullWidth := surface.TextWidth(input.Text, input.TextSize)
	beforeWidth := surface.TextWidth(string(runes[:pos]), input.TextSize)

	cursorX := cx - fullWidth/2 + beforeWidth
	cursorHeight := input.TextSize
	surface.FillRect(cursorX, cy-cursorHeight/2, 2, cursorHeight, rgba(input.TextColor))
}
