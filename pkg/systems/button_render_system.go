package systems

import (
	"image/color"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/decker502/roulette/pkg/render"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 按按钮状态选择背景色（normal/hover/pressed/disabled）
//   - 绘制边框
//   - 渲染按钮文字（居中）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(surface render.Surface) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(surface, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(surface render.Surface, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	surface.FillRect(pos.X, pos.Y, button.Width, button.Height, rgba(buttonFill(button)))
	if button.BorderWidth > 0 {
		surface.StrokeRect(pos.X, pos.Y, button.Width, button.Height, button.BorderWidth, rgba(button.BorderColor))
	}

	if button.Text != "" {
		surface.Text(pos.X+button.Width/2, pos.Y+button.Height/2, button.Text, button.TextSize, rgba(button.TextColor))
	}
}

// buttonFill 根据按钮状态选择背景色
func buttonFill(button *components.ButtonComponent) [4]uint8 {
	switch button.State {
	case components.UIHovered:
		return button.HoverColor
	case components.UIClicked:
		return button.PressedColor
	case components.UIDisabled:
		return button.DisabledColor
	default:
		return button.NormalColor
	}
}

// rgba 把组件里的 [4]uint8 颜色转换为 color.RGBA
func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
