package systems

import (
	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标点击（松开时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return NewButtonSystemWithInput(em, DefaultPointerInput())
}

// NewButtonSystemWithInput 创建带自定义指针输入的按钮系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input PointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
// 检测指针位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	x, y := s.input.Position()
	mouseX, mouseY := float64(x), float64(y)
	pressed := s.input.Pressed()
	released := s.input.JustReleased()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !pointInRect(mouseX, mouseY, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			// 按下状态（显示按下效果）
			button.State = components.UIClicked
		case released:
			// 释放瞬间触发回调，释放后恢复悬停状态
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}
