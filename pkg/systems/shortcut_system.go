package systems

import (
	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// shortcut 一个键盘快捷键绑定
type shortcut struct {
	key    ebiten.Key
	action func()
}

// ShortcutSystem 键盘快捷键系统
//
// 任意输入框获得焦点时不处理快捷键，按键交给输入框。
type ShortcutSystem struct {
	entityManager *ecs.EntityManager
	keyboard      KeyboardInput
	bindings      []shortcut
}

// NewShortcutSystem 创建快捷键系统
func NewShortcutSystem(em *ecs.EntityManager) *ShortcutSystem {
	return NewShortcutSystemWithInput(em, DefaultKeyboardInput())
}

// NewShortcutSystemWithInput 创建带自定义键盘输入的快捷键系统（用于测试）
func NewShortcutSystemWithInput(em *ecs.EntityManager, keyboard KeyboardInput) *ShortcutSystem {
	return &ShortcutSystem{
		entityManager: em,
		keyboard:      keyboard,
	}
}

// Bind 绑定按键动作，同一按键可以绑定多个动作，按绑定顺序执行
func (s *ShortcutSystem) Bind(key ebiten.Key, action func()) {
	s.bindings = append(s.bindings, shortcut{key: key, action: action})
}

// Update 检测刚按下的按键并执行动作
func (s *ShortcutSystem) Update(deltaTime float64) {
	if s.typing() {
		return
	}
	for _, b := range s.bindings {
		if s.keyboard.IsKeyJustPressed(b.key) {
			b.action()
		}
	}
}

// typing 是否有输入框持有焦点
func (s *ShortcutSystem) typing() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			return true
		}
	}
	return false
}
