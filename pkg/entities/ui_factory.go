package entities

import (
	"strconv"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/decker502/roulette/pkg/wheel"
)

var (
	panelTextColor   = [4]uint8{0, 0, 0, 255}
	inputBorderColor = [4]uint8{90, 90, 90, 255}
	inputFocusColor  = [4]uint8{255, 107, 107, 255}
)

// NewSectorInputEntity 创建扇区数量输入框实体
//
// 输入框只接受数字，最多两位（MaxSectors = 50）。
// onChange 收到输入框的新文本，由调用方决定是否接受。
func NewSectorInputEntity(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	fontSize float64,
	initial int,
	onChange func(text string),
) ecs.EntityID {
	entity := em.CreateEntity()

	text := strconv.Itoa(initial)

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Text:           text,
		Width:          width,
		Height:         height,
		TextSize:       fontSize,
		TextColor:      panelTextColor,
		BorderColor:    inputBorderColor,
		FocusColor:     inputFocusColor,
		CursorPosition: len(text),
		MaxLength:      len(strconv.Itoa(wheel.MaxSectors)),
		DigitsOnly:     true,
		Placeholder:    strconv.Itoa(wheel.MinSectors) + "-" + strconv.Itoa(wheel.MaxSectors),
		OnChange:       onChange,
	})
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})

	return entity
}

// NewReadoutEntity 创建扇区读数实体，(x, y) 为文字中心
func NewReadoutEntity(em *ecs.EntityManager, x, y float64, fontSize float64, value int) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ReadoutComponent{
		Value:     value,
		TextSize:  fontSize,
		TextColor: panelTextColor,
	})

	return entity
}

// NewLabelEntity 创建静态文字标签实体，(x, y) 为文字中心
func NewLabelEntity(em *ecs.EntityManager, x, y float64, text string, fontSize float64) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:      text,
		TextSize:  fontSize,
		TextColor: panelTextColor,
	})

	return entity
}
