package entities

import (
	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
)

// 控制面板按钮配色
var (
	buttonTextColor     = [4]uint8{0, 0, 0, 255}
	buttonNormalColor   = [4]uint8{255, 209, 253, 255} // 与轮盘渐变起点同色
	buttonHoverColor    = [4]uint8{209, 250, 255, 255}
	buttonPressedColor  = [4]uint8{255, 107, 107, 255}
	buttonDisabledColor = [4]uint8{210, 210, 210, 255}
	buttonBorderColor   = [4]uint8{0, 0, 0, 255}
)

// NewPanelButton 创建控制面板按钮实体（纯色矩形按钮）
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮尺寸
//   - text: 按钮文字
//   - fontSize: 文字大小
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewPanelButton(
	em *ecs.EntityManager,
	x, y float64,
	width, height float64,
	text string,
	fontSize float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	// 添加位置组件
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	// 添加按钮组件
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:          text,
		TextSize:      fontSize,
		TextColor:     buttonTextColor,
		NormalColor:   buttonNormalColor,
		HoverColor:    buttonHoverColor,
		PressedColor:  buttonPressedColor,
		DisabledColor: buttonDisabledColor,
		BorderColor:   buttonBorderColor,
		BorderWidth:   2,
		Width:         width,
		Height:        height,
		State:         components.UINormal,
		Enabled:       true,
		OnClick:       onClick,
	})

	// 添加 UI 组件标记（方便过滤）
	ecs.AddComponent(em, entity, &components.UIComponent{
		State: components.UINormal,
	})

	return entity
}
