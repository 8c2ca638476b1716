package systems

import (
	"strconv"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/decker502/roulette/pkg/render"
)

// ReadoutRenderSystem 绘制扇区读数和静态标签
type ReadoutRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewReadoutRenderSystem 创建读数渲染系统
func NewReadoutRenderSystem(em *ecs.EntityManager) *ReadoutRenderSystem {
	return &ReadoutRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有读数和标签
func (s *ReadoutRenderSystem) Draw(surface render.Surface) {
	for _, id := range ecs.GetEntitiesWith2[*components.ReadoutComponent, *components.PositionComponent](s.entityManager) {
		readout, _ := ecs.GetComponent[*components.ReadoutComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		surface.Text(pos.X, pos.Y, FormatReadout(readout.Value), readout.TextSize, rgba(readout.TextColor))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		surface.Text(pos.X, pos.Y, label.Text, label.TextSize, rgba(label.TextColor))
	}
}

// FormatReadout 读数显示格式 "[ n ]"
func FormatReadout(n int) string {
	return "[ " + strconv.Itoa(n) + " ]"
}
