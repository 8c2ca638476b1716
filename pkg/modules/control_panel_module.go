package modules

import (
	"strconv"

	"github.com/decker502/roulette/pkg/components"
	"github.com/decker502/roulette/pkg/config"
	"github.com/decker502/roulette/pkg/ecs"
	"github.com/decker502/roulette/pkg/entities"
	"github.com/decker502/roulette/pkg/render"
	"github.com/decker502/roulette/pkg/systems"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// ControlPanelModule 轮盘右侧的控制面板
//
// 职责：
//   - 管理面板 UI 实体（读数、扇区数量输入框、旋转/重置/音效按钮）
//   - 驱动交互系统和渲染系统
//   - 通过回调与旋转引擎交互，自身不持有任何轮盘状态
type ControlPanelModule struct {
	entityManager *ecs.EntityManager
	logger        log.Logger

	// 系统
	buttonSystem          *systems.ButtonSystem
	textInputSystem       *systems.TextInputSystem
	shortcutSystem        *systems.ShortcutSystem
	buttonRenderSystem    *systems.ButtonRenderSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	readoutRenderSystem   *systems.ReadoutRenderSystem

	// UI 元素实体
	readoutEntity ecs.EntityID
	inputEntity   ecs.EntityID
	spinEntity    ecs.EntityID
	resetEntity   ecs.EntityID
	soundEntity   ecs.EntityID

	callbacks ControlPanelCallbacks
}

// ControlPanelCallbacks 控制面板回调函数集合
type ControlPanelCallbacks struct {
	OnSpin  func() // 点击旋转按钮
	OnReset func() // 点击重置按钮
	// OnSectorText 输入框文本变化，返回值表示是否被接受
	OnSectorText func(text string) bool
	// OnSoundToggle 切换音效，返回切换后的状态（可选，为 nil 时不创建音效按钮）
	OnSoundToggle func() bool
}

// ControlPanelInput 控制面板使用的输入源
// 为零值时使用 Ebitengine 默认输入
type ControlPanelInput struct {
	Pointer  systems.PointerInput
	Keyboard systems.KeyboardInput
}

// NewControlPanelModule 创建控制面板模块
//
// 参数:
//   - sectorCount: 初始扇区数量
//   - soundEnabled: 音效按钮的初始状态
//   - callbacks: 回调函数集合
//   - input: 输入源（测试时注入 mock）
//   - logger: 日志
func NewControlPanelModule(
	sectorCount int,
	soundEnabled bool,
	callbacks ControlPanelCallbacks,
	input ControlPanelInput,
	logger log.Logger,
) *ControlPanelModule {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if input.Pointer == nil {
		input.Pointer = systems.DefaultPointerInput()
	}
	if input.Keyboard == nil {
		input.Keyboard = systems.DefaultKeyboardInput()
	}

	em := ecs.NewEntityManager()
	m := &ControlPanelModule{
		entityManager:         em,
		logger:                log.With(logger, "component", "control_panel"),
		buttonSystem:          systems.NewButtonSystemWithInput(em, input.Pointer),
		textInputSystem:       systems.NewTextInputSystemWithInput(em, input.Pointer, input.Keyboard, logger),
		shortcutSystem:        systems.NewShortcutSystemWithInput(em, input.Keyboard),
		buttonRenderSystem:    systems.NewButtonRenderSystem(em),
		textInputRenderSystem: systems.NewTextInputRenderSystem(em),
		readoutRenderSystem:   systems.NewReadoutRenderSystem(em),
		callbacks:             callbacks,
	}

	m.createUIElements(sectorCount, soundEnabled)

	level.Debug(m.logger).Log("msg", "control panel initialized", "sectors", sectorCount)
	return m
}

// createUIElements 按 layout_config 创建面板实体
func (m *ControlPanelModule) createUIElements(sectorCount int, soundEnabled bool) {
	em := m.entityManager
	centerX := config.PanelX + config.PanelWidth/2

	// 读数初始值为重置角度下的结果，随后由 SetReadout 更新
	m.readoutEntity = entities.NewReadoutEntity(em, centerX, config.ResultY, config.ResultTextSize, sectorCount)

	entities.NewLabelEntity(em,
		config.PanelX+config.CountLabelWidth/2, config.CountInputY+config.CountInputHeight/2,
		"N", config.UITextSize)

	m.inputEntity = entities.NewSectorInputEntity(em,
		config.PanelX+config.CountLabelWidth, config.CountInputY,
		config.PanelWidth-config.CountLabelWidth, config.CountInputHeight,
		config.UITextSize, sectorCount, m.onSectorText)

	left, right := config.ButtonColumns()
	m.spinEntity = entities.NewPanelButton(em, left, config.ButtonY,
		config.ButtonWidth, config.ButtonHeight, "Spin", config.UITextSize, m.spin)
	m.resetEntity = entities.NewPanelButton(em, right, config.ButtonY,
		config.ButtonWidth, config.ButtonHeight, "Reset", config.UITextSize, m.reset)

	if m.callbacks.OnSoundToggle != nil {
		m.soundEntity = entities.NewPanelButton(em, left, config.SoundButtonY,
			config.PanelWidth, config.ButtonHeight, soundLabel(soundEnabled), config.UITextSize, m.toggleSound)
	}
}

// BindShortcut 绑定键盘快捷键
func (m *ControlPanelModule) BindShortcut(key ebiten.Key, action func()) {
	m.shortcutSystem.Bind(key, action)
}

// Update 更新面板交互
func (m *ControlPanelModule) Update(deltaTime float64) {
	m.textInputSystem.Update(deltaTime)
	m.buttonSystem.Update(deltaTime)
	m.shortcutSystem.Update(deltaTime)
	m.entityManager.RemoveMarkedEntities()
}

// Draw 绘制面板
func (m *ControlPanelModule) Draw(surface render.Surface) {
	m.readoutRenderSystem.Draw(surface)
	m.textInputRenderSystem.Draw(surface)
	m.buttonRenderSystem.Draw(surface)
}

// SetReadout 更新读数
func (m *ControlPanelModule) SetReadout(sector int) {
	if readout, ok := ecs.GetComponent[*components.ReadoutComponent](m.entityManager, m.readoutEntity); ok {
		readout.Value = sector
	}
}

// Readout 返回当前读数
func (m *ControlPanelModule) Readout() int {
	if readout, ok := ecs.GetComponent[*components.ReadoutComponent](m.entityManager, m.readoutEntity); ok {
		return readout.Value
	}
	return 0
}

// SetSectorCount 同步输入框显示的扇区数量
// 用户正在编辑时不覆盖输入框
func (m *ControlPanelModule) SetSectorCount(n int) {
	input, ok := ecs.GetComponent[*components.TextInputComponent](m.entityManager, m.inputEntity)
	if !ok || input.IsFocused {
		return
	}
	input.Text = strconv.Itoa(n)
	input.CursorPosition = len(input.Text)
}

// SectorText 返回输入框当前文本
func (m *ControlPanelModule) SectorText() string {
	if input, ok := ecs.GetComponent[*components.TextInputComponent](m.entityManager, m.inputEntity); ok {
		return input.Text
	}
	return ""
}

// SetSpinning 旋转期间禁用旋转和重置按钮
func (m *ControlPanelModule) SetSpinning(spinning bool) {
	for _, id := range []ecs.EntityID{m.spinEntity, m.resetEntity} {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id); ok {
			button.Enabled = !spinning
		}
	}
}

func (m *ControlPanelModule) spin() {
	if m.callbacks.OnSpin != nil {
		m.callbacks.OnSpin()
	}
}

func (m *ControlPanelModule) reset() {
	if m.callbacks.OnReset != nil {
		m.callbacks.OnReset()
	}
}

// onSectorText 输入框文本变化；不合法的值保留在输入框中，但不生效
func (m *ControlPanelModule) onSectorText(text string) {
	if m.callbacks.OnSectorText == nil {
		return
	}
	if !m.callbacks.OnSectorText(text) {
		level.Debug(m.logger).Log("msg", "sector count ignored", "text", text)
	}
}

func (m *ControlPanelModule) toggleSound() {
	enabled := m.callbacks.OnSoundToggle()
	if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, m.soundEntity); ok {
		button.Text = soundLabel(enabled)
	}
}

func soundLabel(enabled bool) string {
	if enabled {
		return "Sound: On"
	}
	return "Sound: Off"
}
