package scenes

import (
	"image/color"
	"time"

	"github.com/decker502/roulette/pkg/game"
	"github.com/decker502/roulette/pkg/modules"
	"github.com/decker502/roulette/pkg/render"
	"github.com/decker502/roulette/pkg/wheel"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WheelSceneConfig 轮盘场景依赖
type WheelSceneConfig struct {
	Physics     wheel.PhysicsConfig
	Style       render.WheelStyle
	Background  color.Color
	SectorCount int // 初始扇区数量，非法值保留默认值

	FontSource *text.GoTextFaceSource // 为 nil 时不绘制文字
	Audio      *game.AudioManager     // 可为 nil
	Settings   *game.SettingsManager  // 可为 nil

	// Input 控制面板输入源，零值使用 Ebitengine 默认输入
	Input modules.ControlPanelInput
	// Random 抖动随机数源，为 nil 时使用全局随机数
	Random wheel.RandomSource
}

// WheelScene 轮盘场景
//
// 旋转引擎是唯一的状态机；场景把引擎事件转发给渲染器、控制面板和音效，
// 并把每帧经过的时间交给帧调度器，由调度器驱动 10ms 的物理 tick。
type WheelScene struct {
	engine    *wheel.Engine
	scheduler *wheel.FrameScheduler
	renderer  *render.WheelRenderer
	surface   *render.EbitenSurface
	panel     *modules.ControlPanelModule

	audio    *game.AudioManager
	settings *game.SettingsManager
	logger   log.Logger

	// lastSector 上一次发布角度时解析出的扇区，用于判断是否越过边界
	lastSector int
}

// NewWheelScene 创建轮盘场景
func NewWheelScene(cfg WheelSceneConfig, logger log.Logger) *WheelScene {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	scheduler := wheel.NewFrameScheduler()
	engine := wheel.NewEngine(scheduler, cfg.Physics, logger)
	if cfg.Random != nil {
		engine.SetRandomSource(cfg.Random)
	}
	if cfg.SectorCount != 0 && !engine.SetSectorCount(cfg.SectorCount) {
		level.Warn(logger).Log("msg", "initial sector count out of range, using default",
			"sectors", cfg.SectorCount, "default", wheel.DefaultSectors)
	}

	s := &WheelScene{
		engine:    engine,
		scheduler: scheduler,
		renderer:  render.NewWheelRenderer(cfg.Style),
		surface:   render.NewEbitenSurface(cfg.FontSource, cfg.Background),
		audio:     cfg.Audio,
		settings:  cfg.Settings,
		logger:    log.With(logger, "component", "wheel_scene"),
	}

	state := engine.State()
	s.lastSector = state.Sector()

	soundEnabled := s.audio != nil && s.audio.SoundEnabled()
	var onSoundToggle func() bool
	if s.audio != nil {
		onSoundToggle = s.toggleSound
	}

	s.panel = modules.NewControlPanelModule(state.SectorCount, soundEnabled, modules.ControlPanelCallbacks{
		OnSpin:        s.Spin,
		OnReset:       s.Reset,
		OnSectorText:  engine.SetSectorCountText,
		OnSoundToggle: onSoundToggle,
	}, cfg.Input, logger)
	s.panel.SetReadout(s.lastSector)

	s.panel.BindShortcut(ebiten.KeySpace, s.Spin)
	s.panel.BindShortcut(ebiten.KeyR, s.Reset)

	engine.OnAngleChange(s.onAngleChange)
	engine.OnSectorCountChange(s.onSectorCountChange)
	engine.OnSpinFinished(s.onSpinFinished)

	return s
}

// Engine 返回旋转引擎
func (s *WheelScene) Engine() *wheel.Engine {
	return s.engine
}

// Panel 返回控制面板
func (s *WheelScene) Panel() *modules.ControlPanelModule {
	return s.panel
}

// Spin 开始旋转，正在旋转时忽略
func (s *WheelScene) Spin() {
	if s.engine.StartSpin() {
		s.panel.SetSpinning(true)
	}
}

// Reset 角度归零，正在旋转时忽略
func (s *WheelScene) Reset() {
	s.engine.ResetSpin()
}

// Update 处理输入并推进物理模拟
func (s *WheelScene) Update(deltaTime float64) {
	s.panel.Update(deltaTime)
	s.scheduler.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 绘制轮盘和控制面板
func (s *WheelScene) Draw(screen *ebiten.Image) {
	s.surface.Bind(screen)
	s.DrawTo(s.surface)
}

// DrawTo 绘制到任意 Surface
func (s *WheelScene) DrawTo(surface render.Surface) {
	state := s.engine.State()
	s.renderer.Draw(surface, state.Angle, state.SectorCount)
	s.panel.Draw(surface)
}

// SaveOnExit 保存偏好设置
func (s *WheelScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		level.Warn(s.logger).Log("msg", "failed to save preferences", "err", err)
		return false
	}
	return true
}

// onAngleChange 每次角度变化都重新解析扇区，旋转中越过边界时播放 tick 音效
func (s *WheelScene) onAngleChange(angle float64) {
	state := s.engine.State()
	sector := wheel.ResolveSector(angle, state.SectorCount)
	if sector != s.lastSector && state.Spinning && s.audio != nil {
		s.audio.PlaySound(game.SoundTick)
	}
	s.lastSector = sector
	s.panel.SetReadout(sector)
}

func (s *WheelScene) onSectorCountChange(n int) {
	s.lastSector = wheel.ResolveSector(s.engine.State().Angle, n)
	s.panel.SetReadout(s.lastSector)
	s.panel.SetSectorCount(n)
}

func (s *WheelScene) onSpinFinished(result wheel.SpinResult) {
	s.panel.SetSpinning(false)
	s.panel.SetReadout(result.Sector)
	if s.audio != nil {
		s.audio.PlaySound(game.SoundFinish)
	}
}

func (s *WheelScene) toggleSound() bool {
	enabled := s.audio.SetSoundEnabled(!s.audio.SoundEnabled())
	level.Debug(s.logger).Log("msg", "sound toggled", "enabled", enabled)
	return enabled
}
