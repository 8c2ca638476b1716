// Package app 提供轮盘应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/roulette/pkg/config"
	"github.com/decker502/roulette/pkg/game"
	"github.com/decker502/roulette/pkg/scenes"
	"github.com/decker502/roulette/pkg/utils"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "roulette"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的轮盘配置文件，为空则使用内置 data/wheel.yaml
	ConfigPath string
	// FontPath 字体文件路径，为空或加载失败时使用内置 Go 字体
	FontPath string
	// Sectors 初始扇区数量，0 表示使用配置文件中的默认值
	Sectors int

	// AppName 偏好设置的存储命名空间，为空时使用 DefaultAppName
	AppName string
	// DisableAudio 不创建音频上下文（无声卡环境和测试）
	DisableAudio bool
	// Logger 为 nil 时按 Verbose 创建
	Logger log.Logger
}

// App 是轮盘应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	wheelConfig  *config.WheelConfig
	logger       log.Logger
	verbose      bool
	mobile       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewLogger 创建 logfmt 日志
// 未启用 verbose 时返回丢弃所有输出的日志
func NewLogger(verbose bool) log.Logger {
	if !verbose {
		return log.NewNopLogger()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, level.AllowDebug())
}

// NewApp 创建并初始化轮盘应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源（使用 --config 时除外）。
func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(cfg.Verbose)
	}
	appLogger := log.With(logger, "component", "app")

	// 加载轮盘配置
	wheelConfig, err := loadWheelConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	level.Debug(appLogger).Log("msg", "wheel config loaded", "path", cfg.ConfigPath,
		"sectors", wheelConfig.Sectors.Default, "tickMs", wheelConfig.Physics.TickIntervalMs)

	sectors := wheelConfig.Sectors.Default
	if cfg.Sectors != 0 {
		sectors = cfg.Sectors
	}

	// 偏好设置，gdata 不可用时降级为仅内存
	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		level.Warn(appLogger).Log("msg", "gdata not available, preferences will not be saved", "err", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager, logger)

	// 音频上下文
	var audioContext *audio.Context
	if !cfg.DisableAudio {
		audioContext = audio.NewContext(game.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settings, logger)

	// 字体
	resourceManager := game.NewResourceManager(logger)
	fontSource := resourceManager.FontSourceOrDefault(cfg.FontPath)

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SwitchTo(scenes.NewWheelScene(scenes.WheelSceneConfig{
		Physics:     wheelConfig.PhysicsParams(),
		Style:       wheelConfig.WheelStyle(),
		Background:  wheelConfig.BackgroundColor(),
		SectorCount: sectors,
		FontSource:  fontSource,
		Audio:       audioManager,
		Settings:    settings,
	}, logger))

	level.Info(appLogger).Log("msg", "app initialized", "sectors", sectors, "sound", audioManager.SoundEnabled())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		wheelConfig:  wheelConfig,
		logger:       appLogger,
		verbose:      cfg.Verbose,
		mobile:       utils.IsMobile(),
	}, nil
}

// loadWheelConfig 优先加载磁盘配置，否则加载内置配置
func loadWheelConfig(path string) (*config.WheelConfig, error) {
	if path != "" {
		wheelConfig, err := config.LoadWheelConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return wheelConfig, nil
	}
	wheelConfig, err := config.LoadEmbeddedWheelConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded config: %w", err)
	}
	return wheelConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			level.Debug(a.logger).Log("msg", "delayed SetWindowSize", "width", w, "height", h)
			a.pendingWindowSizeReset = false
		}
	}

	// 移动端没有窗口，不处理全屏和退出快捷键
	if !a.mobile {
		// F11 切换全屏
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			a.toggleFullscreen()
		}

		// Esc 退出
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.Close()
			return ebiten.Termination
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		level.Debug(a.logger).Log("msg", "exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	if err := a.settings.Save(); err != nil {
		level.Warn(a.logger).Log("msg", "failed to save fullscreen preference", "err", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.wheelConfig.Window.Width, a.wheelConfig.Window.Height
}

// WindowSize 返回启动时的窗口尺寸
func (a *App) WindowSize() (int, int) {
	w := int(float64(a.wheelConfig.Window.Width) * config.WindowScale)
	h := int(float64(a.wheelConfig.Window.Height) * config.WindowScale)
	return w, h
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.wheelConfig.Window.Title
}

// StartFullscreen 返回上次退出时是否处于全屏
func (a *App) StartFullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 保存偏好设置
// 窗口关闭或 Esc 退出时调用，可重复调用
func (a *App) Close() {
	if !a.sceneManager.SaveOnExit() {
		level.Warn(a.logger).Log("msg", "failed to save on exit")
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
