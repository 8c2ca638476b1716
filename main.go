package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/roulette/pkg/app"
	"github.com/decker502/roulette/pkg/embedded"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	verbose    = kingpin.Flag("verbose", "Enable verbose logging.").Short('v').Bool()
	configPath = kingpin.Flag("config", "Wheel config YAML file (defaults to the embedded data/wheel.yaml).").String()
	sectors    = kingpin.Flag("sectors", "Initial number of sectors, 2-50.").Default("0").Int()
	fontPath   = kingpin.Flag("font", "TTF/OTF font file (defaults to the bundled Go font).").String()
	noAudio    = kingpin.Flag("no-audio", "Do not open an audio device.").Bool()
)

func main() {
	kingpin.HelpFlag.Short('h')
	kingpin.CommandLine.UsageWriter(os.Stdout)
	kingpin.Parse()

	logger := app.NewLogger(*verbose)

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		FontPath:     *fontPath,
		Sectors:      *sectors,
		DisableAudio: *noAudio,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "roulette: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	// RunGame 阻塞直到窗口关闭或 Update 返回 ebiten.Termination
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		level.Error(logger).Log("msg", "game loop exited", "err", err)
		gameApp.Close()
		os.Exit(1)
	}
	gameApp.Close()
}
