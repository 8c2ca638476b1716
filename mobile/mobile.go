//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先把配置复制到本目录：
//
//	mkdir -p mobile/data && cp data/wheel.yaml mobile/data/
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.roulette -o build/android/roulette.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Roulette.xcframework -v ./mobile
package mobile

import (
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/roulette/pkg/app"
	"github.com/decker502/roulette/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	logger := app.NewLogger(true)

	// 创建应用，使用内置配置
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Logger:  logger,
	})
	if err != nil {
		level.Error(logger).Log("msg", "roulette init failed", "err", err)
		panic(err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
