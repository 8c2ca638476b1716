// Package main 提供轮盘配置文件校验工具
//
// 用法:
//
//	go run ./cmd/validate_config data/wheel.yaml my_wheel.yaml
//
// 对每个文件执行与游戏启动时相同的解析和 Validate 检查，
// 任意文件不合法时以退出码 1 结束。
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/roulette/pkg/config"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var files = kingpin.Arg("files", "Wheel config YAML files to check.").Required().ExistingFiles()

// validateFiles 校验所有文件，返回不合法的文件数量
func validateFiles(w io.Writer, paths []string) int {
	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadWheelConfig(path)
		if err != nil {
			fmt.Fprintf(w, "❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "✅ %s: %d 个默认扇区, 半径 %.0f, 初速度 %v rad/tick, tick %dms\n",
			path, cfg.Sectors.Default, cfg.Wheel.Radius, cfg.Physics.InitialVelocity, cfg.Physics.TickIntervalMs)
	}
	return failed
}

func main() {
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	if failed := validateFiles(os.Stdout, *files); failed > 0 {
		fmt.Printf("❌ 有 %d 个文件不合法\n", failed)
		os.Exit(1)
	}
}
