// Package main 提供轮盘旋转的无窗口模拟工具
// 用于验证旋转物理参数和扇区分布
//
// 用法:
//
//	go run ./cmd/spinsim --spins 10000 --sectors 8 --seed 42
//
// 功能:
//   - 使用与游戏相同的旋转引擎和帧调度器，按固定种子连续旋转
//   - 统计每个扇区的命中次数（含卡方统计量）
//   - 统计每次旋转的 tick 数和停止角度
package main

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/decker502/roulette/pkg/app"
	"github.com/decker502/roulette/pkg/config"
	"github.com/decker502/roulette/pkg/wheel"
	"github.com/go-kit/log"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	spins      = kingpin.Flag("spins", "Number of spins to simulate.").Default("1000").Int()
	sectors    = kingpin.Flag("sectors", "Number of sectors, 2-50.").Default("8").Int()
	seed       = kingpin.Flag("seed", "Random seed for the jitter source.").Default("1").Uint64()
	configPath = kingpin.Flag("config", "Wheel config YAML file to take physics from.").String()
	verbose    = kingpin.Flag("verbose", "Log every spin.").Short('v').Bool()
)

const frameStep = 250 * time.Millisecond

// simConfig 模拟参数
type simConfig struct {
	Spins   int
	Sectors int
	Seed    uint64
	Physics wheel.PhysicsConfig
}

// report 模拟结果
type report struct {
	Sectors    int
	Spins      int
	Hits       []int // Hits[i] 为扇区 i+1 的命中次数
	MinTicks   int
	MaxTicks   int
	TotalTicks int
	Truncated  int
	// 停止角度（归一化到 [0, 2π)）的最小值和最大值
	MinStop, MaxStop float64
}

// MeanTicks 平均每次旋转的 tick 数
func (r *report) MeanTicks() float64 {
	if r.Spins == 0 {
		return 0
	}
	return float64(r.TotalTicks) / float64(r.Spins)
}

// ChiSquare 命中次数相对均匀分布的卡方统计量
func (r *report) ChiSquare() float64 {
	if r.Spins == 0 {
		return 0
	}
	expected := float64(r.Spins) / float64(r.Sectors)
	var sum float64
	for _, h := range r.Hits {
		d := float64(h) - expected
		sum += d * d / expected
	}
	return sum
}

// simulate 连续旋转 cfg.Spins 次
// 每次旋转从上一次的停止角度继续，与游戏中不按重置连续旋转的行为一致
func simulate(cfg simConfig, logger log.Logger) (*report, error) {
	if cfg.Physics.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", cfg.Physics.TickInterval)
	}
	if cfg.Spins <= 0 {
		return nil, fmt.Errorf("spins must be positive, got %d", cfg.Spins)
	}

	scheduler := wheel.NewFrameScheduler()
	engine := wheel.NewEngine(scheduler, cfg.Physics, logger)
	engine.SetRandomSource(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)))
	if !engine.SetSectorCount(cfg.Sectors) {
		return nil, fmt.Errorf("sectors must be in [%d, %d], got %d", wheel.MinSectors, wheel.MaxSectors, cfg.Sectors)
	}

	r := &report{
		Sectors:  cfg.Sectors,
		Hits:     make([]int, cfg.Sectors),
		MinTicks: math.MaxInt,
		MinStop:  math.Inf(1),
		MaxStop:  math.Inf(-1),
	}
	engine.OnSpinFinished(func(result wheel.SpinResult) {
		r.Spins++
		r.Hits[result.Sector-1]++
		r.TotalTicks += result.Ticks
		r.MinTicks = min(r.MinTicks, result.Ticks)
		r.MaxTicks = max(r.MaxTicks, result.Ticks)
		if result.Truncated {
			r.Truncated++
		}
		stop := wheel.NormalizeAngle(result.FinalAngle)
		r.MinStop = math.Min(r.MinStop, stop)
		r.MaxStop = math.Max(r.MaxStop, stop)
	})

	// 帧调度器单次最多推进 250ms，循环推进直到本次旋转结束
	for i := 0; i < cfg.Spins; i++ {
		if !engine.StartSpin() {
			return nil, fmt.Errorf("spin %d did not start", i)
		}
		for engine.IsSpinning() {
			scheduler.Advance(frameStep)
		}
	}
	return r, nil
}

// printReport 以表格形式输出结果
func printReport(w io.Writer, r *report) {
	fmt.Fprintf(w, "spins: %d  sectors: %d\n", r.Spins, r.Sectors)
	fmt.Fprintf(w, "ticks: min %d  mean %.1f  max %d  truncated %d\n", r.MinTicks, r.MeanTicks(), r.MaxTicks, r.Truncated)
	fmt.Fprintf(w, "stop angle: min %.4f  max %.4f rad\n", r.MinStop, r.MaxStop)
	fmt.Fprintf(w, "chi-square: %.2f (df %d)\n\n", r.ChiSquare(), r.Sectors-1)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "sector\thits\tshare\t")
	peak := 0
	for _, h := range r.Hits {
		peak = max(peak, h)
	}
	for i, h := range r.Hits {
		bar := 0
		if peak > 0 {
			bar = h * 40 / peak
		}
		share := float64(h) / float64(r.Spins) * 100
		fmt.Fprintf(tw, "%d\t%d\t%.2f%%\t%s\n", i+1, h, share, strings.Repeat("#", bar))
	}
	tw.Flush()
}

func main() {
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	logger := app.NewLogger(*verbose)

	wheelConfig := config.DefaultWheelConfig()
	if *configPath != "" {
		var err error
		wheelConfig, err = config.LoadWheelConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spinsim: %v\n", err)
			os.Exit(1)
		}
	}

	r, err := simulate(simConfig{
		Spins:   *spins,
		Sectors: *sectors,
		Seed:    *seed,
		Physics: wheelConfig.PhysicsParams(),
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spinsim: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
}
