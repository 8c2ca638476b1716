// Package wheel 实现轮盘的旋转引擎和扇区解析
//
// Engine 是唯一修改 WheelState 的地方：启动旋转后按固定间隔 tick，
// 每次 tick 衰减角速度并累加角度，速度降到 0 以下时结束。
// 渲染和扇区解析只读取 State() 返回的快照。
package wheel

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// RandomSource 均匀分布随机数源，Float64 返回 [0, 1)
// *rand.Rand 直接满足此接口
type RandomSource interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

// Engine 旋转引擎
//
// 不是并发安全的：所有方法和调度器回调都应在同一个 goroutine（游戏主循环）中调用。
type Engine struct {
	state     WheelState
	physics   PhysicsConfig
	scheduler Scheduler
	random    RandomSource
	logger    log.Logger

	session *spinSession
	task    Task

	angleListeners  []func(angle float64)
	finishListeners []func(result SpinResult)
	countListeners  []func(sectorCount int)
}

// NewEngine 创建旋转引擎
//
// 物理参数无法保证旋转结束（无抖动或负衰减）且未设置 MaxTicks 时，
// 使用 DefaultMaxTicks 作为上限。
//
// 参数：
//   - scheduler: tick 调度器
//   - physics: 物理参数
//   - logger: 日志，可为 nil
//
// 返回：
//   - *Engine: 初始状态 Angle=0、SectorCount=8、未旋转
func NewEngine(scheduler Scheduler, physics PhysicsConfig, logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if physics.MaxTicks <= 0 && !physics.terminates() {
		level.Warn(logger).Log("msg", "physics never slows below zero, capping spin length",
			"maxJitter", physics.MaxJitter, "decayRate", physics.DecayRate, "maxTicks", DefaultMaxTicks)
		physics.MaxTicks = DefaultMaxTicks
	}
	return &Engine{
		state: WheelState{
			Angle:       0,
			SectorCount: DefaultSectors,
			Spinning:    false,
		},
		physics:   physics,
		scheduler: scheduler,
		random:    globalRandom{},
		logger:    log.With(logger, "component", "engine"),
	}
}

// SetRandomSource 替换抖动使用的随机数源（用于固定种子模拟和测试）
func (e *Engine) SetRandomSource(r RandomSource) {
	if r == nil {
		r = globalRandom{}
	}
	e.random = r
}

// State 返回当前状态的快照
func (e *Engine) State() WheelState {
	return e.state
}

// Physics 返回物理参数
func (e *Engine) Physics() PhysicsConfig {
	return e.physics
}

// IsSpinning 是否正在旋转
func (e *Engine) IsSpinning() bool {
	return e.state.Spinning
}

// OnAngleChange 注册角度变化回调
func (e *Engine) OnAngleChange(fn func(angle float64)) {
	e.angleListeners = append(e.angleListeners, fn)
}

// OnSpinFinished 注册旋转结束回调
func (e *Engine) OnSpinFinished(fn func(result SpinResult)) {
	e.finishListeners = append(e.finishListeners, fn)
}

// OnSectorCountChange 注册扇区数量变化回调
func (e *Engine) OnSectorCountChange(fn func(sectorCount int)) {
	e.countListeners = append(e.countListeners, fn)
}

// StartSpin 开始一次旋转
//
// 正在旋转时直接返回 false（同一时间最多一个旋转会话）。
// 旋转一旦开始就会跑到速度小于 0 为止。
func (e *Engine) StartSpin() bool {
	if e.state.Spinning {
		level.Debug(e.logger).Log("msg", "spin ignored, already spinning")
		return false
	}

	e.state.Spinning = true
	e.session = &spinSession{
		id:        uuid.New(),
		velocity:  e.physics.InitialVelocity,
		baseAngle: e.state.Angle,
	}
	e.task = e.scheduler.Every(e.physics.TickInterval, e.tick)

	level.Debug(e.logger).Log("msg", "spin started", "spin", e.session.id, "angle", e.state.Angle, "velocity", e.session.velocity)
	return true
}

// tick 单步模拟，返回 false 表示旋转结束
func (e *Engine) tick() bool {
	s := e.session
	if s == nil {
		return false
	}

	// 先衰减速度，再用衰减后的速度推进角度
	jitter := e.random.Float64() * e.physics.MaxJitter
	s.velocity -= s.velocity*e.physics.DecayRate + jitter
	s.ticks++

	e.state.Angle += s.velocity
	e.publishAngle()

	if s.velocity < 0 {
		e.finish(false)
		return false
	}
	if e.physics.MaxTicks > 0 && s.ticks >= e.physics.MaxTicks {
		level.Warn(e.logger).Log("msg", "spin hit tick limit", "spin", s.id, "ticks", s.ticks, "velocity", s.velocity)
		e.finish(true)
		return false
	}
	return true
}

func (e *Engine) finish(truncated bool) {
	s := e.session
	e.session = nil
	e.task = nil
	e.state.Spinning = false

	result := SpinResult{
		ID:         s.id,
		Ticks:      s.ticks,
		StartAngle: s.baseAngle,
		FinalAngle: e.state.Angle,
		Sector:     ResolveSector(e.state.Angle, e.state.SectorCount),
		Truncated:  truncated,
	}

	level.Info(e.logger).Log("msg", "spin finished", "spin", result.ID, "ticks", result.Ticks,
		"angle", result.FinalAngle, "sector", result.Sector, "sectors", e.state.SectorCount)

	for _, fn := range e.finishListeners {
		fn(result)
	}
}

// ResetSpin 把角度归零，正在旋转时忽略
func (e *Engine) ResetSpin() bool {
	if e.state.Spinning {
		level.Debug(e.logger).Log("msg", "reset ignored, spinning")
		return false
	}

	e.state.Angle = 0
	e.publishAngle()
	return true
}

// SetSectorCount 设置扇区数量
//
// 只接受 [MinSectors, MaxSectors] 内的值，其他值静默忽略。
// 旋转过程中也允许修改。
func (e *Engine) SetSectorCount(n int) bool {
	if n < MinSectors || n > MaxSectors {
		return false
	}
	if n == e.state.SectorCount {
		return true
	}

	e.state.SectorCount = n
	level.Debug(e.logger).Log("msg", "sector count changed", "sectors", n, "spinning", e.state.Spinning)

	for _, fn := range e.countListeners {
		fn(n)
	}
	return true
}

// SetSectorCountText 解析输入框文本并设置扇区数量
// 空字符串、非数字、超出范围都静默忽略
func (e *Engine) SetSectorCountText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return e.SetSectorCount(n)
}

func (e *Engine) publishAngle() {
	for _, fn := range e.angleListeners {
		fn(e.state.Angle)
	}
}
