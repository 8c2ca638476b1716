package wheel

import (
	"time"

	"github.com/google/uuid"
)

// 扇区数量限制
const (
	MinSectors     = 2
	MaxSectors     = 50
	DefaultSectors = 8

	// DefaultMaxTicks 单次旋转的默认 tick 上限
	DefaultMaxTicks = 10000
)

// WheelState 轮盘状态
//
// Angle 不做归一化存储，多次旋转会一直累加；
// 所有几何计算和扇区解析都自行取模。
// 对外只以值拷贝的形式暴露（见 Engine.State）。
type WheelState struct {
	Angle       float64 // 累计转角（弧度）
	SectorCount int     // 扇区数量 [2, 50]
	Spinning    bool    // 是否正在旋转
}

// Sector 返回当前指针对准的扇区编号
func (s WheelState) Sector() int {
	return ResolveSector(s.Angle, s.SectorCount)
}

// PhysicsConfig 旋转物理参数
//
// 只有 MaxJitter > 0 且 DecayRate >= 0 时速度才一定会降到 0 以下；
// 否则 NewEngine 会强制使用 DefaultMaxTicks 作为上限。
type PhysicsConfig struct {
	InitialVelocity float64       // 初始角速度（弧度/tick）
	DecayRate       float64       // 每 tick 按比例衰减的速度
	MaxJitter       float64       // 每 tick 额外衰减的随机量上限，取值 [0, MaxJitter)
	TickInterval    time.Duration // tick 间隔
	MaxTicks        int           // 单次旋转的 tick 上限，0 表示不限制
}

// DefaultPhysics 返回默认物理参数
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		InitialVelocity: 0.3,
		DecayRate:       0.01,
		MaxJitter:       0.00005,
		TickInterval:    10 * time.Millisecond,
		MaxTicks:        DefaultMaxTicks,
	}
}

// terminates 速度是否一定会在有限步内降到 0 以下
func (p PhysicsConfig) terminates() bool {
	return p.MaxJitter > 0 && p.DecayRate >= 0
}

// spinSession 单次旋转的临时状态，只在 Engine 内部使用
type spinSession struct {
	id        uuid.UUID
	velocity  float64
	baseAngle float64
	ticks     int
}

// SpinResult 一次旋转结束后的结果
type SpinResult struct {
	ID         uuid.UUID
	Ticks      int
	StartAngle float64
	FinalAngle float64
	Sector     int
	Truncated  bool // 达到 MaxTicks 被强制结束
}
