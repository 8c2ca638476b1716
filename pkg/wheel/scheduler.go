package wheel

import "time"

// Task 定时任务句柄
type Task interface {
	// Cancel 取消任务，之后不会再触发回调
	Cancel()
	// Done 任务是否已结束（回调返回 false 或已取消）
	Done() bool
}

// Scheduler 固定间隔任务调度器
//
// Every 每隔 interval 调用一次 fn，fn 返回 false 时任务结束。
type Scheduler interface {
	Every(interval time.Duration, fn func() bool) Task
}

// maxFrameStep 单次 Advance 最多补偿的时间
// 窗口拖动、断点调试等会让帧间隔异常变长，超出部分直接丢弃
const maxFrameStep = 250 * time.Millisecond

type frameTask struct {
	interval  time.Duration
	elapsed   time.Duration
	fn        func() bool
	cancelled bool
	finished  bool
}

func (t *frameTask) Cancel() {
	t.cancelled = true
}

func (t *frameTask) Done() bool {
	return t.cancelled || t.finished
}

// FrameScheduler 由游戏主循环驱动的调度器
//
// 不创建 goroutine：每帧 Update 调用 Advance(deltaTime)，
// 调度器按固定步长累加时间，依次执行所有到期的 tick。
// 所有回调都在调用 Advance 的 goroutine 中执行。
type FrameScheduler struct {
	tasks []*frameTask
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		tasks: make([]*frameTask, 0),
	}
}

// Every 注册固定间隔任务，第一次回调发生在 interval 之后
func (s *FrameScheduler) Every(interval time.Duration, fn func() bool) Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	task := &frameTask{
		interval: interval,
		fn:       fn,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance 推进时间并执行到期的任务
func (s *FrameScheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}

	// 回调中可能注册新任务，只遍历当前快照
	current := s.tasks
	for _, task := range current {
		if task.Done() {
			continue
		}
		task.elapsed += dt
		for task.elapsed >= task.interval && !task.Done() {
			task.elapsed -= task.interval
			if !task.fn() {
				task.finished = true
			}
		}
	}

	// 移除已结束的任务
	alive := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.Done() {
			alive = append(alive, task)
		}
	}
	for i := len(alive); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = alive
}

// Pending 返回尚未结束的任务数量
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, task := range s.tasks {
		if !task.Done() {
			n++
		}
	}
	return n
}
