package wheel

import (
	"testing"
	"time"
)

func TestFrameScheduler_RunsDueTicks(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		steps    []time.Duration
		want     int
	}{
		{"单步不足一个间隔", 10 * time.Millisecond, []time.Duration{9 * time.Millisecond}, 0},
		{"正好一个间隔", 10 * time.Millisecond, []time.Duration{10 * time.Millisecond}, 1},
		{"60FPS 一帧", 10 * time.Millisecond, []time.Duration{16666667}, 1},
		{"60FPS 六帧", 10 * time.Millisecond, []time.Duration{16666667, 16666667, 16666667, 16666667, 16666667, 16666667}, 10},
		{"超长帧被截断", 10 * time.Millisecond, []time.Duration{5 * time.Second}, 25},
		{"零和负数被忽略", 10 * time.Millisecond, []time.Duration{0, -time.Second}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFrameScheduler()
			count := 0
			s.Every(tt.interval, func() bool {
				count++
				return true
			})
			for _, step := range tt.steps {
				s.Advance(step)
			}
			if count != tt.want {
				t.Errorf("ticks: got %d, want %d", count, tt.want)
			}
		})
	}
}

func TestFrameScheduler_StopsWhenCallbackReturnsFalse(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	task := s.Every(10*time.Millisecond, func() bool {
		count++
		return count < 3
	})

	s.Advance(100 * time.Millisecond)

	if count != 3 {
		t.Errorf("ticks: got %d, want 3", count)
	}
	if !task.Done() {
		t.Error("task should be done")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending: got %d, want 0", s.Pending())
	}
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	task := s.Every(10*time.Millisecond, func() bool {
		count++
		return true
	})

	s.Advance(30 * time.Millisecond)
	task.Cancel()
	s.Advance(30 * time.Millisecond)

	if count != 3 {
		t.Errorf("ticks: got %d, want 3", count)
	}
	if !task.Done() {
		t.Error("cancelled task should report Done")
	}
}

func TestFrameScheduler_CancelFromCallback(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	var task Task
	task = s.Every(10*time.Millisecond, func() bool {
		count++
		if count == 2 {
			task.Cancel()
		}
		return true
	})

	s.Advance(100 * time.Millisecond)

	if count != 2 {
		t.Errorf("ticks: got %d, want 2", count)
	}
}

func TestFrameScheduler_ScheduleFromCallback(t *testing.T) {
	s := NewFrameScheduler()
	inner := 0
	s.Every(10*time.Millisecond, func() bool {
		s.Every(10*time.Millisecond, func() bool {
			inner++
			return true
		})
		return false
	})

	// 新任务在下一次 Advance 才开始计时
	s.Advance(10 * time.Millisecond)
	if inner != 0 {
		t.Errorf("inner ticks after first advance: got %d, want 0", inner)
	}
	s.Advance(20 * time.Millisecond)
	if inner != 2 {
		t.Errorf("inner ticks: got %d, want 2", inner)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending: got %d, want 1", s.Pending())
	}
}
