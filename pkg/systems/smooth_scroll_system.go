package systems

import (
	"log"
	"time"

	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/decker502/tavola/pkg/utils"
)

// ScrollTarget 可被平滑滚动驱动的滚动容器
type ScrollTarget interface {
	ScrollOffset() float64
	ScrollTo(offset float64)
}

var _ ScrollTarget = (*game.ScrollState)(nil)

// SmoothScrollSystem 以缓出曲线把滚动偏移动画到目标值（"回到顶部"）
//
// 每帧按经过时间计算偏移；新的滚动请求、用户输入（Cancel）或 Dispose 都会使当前动画失效。
type SmoothScrollSystem struct {
	scheduler *timing.Scheduler
	target    ScrollTarget
	duration  time.Duration

	from, to  float64
	startedAt time.Duration
	frame     *timing.Frame
	run       int
	disposed  bool
}

// NewSmoothScrollSystem 创建平滑滚动系统
func NewSmoothScrollSystem(scheduler *timing.Scheduler, target ScrollTarget, duration time.Duration) *SmoothScrollSystem {
	return &SmoothScrollSystem{
		scheduler: scheduler,
		target:    target,
		duration:  duration,
	}
}

// ScrollTo 开始滚动到 offset，取消进行中的动画
func (s *SmoothScrollSystem) ScrollTo(offset float64) {
	if s.disposed {
		return
	}
	s.Cancel()

	s.from = s.target.ScrollOffset()
	s.to = offset
	if s.from == s.to {
		return
	}
	s.startedAt = s.scheduler.Now()

	run := s.run
	s.frame = s.scheduler.RequestFrame(func(now time.Duration) { s.step(run, now) })
	log.Printf("[SmoothScrollSystem] %.0f → %.0f", s.from, s.to)
}

// step 计算一帧的偏移
func (s *SmoothScrollSystem) step(run int, now time.Duration) {
	if s.disposed || run != s.run {
		return
	}
	s.frame = nil

	progress := utils.Progress(float64(now-s.startedAt), float64(s.duration))
	if progress >= 1 {
		s.target.ScrollTo(s.to)
		return
	}
	s.target.ScrollTo(utils.Lerp(s.from, s.to, utils.EaseOutQuad(progress)))
	s.frame = s.scheduler.RequestFrame(func(now time.Duration) { s.step(run, now) })
}

// Cancel 停止进行中的动画，偏移停留在当前位置
func (s *SmoothScrollSystem) Cancel() {
	s.run++
	s.frame.Cancel()
	s.frame = nil
}

// IsScrolling 报告是否有进行中的动画
func (s *SmoothScrollSystem) IsScrolling() bool {
	return s.frame != nil
}

// Dispose 取消动画，之后的请求全部忽略。可重复调用。
func (s *SmoothScrollSystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.Cancel()
}
