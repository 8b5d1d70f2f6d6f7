package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/decker502/tavola/pkg/utils"
)

// CountUpSystem 把数值从 Start 按指数缓出曲线滚动到 End。
//
// 启用后先等待 Delay，然后每帧按真实经过时间（而非帧数）计算进度：
//
//	progress = clamp((now - animStart) / duration, 0, 1)
//	value    = floor(start + (end - start) * EaseOutExpo(progress))
//
// progress 到达 1 时数值对齐到 End、IsComplete 置位，帧循环停止。
// 禁用、修改参数或释放都会使当前运行失效：每次运行带有代号，
// 过期运行的迟到回调不会覆盖新运行的状态。
type CountUpSystem struct {
	scheduler *timing.Scheduler
	opts      components.CountUpOptions
	state     components.CounterComponent

	run        int
	delayTimer *timing.Timer
	frame      *timing.Frame
	animStart  time.Duration
	started    bool
	disposed   bool
}

// NewCountUpSystem 创建数字滚动系统；opts.Enabled 为 true 时立即开始运行
func NewCountUpSystem(scheduler *timing.Scheduler, opts components.CountUpOptions) *CountUpSystem {
	s := &CountUpSystem{
		scheduler: scheduler,
		opts:      normalizeCountUpOptions(opts),
	}
	s.restart()
	return s
}

// normalizeCountUpOptions 填充默认值
func normalizeCountUpOptions(opts components.CountUpOptions) components.CountUpOptions {
	if opts.Duration <= 0 {
		opts.Duration = config.CountUpDefaultDuration
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return opts
}

// SetEnabled 启用或禁用动画。
// 禁用时立即回到 Start 并取消所有未执行的步骤；重复设置相同的值无效果。
func (s *CountUpSystem) SetEnabled(enabled bool) {
	if s.disposed || s.opts.Enabled == enabled {
		return
	}
	s.opts.Enabled = enabled
	s.restart()
}

// SetOptions 替换动画参数。参数有变化时当前运行失效并按新参数重新开始。
func (s *CountUpSystem) SetOptions(opts components.CountUpOptions) {
	if s.disposed {
		return
	}
	opts = normalizeCountUpOptions(opts)
	if opts == s.opts {
		return
	}
	s.opts = opts
	s.restart()
}

// restart 使当前运行失效、重置显示值，并在启用时开始新运行
func (s *CountUpSystem) restart() {
	s.cancel()
	s.run++
	s.started = false
	s.state.CurrentValue = s.opts.Start
	s.state.IsComplete = false

	if s.disposed || !s.opts.Enabled {
		return
	}

	run := s.run
	if s.opts.Delay > 0 {
		s.delayTimer = s.scheduler.After(s.opts.Delay, func() {
			if !s.isCurrent(run) {
				return
			}
			s.delayTimer = nil
			s.requestStep(run)
		})
		return
	}
	s.requestStep(run)
}

// requestStep 申请下一帧
func (s *CountUpSystem) requestStep(run int) {
	s.frame = s.scheduler.RequestFrame(func(now time.Duration) {
		s.step(run, now)
	})
}

// step 计算一帧的数值
func (s *CountUpSystem) step(run int, now time.Duration) {
	if !s.isCurrent(run) {
		return
	}
	s.frame = nil

	// 动画起点在第一帧时惰性确定
	if !s.started {
		s.started = true
		s.animStart = now
	}

	progress := utils.Progress(float64(now-s.animStart), float64(s.opts.Duration))
	if progress >= 1 {
		s.state.CurrentValue = s.opts.End
		s.state.IsComplete = true
		log.Printf("[CountUpSystem] Reached %s at %v", s.DisplayValue(), now)
		return
	}

	eased := utils.EaseOutExpo(progress)
	value := math.Floor(utils.Lerp(s.opts.Start, s.opts.End, eased))
	s.state.CurrentValue = utils.Clamp(value, math.Min(s.opts.Start, s.opts.End), math.Max(s.opts.Start, s.opts.End))

	s.requestStep(run)
}

// isCurrent 检查回调是否属于当前有效运行
func (s *CountUpSystem) isCurrent(run int) bool {
	return !s.disposed && s.opts.Enabled && run == s.run
}

// cancel 取消延迟定时器与未执行的帧
func (s *CountUpSystem) cancel() {
	s.delayTimer.Stop()
	s.delayTimer = nil
	s.frame.Cancel()
	s.frame = nil
}

// Dispose 取消所有未执行的步骤，之后的回调全部失效。可重复调用。
func (s *CountUpSystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.run++
	s.cancel()
}

// Value 返回当前数值
func (s *CountUpSystem) Value() float64 {
	return s.state.CurrentValue
}

// IsComplete 报告动画是否已到达终点
func (s *CountUpSystem) IsComplete() bool {
	return s.state.IsComplete
}

// IsRunning 报告是否有等待中的延迟或帧
func (s *CountUpSystem) IsRunning() bool {
	return s.delayTimer.Active() || s.frame != nil
}

// DisplayValue 返回显示文本：数值 + 后缀
func (s *CountUpSystem) DisplayValue() string {
	return utils.FormatCount(s.state.CurrentValue, s.opts.Suffix, s.opts.Grouping)
}

// Options 返回当前参数（已填充默认值）
func (s *CountUpSystem) Options() components.CountUpOptions {
	return s.opts
}

// IsDisposed 报告系统是否已释放
func (s *CountUpSystem) IsDisposed() bool {
	return s.disposed
}

// State 返回状态快照
func (s *CountUpSystem) State() components.CounterComponent {
	return s.state
}
