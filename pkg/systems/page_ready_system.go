package systems

import (
	"log"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/decker502/tavola/pkg/utils"
)

// PageReadySystem 管理加载遮罩：等待环境加载完成 → 最短显示 → 淡出 → 就绪。
//
// 状态流转：waiting-for-load → holding → fading → done
//   - 加载完成信号：waiting-for-load → holding
//   - 600ms 后：FadeOut = true（holding → fading）
//   - 再 400ms 后：IsLoading = false，发出就绪回调（fading → done）
//
// 创建即注册加载信号；若信号已触发则立即开始，不会重复注册也不会漏掉信号。
type PageReadySystem struct {
	scheduler *timing.Scheduler
	state     components.LoadStateComponent
	onReady   func()
	onChange  func(components.LoadStateComponent)

	unsubscribe func()
	timer       *timing.Timer
	disposed    bool
}

// NewPageReadySystem 创建页面就绪系统并注册加载信号。onReady 可为 nil。
func NewPageReadySystem(scheduler *timing.Scheduler, signal *game.LoadSignal, onReady func()) *PageReadySystem {
	s := &PageReadySystem{
		scheduler: scheduler,
		onReady:   onReady,
		state: components.LoadStateComponent{
			IsLoading: true,
			Phase:     components.LoadPhaseWaiting,
		},
	}

	if signal.Loaded() {
		log.Printf("[PageReadySystem] Environment already loaded, starting immediately")
		s.handleLoaded()
	} else {
		s.unsubscribe = signal.Subscribe(s.handleLoaded)
	}

	return s
}

// SetObserver 设置状态变化观察者（在就绪回调之前调用）
func (s *PageReadySystem) SetObserver(fn func(components.LoadStateComponent)) {
	s.onChange = fn
}

// notify 通知观察者
func (s *PageReadySystem) notify() {
	if s.onChange != nil {
		s.onChange(s.state)
	}
}

// handleLoaded 处理加载完成信号
func (s *PageReadySystem) handleLoaded() {
	if s.disposed || s.state.Phase != components.LoadPhaseWaiting {
		return
	}
	s.releaseListener()

	s.state.Phase = components.LoadPhaseHolding
	log.Printf("[PageReadySystem] State: waiting-for-load → holding (%v)", s.scheduler.Now())
	s.timer = s.scheduler.After(config.PageReadyMinDisplay, s.beginFade)
	s.notify()
}

// beginFade 最短显示时间结束，开始淡出
func (s *PageReadySystem) beginFade() {
	if s.disposed || s.state.Phase != components.LoadPhaseHolding || !s.state.IsLoading {
		return
	}

	s.state.FadeOut = true
	s.state.Phase = components.LoadPhaseFading
	log.Printf("[PageReadySystem] State: holding → fading (%v)", s.scheduler.Now())
	s.timer = s.scheduler.After(config.PageReadyFadeDuration, s.finish)
	s.notify()
}

// finish 淡出结束，标记就绪并发出回调
func (s *PageReadySystem) finish() {
	if s.disposed || s.state.Phase != components.LoadPhaseFading || !s.state.FadeOut {
		return
	}

	s.timer = nil
	s.state.IsLoading = false
	s.state.Phase = components.LoadPhaseDone
	log.Printf("[PageReadySystem] State: fading → done (%v)", s.scheduler.Now())
	s.notify()

	if s.onReady != nil {
		s.onReady()
	}
}

// releaseListener 注销加载信号监听
func (s *PageReadySystem) releaseListener() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Dispose 注销信号监听并取消未触发的定时器。可重复调用。
func (s *PageReadySystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.releaseListener()
	s.timer.Stop()
	s.timer = nil
	log.Printf("[PageReadySystem] Disposed (state=%s)", s.state.Phase)
}

// IsLoading 遮罩是否仍在显示
func (s *PageReadySystem) IsLoading() bool {
	return s.state.IsLoading
}

// FadeOut 遮罩是否处于淡出阶段
func (s *PageReadySystem) FadeOut() bool {
	return s.state.FadeOut
}

// Phase 返回当前阶段
func (s *PageReadySystem) Phase() components.LoadPhase {
	return s.state.Phase
}

// FadeProgress 返回淡出进度 [0, 1]，用于渲染遮罩透明度
func (s *PageReadySystem) FadeProgress() float64 {
	switch s.state.Phase {
	case components.LoadPhaseDone:
		return 1
	case components.LoadPhaseFading:
		if s.timer == nil {
			return 1
		}
		elapsed := config.PageReadyFadeDuration - (s.timer.Due() - s.scheduler.Now())
		return utils.Progress(float64(elapsed), float64(config.PageReadyFadeDuration))
	default:
		return 0
	}
}

// IsDisposed 报告系统是否已释放
func (s *PageReadySystem) IsDisposed() bool {
	return s.disposed
}

// State 返回状态快照
func (s *PageReadySystem) State() components.LoadStateComponent {
	return s.state
}
