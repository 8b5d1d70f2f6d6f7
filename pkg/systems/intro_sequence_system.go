package systems

import (
	"log"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/timing"
)

// IntroSequenceSystem 驱动开场序列：logo → tagline → fade → 完成。
//
// 三个切换点都以 Start 调用时刻为基准调度（+800ms / +2200ms / +2800ms），
// 每次激活恰好发出一次完成回调。Dispose 之后不会再有任何阶段变化或回调。
type IntroSequenceSystem struct {
	scheduler *timing.Scheduler
	state     components.IntroSequenceComponent

	onComplete    func()
	onPhaseChange func(components.IntroPhase)

	timers   []*timing.Timer
	run      int
	running  bool
	disposed bool
}

// NewIntroSequenceSystem 创建开场序列系统（尚未激活，需调用 Start）。
// onComplete 可为 nil。
func NewIntroSequenceSystem(scheduler *timing.Scheduler, onComplete func()) *IntroSequenceSystem {
	return &IntroSequenceSystem{
		scheduler:  scheduler,
		onComplete: onComplete,
		state: components.IntroSequenceComponent{
			Phase: components.IntroPhaseLogo,
		},
	}
}

// SetPhaseObserver 设置阶段切换观察者（用于渲染层切换画面）
func (s *IntroSequenceSystem) SetPhaseObserver(fn func(components.IntroPhase)) {
	s.onPhaseChange = fn
}

// Start 激活序列。
// 如果序列正在运行，先取消未触发的切换，再从 logo 重新开始；已释放时无效果。
func (s *IntroSequenceSystem) Start() {
	if s.disposed {
		log.Printf("[IntroSequenceSystem] Start ignored: already disposed")
		return
	}

	s.cancelTimers()
	s.run++
	s.running = true
	s.state.Phase = components.IntroPhaseLogo
	s.state.IsCompleted = false
	s.state.Activations++

	run := s.run
	s.timers = append(s.timers,
		s.scheduler.After(config.IntroTaglineDelay, func() { s.advance(run, components.IntroPhaseTagline) }),
		s.scheduler.After(config.IntroFadeDelay, func() { s.advance(run, components.IntroPhaseFade) }),
		s.scheduler.After(config.IntroCompleteDelay, func() { s.complete(run) }),
	)

	log.Printf("[IntroSequenceSystem] Activation #%d started at %v", s.state.Activations, s.scheduler.Now())
}

// Restart 取消当前运行并从 logo 重新开始，等同于再次调用 Start
func (s *IntroSequenceSystem) Restart() {
	s.Start()
}

// advance 切换到下一阶段（过期或已释放的运行被忽略）
func (s *IntroSequenceSystem) advance(run int, phase components.IntroPhase) {
	if !s.isCurrent(run) || phase <= s.state.Phase {
		return
	}

	log.Printf("[IntroSequenceSystem] Phase: %s → %s", s.state.Phase, phase)
	s.state.Phase = phase
	if s.onPhaseChange != nil {
		s.onPhaseChange(phase)
	}
}

// complete 发出完成回调，之后本次激活不再有效果
func (s *IntroSequenceSystem) complete(run int) {
	if !s.isCurrent(run) || s.state.IsCompleted {
		return
	}

	s.state.IsCompleted = true
	s.running = false
	s.timers = s.timers[:0]

	log.Printf("[IntroSequenceSystem] Sequence completed at %v", s.scheduler.Now())
	if s.onComplete != nil {
		s.onComplete()
	}
}

// isCurrent 检查回调是否属于仍然有效的当前运行
func (s *IntroSequenceSystem) isCurrent(run int) bool {
	return !s.disposed && s.running && run == s.run
}

// cancelTimers 取消所有未触发的切换
func (s *IntroSequenceSystem) cancelTimers() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = s.timers[:0]
}

// Dispose 释放系统：取消所有未触发的切换，之后的回调全部失效。可重复调用。
func (s *IntroSequenceSystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.running = false
	s.cancelTimers()
	log.Printf("[IntroSequenceSystem] Disposed (phase=%s, completed=%v)", s.state.Phase, s.state.IsCompleted)
}

// Phase 返回当前阶段
func (s *IntroSequenceSystem) Phase() components.IntroPhase {
	return s.state.Phase
}

// IsCompleted 报告本次激活是否已完成
func (s *IntroSequenceSystem) IsCompleted() bool {
	return s.state.IsCompleted
}

// IsRunning 报告序列是否正在运行
func (s *IntroSequenceSystem) IsRunning() bool {
	return s.running
}

// IsDisposed 报告系统是否已释放
func (s *IntroSequenceSystem) IsDisposed() bool {
	return s.disposed
}

// State 返回状态快照
func (s *IntroSequenceSystem) State() components.IntroSequenceComponent {
	return s.state
}
