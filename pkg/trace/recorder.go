package trace

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/ecs"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/systems"
	"github.com/decker502/tavola/pkg/timing"
)

// 事件来源
const (
	SourceLoad       = "load"
	SourcePageReady  = "page-ready"
	SourceIntro      = "intro"
	SourceBackToTop  = "back-to-top"
	SourceReserve    = "reserve"
	SourceScroll     = "scroll"
	statSourcePrefix = "stat:"
)

// Options 控制一次追踪运行
type Options struct {
	// Until 运行的虚拟时长，默认 8s
	Until time.Duration
	// Step 宿主循环的帧间隔，默认 16ms
	Step time.Duration
	// LoadAt 加载完成信号触发的时间，默认 300ms
	LoadAt time.Duration
	// ScrollInterval 着陆页脚本每隔多久滚动一次（一格滚轮），默认 100ms
	ScrollInterval time.Duration
	// ReturnDelay 滚动到底部后等待多久再平滑回到顶部，默认 500ms
	ReturnDelay time.Duration
}

// withDefaults 填充默认值
func (o Options) withDefaults() Options {
	if o.Until <= 0 {
		o.Until = 8 * time.Second
	}
	if o.Step <= 0 {
		o.Step = 16 * time.Millisecond
	}
	if o.LoadAt < 0 {
		o.LoadAt = 0
	} else if o.LoadAt == 0 {
		o.LoadAt = 300 * time.Millisecond
	}
	if o.ScrollInterval <= 0 {
		o.ScrollInterval = 100 * time.Millisecond
	}
	if o.ReturnDelay <= 0 {
		o.ReturnDelay = 500 * time.Millisecond
	}
	return o
}

// Event 一次可观察的状态变化
type Event struct {
	At     time.Duration
	Source string
	Change string
}

// Timeline 一次追踪运行的结果
type Timeline struct {
	Events []Event
	// Until 实际运行的虚拟时长
	Until time.Duration
	// Pending 释放全部组件后仍未触发的定时器与帧请求数量（正常为 0）
	Pending int
}

// Sources 返回按首次出现顺序排列的事件来源
func (t *Timeline) Sources() []string {
	seen := make(map[string]bool)
	var sources []string
	for _, e := range t.Events {
		if !seen[e.Source] {
			seen[e.Source] = true
			sources = append(sources, e.Source)
		}
	}
	return sources
}

// Count 返回指定来源的事件数量
func (t *Timeline) Count(source string) int {
	n := 0
	for _, e := range t.Events {
		if e.Source == source {
			n++
		}
	}
	return n
}

// counterSeen 上一次轮询时计数器的状态
type counterSeen struct {
	enabled  bool
	complete bool
}

// harness 把四个控制器串成完整流程
type harness struct {
	cfg       *config.SiteConfig
	opts      Options
	scheduler *timing.Scheduler
	timeline  *Timeline

	pageReady *systems.PageReadySystem
	intro     *systems.IntroSequenceSystem

	scroll       *game.ScrollState
	backToTop    *systems.ScrollVisibilitySystem
	reserve      *systems.ScrollVisibilitySystem
	smoothScroll *systems.SmoothScrollSystem
	entities     *ecs.EntityManager
	stats        *systems.StatCounterSystem
	scriptTimer  *timing.Timer
	counters     map[ecs.EntityID]counterSeen
}

// Run 按 opts 运行一次完整流程并返回时间线
func Run(cfg *config.SiteConfig, opts Options) (*Timeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	opts = opts.withDefaults()

	h := &harness{
		cfg:       cfg,
		opts:      opts,
		scheduler: timing.NewScheduler(),
		timeline:  &Timeline{},
		counters:  make(map[ecs.EntityID]counterSeen),
	}

	signal := game.NewLoadSignal()
	h.scheduler.After(opts.LoadAt, func() {
		h.record(SourceLoad, "fired")
		signal.Fire()
	})

	h.pageReady = systems.NewPageReadySystem(h.scheduler, signal, h.startIntro)
	h.pageReady.SetObserver(func(st components.LoadStateComponent) {
		h.record(SourcePageReady, fmt.Sprintf("%s (isLoading=%v, fadeOut=%v)", st.Phase, st.IsLoading, st.FadeOut))
	})

	for h.scheduler.Now() < opts.Until {
		step := opts.Step
		if remaining := opts.Until - h.scheduler.Now(); remaining < step {
			step = remaining
		}
		h.scheduler.Advance(step)
		h.pollCounters()
	}

	h.dispose()
	h.timeline.Until = h.scheduler.Now()
	h.timeline.Pending = h.scheduler.Pending()

	log.Printf("[Trace] %d events in %v, %d pending after teardown", len(h.timeline.Events), h.timeline.Until, h.timeline.Pending)
	return h.timeline, nil
}

// record 以当前虚拟时间记录事件
func (h *harness) record(source, change string) {
	h.timeline.Events = append(h.timeline.Events, Event{
		At:     h.scheduler.Now(),
		Source: source,
		Change: change,
	})
}

// startIntro 遮罩就绪后激活开场序列
func (h *harness) startIntro() {
	h.intro = systems.NewIntroSequenceSystem(h.scheduler, h.startLanding)
	h.intro.SetPhaseObserver(func(phase components.IntroPhase) {
		h.record(SourceIntro, phase.String())
	})
	h.intro.Start()
	h.record(SourceIntro, h.intro.Phase().String())
}

// startLanding 开场完成后构建着陆页并开始滚动脚本
func (h *harness) startLanding() {
	h.record(SourceIntro, "complete")
	h.intro.Dispose()

	h.scroll = game.NewScrollState(config.WindowHeight, h.cfg.ContentHeight())
	h.backToTop = h.newVisibility(SourceBackToTop, h.cfg.Scroll.BackToTop)
	h.reserve = h.newVisibility(SourceReserve, h.cfg.Scroll.Reserve)
	h.smoothScroll = systems.NewSmoothScrollSystem(h.scheduler, h.scroll, config.SmoothScrollDuration)
	h.entities = ecs.NewEntityManager()
	h.stats = systems.NewStatCounterSystem(h.entities, h.scheduler, h.scroll, h.cfg)

	h.scheduleScroll()
}

// newVisibility 创建带记录观察者的滚动可见性系统
func (h *harness) newVisibility(name string, threshold config.Threshold) *systems.ScrollVisibilitySystem {
	v := systems.NewScrollVisibilitySystem(name, h.scroll, threshold)
	v.SetObserver(func(visible bool) {
		change := "hidden"
		if visible {
			change = "visible"
		}
		h.record(name, fmt.Sprintf("%s (offset=%.0f)", change, h.scroll.ScrollOffset()))
	})
	return v
}

// scheduleScroll 每隔 ScrollInterval 向下滚动一格；到底后等待 ReturnDelay 平滑回到顶部
func (h *harness) scheduleScroll() {
	h.scriptTimer = h.scheduler.After(h.opts.ScrollInterval, func() {
		h.scroll.ScrollBy(h.cfg.Scroll.WheelSpeed)
		if h.scroll.ScrollOffset() < h.scroll.MaxOffset() {
			h.scheduleScroll()
			return
		}

		h.record(SourceScroll, fmt.Sprintf("reached bottom (offset=%.0f)", h.scroll.ScrollOffset()))
		h.scriptTimer = h.scheduler.After(h.opts.ReturnDelay, func() {
			h.scriptTimer = nil
			h.record(SourceScroll, "back to top")
			h.smoothScroll.ScrollTo(0)
		})
	})
}

// pollCounters 记录计数器的启用与完成
func (h *harness) pollCounters() {
	if h.stats == nil {
		return
	}
	for _, id := range h.stats.Cards() {
		card, _ := ecs.GetComponent[*components.StatCardComponent](h.entities, id)
		counter, _ := ecs.GetComponent[*systems.CountUpSystem](h.entities, id)

		prev := h.counters[id]
		cur := counterSeen{enabled: counter.Options().Enabled, complete: counter.IsComplete()}
		source := statSourcePrefix + card.Label

		if cur.enabled && !prev.enabled {
			h.record(source, "enabled")
		}
		if cur.complete && !prev.complete {
			h.record(source, "complete "+counter.DisplayValue())
		}
		h.counters[id] = cur
	}
}

// dispose 释放所有组件
func (h *harness) dispose() {
	h.pageReady.Dispose()
	if h.intro != nil {
		h.intro.Dispose()
	}
	if h.scroll == nil {
		return
	}
	h.scriptTimer.Stop()
	h.smoothScroll.Dispose()
	h.backToTop.Dispose()
	h.reserve.Dispose()
	h.stats.Dispose()
	h.entities.DestroyAll()
}
