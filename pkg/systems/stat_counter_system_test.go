package systems

import (
	"testing"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/ecs"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/timing"
)

// TestSectionInView 测试分区与视口相交判断
func TestSectionInView(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		top      float64
		height   float64
		expected bool
	}{
		{"分区在视口内", 0, 100, 200, true},
		{"分区顶部恰在视口底边", 0, 640, 400, false},
		{"分区顶部进入视口 1px", 1, 640, 400, true},
		{"分区底部恰在视口顶边", 1040, 640, 400, false},
		{"分区已滚出视口", 2000, 640, 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionInView(tt.offset, 640, tt.top, tt.height); got != tt.expected {
				t.Errorf("SectionInView(%v, 640, %v, %v) = %v, 期望 %v", tt.offset, tt.top, tt.height, got, tt.expected)
			}
		})
	}
}

func statTestConfig() *config.SiteConfig {
	return &config.SiteConfig{
		Brand:  config.BrandConfig{Name: "TAVOLA"},
		Scroll: config.ScrollConfig{WheelSpeed: 60},
		Sections: []config.SectionConfig{
			{ID: "hero", Height: 640},
			{ID: "stats", Height: 400},
			{ID: "visit", Height: 400},
		},
		Stats: []config.StatConfig{
			{Label: "Years", Section: "hero", End: 37, Suffix: "+"},
			{Label: "Pizzas", Section: "stats", End: 1000, Duration: time.Second},
			{Label: "Ovens", Section: "stats", End: 3, Delay: 200 * time.Millisecond},
		},
	}
}

// TestStatCounterSystem_EnableOnView 测试分区进入视口时启用计数器，且之后保持启用
func TestStatCounterSystem_EnableOnView(t *testing.T) {
	sched := timing.NewScheduler()
	em := ecs.NewEntityManager()
	cfg := statTestConfig()
	scroll := game.NewScrollState(640, cfg.ContentHeight())

	sys := NewStatCounterSystem(em, sched, scroll, cfg)
	cards := sys.Cards()
	if len(cards) != 3 {
		t.Fatalf("应创建 3 个卡片实体，实际 %d", len(cards))
	}

	counter := func(i int) *CountUpSystem {
		c, ok := ecs.GetComponent[*CountUpSystem](em, cards[i])
		if !ok {
			t.Fatalf("卡片 %d 缺少计数器", i)
		}
		return c
	}

	if !counter(0).Options().Enabled {
		t.Error("首屏内的卡片应立即启用")
	}
	if counter(1).Options().Enabled || counter(2).Options().Enabled {
		t.Error("视口外的卡片不应启用")
	}

	card, _ := ecs.GetComponent[*components.StatCardComponent](em, cards[2])
	if card.Index != 1 || card.SectionTop != 640 || card.SectionHeight != 400 {
		t.Errorf("卡片布局错误：%+v", card)
	}

	scroll.ScrollTo(100)
	if !counter(1).Options().Enabled || !counter(2).Options().Enabled {
		t.Error("分区进入视口后卡片应启用")
	}

	// 滚回顶部后保持启用
	scroll.ScrollTo(0)
	advanceFrames(sched, 2500*time.Millisecond)

	for i, expected := range []float64{37, 1000, 3} {
		if c := counter(i); !c.IsComplete() || c.Value() != expected {
			t.Errorf("卡片 %d 应完成于 %v，实际 %v (complete=%v)", i, expected, c.Value(), c.IsComplete())
		}
	}
}

// TestStatCounterSystem_Teardown 测试释放订阅并销毁实体后不再有回调
func TestStatCounterSystem_Teardown(t *testing.T) {
	sched := timing.NewScheduler()
	em := ecs.NewEntityManager()
	cfg := statTestConfig()
	scroll := game.NewScrollState(640, cfg.ContentHeight())

	sys := NewStatCounterSystem(em, sched, scroll, cfg)
	cards := sys.Cards()
	first, _ := ecs.GetComponent[*CountUpSystem](em, cards[0])
	second, _ := ecs.GetComponent[*CountUpSystem](em, cards[1])

	advanceFrames(sched, 100*time.Millisecond)
	sys.Dispose()
	sys.Dispose()
	em.DestroyAll()

	if scroll.Listeners() != 0 {
		t.Errorf("释放后不应有滚动订阅，实际 %d", scroll.Listeners())
	}
	if !first.IsDisposed() || !second.IsDisposed() {
		t.Error("销毁实体时应释放计数器")
	}

	before := first.Value()
	scroll.ScrollTo(500)
	advanceFrames(sched, 3*time.Second)

	if first.Value() != before {
		t.Errorf("释放后数值不应变化：%v → %v", before, first.Value())
	}
	if second.Options().Enabled {
		t.Error("释放后滚动不应再启用卡片")
	}
	if sched.Pending() != 0 {
		t.Errorf("释放后不应有待处理任务，实际 %d", sched.Pending())
	}
}
