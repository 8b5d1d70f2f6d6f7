package systems

import (
	"log"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/ecs"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/timing"
)

// SectionInView 判断页面分区 [top, top+height) 是否与视口 [offset, offset+viewport) 相交
func SectionInView(offset, viewport, top, height float64) bool {
	return top < offset+viewport && top+height > offset
}

// StatCounterSystem 管理着陆页上的统计卡片实体
//
// 每张卡片是一个实体，带有 StatCardComponent 和自己的 CountUpSystem。
// 卡片所在分区第一次进入视口时启用它的数字滚动；之后保持启用。
// 实体被销毁时 EntityManager 会释放其 CountUpSystem。
type StatCounterSystem struct {
	entityManager *ecs.EntityManager
	source        game.ScrollSource
	unsubscribe   func()
	disposed      bool
}

// NewStatCounterSystem 为配置中的每个统计数字创建实体，并订阅滚动源。
// 创建时立即按当前偏移检查一次可见性（首屏内的卡片无需等待滚动）。
func NewStatCounterSystem(em *ecs.EntityManager, scheduler *timing.Scheduler, source game.ScrollSource, cfg *config.SiteConfig) *StatCounterSystem {
	s := &StatCounterSystem{
		entityManager: em,
		source:        source,
	}

	perSection := make(map[string]int)
	for _, stat := range cfg.Stats {
		section, _ := cfg.Section(stat.Section)
		top, _ := cfg.SectionTop(stat.Section)

		entity := em.CreateEntity()
		ecs.AddComponent(em, entity, &components.StatCardComponent{
			Label:         stat.Label,
			Index:         perSection[stat.Section],
			SectionTop:    top,
			SectionHeight: section.Height,
		})
		ecs.AddComponent(em, entity, NewCountUpSystem(scheduler, components.CountUpOptions{
			Start:    stat.Start,
			End:      stat.End,
			Duration: stat.Duration,
			Delay:    stat.Delay,
			Suffix:   stat.Suffix,
			Grouping: stat.Grouping,
		}))
		perSection[stat.Section]++
	}

	s.unsubscribe = source.SubscribeScroll(s.sample)
	s.sample(source.ScrollOffset())

	log.Printf("[StatCounterSystem] Created %d stat entities", len(cfg.Stats))
	return s
}

// sample 启用进入视口的卡片
func (s *StatCounterSystem) sample(offset float64) {
	if s.disposed {
		return
	}

	viewport := s.source.ViewportHeight()
	for _, id := range ecs.GetEntitiesWith2[*components.StatCardComponent, *CountUpSystem](s.entityManager) {
		card, _ := ecs.GetComponent[*components.StatCardComponent](s.entityManager, id)
		counter, _ := ecs.GetComponent[*CountUpSystem](s.entityManager, id)

		if counter.Options().Enabled {
			continue
		}
		if SectionInView(offset, viewport, card.SectionTop, card.SectionHeight) {
			log.Printf("[StatCounterSystem] %s in view at offset %.0f", card.Label, offset)
			counter.SetEnabled(true)
		}
	}
}

// Cards 返回所有统计卡片实体（按创建顺序）
func (s *StatCounterSystem) Cards() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.StatCardComponent, *CountUpSystem](s.entityManager)
}

// Dispose 取消滚动订阅。卡片实体的计数器由 EntityManager 销毁实体时释放。可重复调用。
func (s *StatCounterSystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
