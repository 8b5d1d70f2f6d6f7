package systems

import (
	"log"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/game"
)

// IsPastThreshold 判断滚动偏移是否超过阈值（严格大于，无迟滞）
func IsPastThreshold(offset, threshold float64) bool {
	return offset > threshold
}

// ScrollVisibilitySystem 根据滚动偏移切换浮动元素的可见性。
//
// 每次滚动采样都重新计算 offset > threshold，只有结果变化时才更新状态并通知观察者。
// 阈值可以是固定像素，也可以是视口高度的倍数（每次采样按当前视口高度换算）。
type ScrollVisibilitySystem struct {
	name      string
	source    game.ScrollSource
	threshold config.Threshold
	state     components.VisibilityComponent
	onChange  func(visible bool)

	unsubscribe func()
	disposed    bool
}

// NewScrollVisibilitySystem 创建滚动可见性系统并订阅滚动源。
// 初始状态为不可见，直到第一次滚动采样。
func NewScrollVisibilitySystem(name string, source game.ScrollSource, threshold config.Threshold) *ScrollVisibilitySystem {
	s := &ScrollVisibilitySystem{
		name:      name,
		source:    source,
		threshold: threshold,
	}
	s.state.Threshold = threshold.Resolve(source.ViewportHeight())
	s.unsubscribe = source.SubscribeScroll(s.sample)

	log.Printf("[ScrollVisibilitySystem] %s subscribed (threshold=%s)", name, threshold)
	return s
}

// SetObserver 设置可见性变化观察者
func (s *ScrollVisibilitySystem) SetObserver(fn func(visible bool)) {
	s.onChange = fn
}

// sample 处理一次滚动采样
func (s *ScrollVisibilitySystem) sample(offset float64) {
	if s.disposed {
		return
	}

	s.state.Threshold = s.threshold.Resolve(s.source.ViewportHeight())
	visible := IsPastThreshold(offset, s.state.Threshold)
	if visible == s.state.Visible {
		return
	}

	s.state.Visible = visible
	s.state.Toggles++
	log.Printf("[ScrollVisibilitySystem] %s visible=%v (offset=%.0f, threshold=%.0f)", s.name, visible, offset, s.state.Threshold)

	if s.onChange != nil {
		s.onChange(visible)
	}
}

// Dispose 取消滚动订阅。可重复调用。
func (s *ScrollVisibilitySystem) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	log.Printf("[ScrollVisibilitySystem] %s disposed", s.name)
}

// Visible 返回当前可见性
func (s *ScrollVisibilitySystem) Visible() bool {
	return s.state.Visible
}

// Name 返回实例名称
func (s *ScrollVisibilitySystem) Name() string {
	return s.name
}

// IsDisposed 报告系统是否已释放
func (s *ScrollVisibilitySystem) IsDisposed() bool {
	return s.disposed
}

// State 返回状态快照
func (s *ScrollVisibilitySystem) State() components.VisibilityComponent {
	return s.state
}
