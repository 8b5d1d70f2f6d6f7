package game

import "log"

// LoadSignal 表示宿主环境的一次性"已完全加载"事件（对应浏览器 window load）。
//
// 事件只会触发一次。订阅者应先检查 Loaded()：如果已经加载完成，
// 直接按已触发处理；Subscribe 不会为迟到的订阅者补发事件。
type LoadSignal struct {
	loaded    bool
	listeners listenerList[struct{}]
}

// NewLoadSignal 创建一个未触发的加载信号
func NewLoadSignal() *LoadSignal {
	return &LoadSignal{}
}

// Loaded 报告信号是否已经触发
func (s *LoadSignal) Loaded() bool {
	return s.loaded
}

// Subscribe 注册加载完成回调，返回取消订阅函数。
// 信号已触发时不注册，返回空操作的取消函数。
func (s *LoadSignal) Subscribe(fn func()) (unsubscribe func()) {
	if s.loaded {
		return func() {}
	}
	return s.listeners.add(func(struct{}) { fn() })
}

// Fire 触发信号并通知所有订阅者，之后清空订阅。重复调用无效果。
func (s *LoadSignal) Fire() {
	if s.loaded {
		return
	}
	s.loaded = true
	log.Printf("[LoadSignal] 环境加载完成，通知 %d 个订阅者", s.listeners.len())
	s.listeners.notify(struct{}{})
	s.listeners.clear()
}

// Listeners 返回当前订阅者数量
func (s *LoadSignal) Listeners() int {
	return s.listeners.len()
}
