package game

import "math"

// ScrollSource 是滚动位置来源。
// 订阅者在每次滚动采样时收到当前偏移量；视口高度用于按屏幕高度倍数计算阈值。
type ScrollSource interface {
	// ScrollOffset 返回当前滚动偏移（像素，向下为正）
	ScrollOffset() float64
	// ViewportHeight 返回当前视口高度（像素）
	ViewportHeight() float64
	// SubscribeScroll 注册滚动回调，返回取消订阅函数
	SubscribeScroll(fn func(offset float64)) (unsubscribe func())
}

// ScrollState 保存页面的滚动位置，实现 ScrollSource。
//
// 偏移量被限制在 [0, contentHeight - viewportHeight] 之间；
// 只有偏移量实际变化时才产生一次滚动采样。
type ScrollState struct {
	offset         float64
	viewportHeight float64
	contentHeight  float64
	listeners      listenerList[float64]
}

// NewScrollState 创建滚动状态
func NewScrollState(viewportHeight, contentHeight float64) *ScrollState {
	return &ScrollState{
		viewportHeight: viewportHeight,
		contentHeight:  contentHeight,
	}
}

// ScrollOffset 返回当前滚动偏移
func (s *ScrollState) ScrollOffset() float64 {
	return s.offset
}

// ViewportHeight 返回视口高度
func (s *ScrollState) ViewportHeight() float64 {
	return s.viewportHeight
}

// ContentHeight 返回页面内容总高度
func (s *ScrollState) ContentHeight() float64 {
	return s.contentHeight
}

// MaxOffset 返回允许的最大滚动偏移
func (s *ScrollState) MaxOffset() float64 {
	return math.Max(0, s.contentHeight-s.viewportHeight)
}

// SubscribeScroll 注册滚动回调
func (s *ScrollState) SubscribeScroll(fn func(offset float64)) func() {
	return s.listeners.add(fn)
}

// ScrollBy 按 dy 滚动（正值向下）
func (s *ScrollState) ScrollBy(dy float64) {
	s.ScrollTo(s.offset + dy)
}

// ScrollTo 滚动到指定偏移
func (s *ScrollState) ScrollTo(offset float64) {
	offset = math.Max(0, math.Min(offset, s.MaxOffset()))
	if offset == s.offset {
		return
	}
	s.offset = offset
	s.listeners.notify(s.offset)
}

// SetViewport 更新视口高度（窗口缩放时调用），并重新限制偏移量
func (s *ScrollState) SetViewport(height float64) {
	s.viewportHeight = height
	s.ScrollTo(s.offset)
}

// Listeners 返回当前订阅者数量
func (s *ScrollState) Listeners() int {
	return s.listeners.len()
}
