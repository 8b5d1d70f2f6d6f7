package game

// listener 是一条订阅记录，removed 置位后不再被通知
type listener[T any] struct {
	fn      func(T)
	removed bool
}

// listenerList 按订阅顺序保存回调。
// 通知过程中取消订阅是安全的：被取消的回调在本轮剩余部分中不会再被调用。
type listenerList[T any] struct {
	items []*listener[T]
}

// add 注册回调，返回取消函数（可重复调用）
func (l *listenerList[T]) add(fn func(T)) func() {
	entry := &listener[T]{fn: fn}
	l.items = append(l.items, entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, it := range l.items {
			if it == entry {
				l.items = append(l.items[:i], l.items[i+1:]...)
				break
			}
		}
	}
}

// notify 以 v 调用当前所有回调
func (l *listenerList[T]) notify(v T) {
	snapshot := make([]*listener[T], len(l.items))
	copy(snapshot, l.items)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		entry.fn(v)
	}
}

// clear 移除全部回调
func (l *listenerList[T]) clear() {
	for _, entry := range l.items {
		entry.removed = true
	}
	l.items = nil
}

// len 返回当前订阅数量
func (l *listenerList[T]) len() int {
	return len(l.items)
}
