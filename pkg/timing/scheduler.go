// Package timing 提供单线程协作式调度器
//
// 所有界面编排组件（开场序列、加载遮罩、滚动可见性、数字滚动）都通过
// Scheduler 申请定时器和动画帧。Scheduler 维护一个虚拟时钟，由宿主的
// 游戏循环每个 tick 调用 Advance 推进；所有回调都在 Advance 的调用者
// goroutine 上同步执行，因此组件内部无需加锁。
//
// 测试可以直接调用 Advance 精确控制时间，无需真实等待。
package timing

import (
	"container/heap"
	"time"
)

// Scheduler 是虚拟时钟驱动的定时器与动画帧调度器。
//
// 同一到期时间的定时器按调度顺序触发；在某一帧回调中申请的新帧
// 会在下一次 Advance 时执行，与浏览器 requestAnimationFrame 语义一致。
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	frames []*Frame
}

// NewScheduler 创建一个时钟从 0 开始的调度器
func NewScheduler() *Scheduler {
	s := &Scheduler{
		timers: make(timerHeap, 0),
		frames: make([]*Frame, 0),
	}
	heap.Init(&s.timers)
	return s
}

// Now 返回当前虚拟时间（自调度器创建起经过的时长）
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在 d 之后调用 fn，返回可取消的定时器句柄。
// d 为负数时按 0 处理。
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		scheduler: s,
		due:       s.now + d,
		seq:       s.seq,
		fn:        fn,
		index:     -1,
	}
	heap.Push(&s.timers, t)
	return t
}

// RequestFrame 申请在下一帧调用 fn，fn 的参数为该帧的时间戳
func (s *Scheduler) RequestFrame(fn func(now time.Duration)) *Frame {
	f := &Frame{fn: fn}
	s.frames = append(s.frames, f)
	return f
}

// Advance 将虚拟时钟推进 d，依次触发到期的定时器，最后执行一帧。
//
// 定时器回调中新调度的、且在本次推进范围内到期的定时器也会在本次触发。
// 每个定时器触发时 Now() 等于它的到期时间。
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := s.now + d

	for len(s.timers) > 0 && s.timers[0].due <= target {
		t := heap.Pop(&s.timers).(*Timer)
		s.now = t.due
		t.fired = true
		t.fn()
	}
	s.now = target

	s.runFrame()
}

// runFrame 执行当前排队的所有帧回调
func (s *Scheduler) runFrame() {
	if len(s.frames) == 0 {
		return
	}

	batch := s.frames
	s.frames = make([]*Frame, 0, len(batch))

	for _, f := range batch {
		if f.cancelled {
			continue
		}
		f.done = true
		f.fn(s.now)
	}
}

// Pending 返回尚未触发、未取消的定时器与帧请求数量
func (s *Scheduler) Pending() int {
	n := len(s.timers)
	for _, f := range s.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// Timer 是 After 返回的一次性定时器句柄
type Timer struct {
	scheduler *Scheduler
	due       time.Duration
	seq       uint64
	fn        func()
	index     int
	fired     bool
	stopped   bool
}

// Stop 取消定时器。
// 返回 true 表示本次调用阻止了回调；已触发或已取消时返回 false，可重复调用。
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.scheduler.timers, t.index)
	}
	return true
}

// Active 报告定时器是否仍在等待触发
func (t *Timer) Active() bool {
	return t != nil && !t.fired && !t.stopped
}

// Due 返回定时器的到期时间
func (t *Timer) Due() time.Duration {
	return t.due
}

// Frame 是 RequestFrame 返回的动画帧句柄
type Frame struct {
	fn        func(now time.Duration)
	cancelled bool
	done      bool
}

// Cancel 取消尚未执行的帧回调，语义同 Timer.Stop
func (f *Frame) Cancel() bool {
	if f == nil || f.done || f.cancelled {
		return false
	}
	f.cancelled = true
	return true
}

// timerHeap 按到期时间排序，同一时间按调度顺序排序
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x interface{}) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[0 : n-1]
	return t
}
