package systems

import (
	"testing"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/timing"
)

// TestCountUpSystem_ReachesEndExactly 测试到达时长后数值精确等于 End
func TestCountUpSystem_ReachesEndExactly(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{
		Start:    0,
		End:      100,
		Duration: 1000 * time.Millisecond,
		Enabled:  true,
	})

	// 第一帧确定动画起点
	sched.Advance(frameStep)
	if sys.Value() != 0 || sys.IsComplete() {
		t.Fatalf("第一帧应为起始值，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}

	sched.Advance(999 * time.Millisecond)
	if sys.IsComplete() {
		t.Errorf("999ms 时不应完成")
	}
	if sys.Value() >= 100 {
		t.Errorf("未完成时数值应小于 100，实际 %v", sys.Value())
	}

	sched.Advance(time.Millisecond)
	if sys.Value() != 100 {
		t.Errorf("1000ms 时数值应精确为 100，实际 %v", sys.Value())
	}
	if !sys.IsComplete() {
		t.Error("1000ms 时应完成")
	}
	if sched.Pending() != 0 {
		t.Errorf("完成后帧循环应停止，实际待处理 %d", sched.Pending())
	}

	// 之后继续推进不变
	advanceFrames(sched, time.Second)
	if sys.Value() != 100 {
		t.Errorf("完成后数值应保持 100，实际 %v", sys.Value())
	}
}

// TestCountUpSystem_LateSample 测试帧间隔很大时（跳帧）直接到达终点
func TestCountUpSystem_LateSample(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{End: 100, Duration: time.Second, Enabled: true})

	sched.Advance(frameStep)
	sched.Advance(5 * time.Second)

	if sys.Value() != 100 || !sys.IsComplete() {
		t.Errorf("跳帧后应直接完成，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
}

// TestCountUpSystem_MonotonicAndBounded 测试数值单调不减且位于 [Start, End] 内
func TestCountUpSystem_MonotonicAndBounded(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		end   float64
	}{
		{"0 到 100", 0, 100},
		{"10 到 37", 10, 37},
		{"大数值", 0, 125000},
		{"小数终点", 0, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := timing.NewScheduler()
			sys := NewCountUpSystem(sched, components.CountUpOptions{
				Start:    tt.start,
				End:      tt.end,
				Duration: 2 * time.Second,
				Enabled:  true,
			})

			prev := sys.Value()
			for i := 0; i < 200 && !sys.IsComplete(); i++ {
				sched.Advance(frameStep)
				v := sys.Value()
				if v < prev {
					t.Fatalf("数值回退：%v → %v", prev, v)
				}
				if v < tt.start || v > tt.end {
					t.Fatalf("数值 %v 超出范围 [%v, %v]", v, tt.start, tt.end)
				}
				prev = v
			}

			if !sys.IsComplete() || sys.Value() != tt.end {
				t.Errorf("应完成并精确到达 %v，实际 value=%v complete=%v", tt.end, sys.Value(), sys.IsComplete())
			}
		})
	}
}

// TestCountUpSystem_Descending 测试 End < Start 时数值单调不增且最终对齐
func TestCountUpSystem_Descending(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{Start: 100, End: 0, Duration: time.Second, Enabled: true})

	prev := sys.Value()
	for i := 0; i < 100 && !sys.IsComplete(); i++ {
		sched.Advance(frameStep)
		if sys.Value() > prev {
			t.Fatalf("递减动画数值上升：%v → %v", prev, sys.Value())
		}
		if sys.Value() < 0 || sys.Value() > 100 {
			t.Fatalf("数值 %v 超出范围", sys.Value())
		}
		prev = sys.Value()
	}
	if sys.Value() != 0 {
		t.Errorf("应对齐到 0，实际 %v", sys.Value())
	}
}

// TestCountUpSystem_Delay 测试延迟期间数值保持 Start
func TestCountUpSystem_Delay(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{
		Start:    5,
		End:      50,
		Duration: time.Second,
		Delay:    500 * time.Millisecond,
		Enabled:  true,
	})

	advanceFrames(sched, 496*time.Millisecond)
	if sys.Value() != 5 {
		t.Errorf("延迟期间应保持起始值 5，实际 %v", sys.Value())
	}
	if !sys.IsRunning() {
		t.Error("延迟期间应处于运行状态")
	}

	// 延迟结束后的第一帧确定起点，再经过 1s 完成
	sched.Advance(frameStep)
	start := sched.Now()
	sched.Advance(time.Second)
	if !sys.IsComplete() || sys.Value() != 50 {
		t.Errorf("起点 %v 之后 1s 应完成，实际 value=%v complete=%v", start, sys.Value(), sys.IsComplete())
	}
}

// TestCountUpSystem_Disabled 测试禁用时不运行动画
func TestCountUpSystem_Disabled(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{Start: 3, End: 100})

	if sched.Pending() != 0 {
		t.Errorf("禁用时不应调度任何任务，实际 %d", sched.Pending())
	}
	advanceFrames(sched, 3*time.Second)
	if sys.Value() != 3 || sys.IsComplete() {
		t.Errorf("禁用时应保持起始值且未完成，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
}

// TestCountUpSystem_DisableMidRun 测试运行中禁用：立即回到 Start，之前的步骤不再生效
func TestCountUpSystem_DisableMidRun(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{Start: 0, End: 100, Duration: time.Second, Enabled: true})

	advanceFrames(sched, 400*time.Millisecond)
	if sys.Value() == 0 {
		t.Fatal("运行 400ms 后数值应已增长")
	}

	sys.SetEnabled(false)
	if sys.Value() != 0 || sys.IsComplete() {
		t.Errorf("禁用后应立即回到 0 且未完成，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
	if sched.Pending() != 0 {
		t.Errorf("禁用后不应残留帧请求，实际 %d", sched.Pending())
	}

	advanceFrames(sched, 2*time.Second)
	if sys.Value() != 0 {
		t.Errorf("禁用后数值不应再变化，实际 %v", sys.Value())
	}
}

// TestCountUpSystem_DisableDuringDelay 测试延迟期间禁用
func TestCountUpSystem_DisableDuringDelay(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{End: 100, Delay: time.Second, Enabled: true})

	sched.Advance(500 * time.Millisecond)
	sys.SetEnabled(false)
	if sched.Pending() != 0 {
		t.Errorf("禁用后延迟定时器应被取消，实际待处理 %d", sched.Pending())
	}

	advanceFrames(sched, 5*time.Second)
	if sys.Value() != 0 || sys.IsComplete() {
		t.Errorf("禁用后不应运行，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
}

// TestCountUpSystem_ReEnableRestarts 测试重新启用从头开始
func TestCountUpSystem_ReEnableRestarts(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{End: 100, Duration: time.Second, Enabled: true})

	advanceFrames(sched, 2*time.Second)
	if !sys.IsComplete() {
		t.Fatal("第一次运行应完成")
	}

	sys.SetEnabled(false)
	sys.SetEnabled(true)
	if sys.IsComplete() || sys.Value() != 0 {
		t.Errorf("重新启用后应从 0 开始，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}

	sched.Advance(frameStep)
	sched.Advance(500 * time.Millisecond)
	if sys.IsComplete() {
		t.Error("重新启用 500ms 后不应完成（动画起点应重新计算）")
	}

	sched.Advance(500 * time.Millisecond)
	if !sys.IsComplete() || sys.Value() != 100 {
		t.Errorf("重新启用 1s 后应完成，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
}

// TestCountUpSystem_RapidOptionChanges 测试快速修改参数时旧运行的回调不会覆盖新运行
func TestCountUpSystem_RapidOptionChanges(t *testing.T) {
	sched := timing.NewScheduler()
	opts := components.CountUpOptions{End: 1000, Duration: time.Second, Delay: 100 * time.Millisecond, Enabled: true}
	sys := NewCountUpSystem(sched, opts)

	sched.Advance(50 * time.Millisecond)

	// 新参数：无延迟、目标 10
	opts.End = 10
	opts.Delay = 0
	sys.SetOptions(opts)

	// 旧运行的延迟本应在 100ms 触发
	advanceFrames(sched, 3*time.Second)

	if sys.Value() != 10 || !sys.IsComplete() {
		t.Errorf("应按新参数完成于 10，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}
	if sched.Pending() != 0 {
		t.Errorf("完成后不应残留任务，实际 %d", sched.Pending())
	}
}

// TestCountUpSystem_SameOptionsNoRestart 测试设置相同参数不会重启动画
func TestCountUpSystem_SameOptionsNoRestart(t *testing.T) {
	sched := timing.NewScheduler()
	opts := components.CountUpOptions{End: 100, Duration: time.Second, Enabled: true}
	sys := NewCountUpSystem(sched, opts)

	advanceFrames(sched, 600*time.Millisecond)
	before := sys.Value()

	sys.SetOptions(opts)
	sys.SetEnabled(true)
	if sys.Value() != before {
		t.Errorf("相同参数不应重置数值：%v → %v", before, sys.Value())
	}
}

// TestCountUpSystem_Dispose 测试释放后取消所有步骤且可重复调用
func TestCountUpSystem_Dispose(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{End: 100, Duration: time.Second, Enabled: true})

	advanceFrames(sched, 300*time.Millisecond)
	frozen := sys.Value()

	sys.Dispose()
	sys.Dispose()

	if sched.Pending() != 0 {
		t.Errorf("释放后不应残留帧请求，实际 %d", sched.Pending())
	}

	advanceFrames(sched, 3*time.Second)
	if sys.Value() != frozen || sys.IsComplete() {
		t.Errorf("释放后状态不应变化，实际 value=%v complete=%v", sys.Value(), sys.IsComplete())
	}

	// 释放后的输入变化无效果
	sys.SetEnabled(false)
	sys.SetOptions(components.CountUpOptions{End: 5, Enabled: true})
	if sched.Pending() != 0 || sys.Value() != frozen {
		t.Error("释放后修改输入不应调度任何任务")
	}
}

// TestCountUpSystem_Defaults 测试默认参数
func TestCountUpSystem_Defaults(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{End: 10, Delay: -time.Second})

	opts := sys.Options()
	if opts.Duration != 2*time.Second {
		t.Errorf("默认时长应为 2s，实际 %v", opts.Duration)
	}
	if opts.Delay != 0 {
		t.Errorf("负延迟应按 0 处理，实际 %v", opts.Delay)
	}
	if opts.Start != 0 {
		t.Errorf("默认起始值应为 0，实际 %v", opts.Start)
	}
}

// TestCountUpSystem_DisplayValue 测试显示文本
func TestCountUpSystem_DisplayValue(t *testing.T) {
	sched := timing.NewScheduler()
	sys := NewCountUpSystem(sched, components.CountUpOptions{
		End:      125000,
		Suffix:   "+",
		Grouping: true,
		Duration: time.Second,
		Enabled:  true,
	})

	if got := sys.DisplayValue(); got != "0+" {
		t.Errorf("起始显示应为 0+，实际 %q", got)
	}

	advanceFrames(sched, 2*time.Second)
	if got := sys.DisplayValue(); got != "125,000+" {
		t.Errorf("完成显示应为 125,000+，实际 %q", got)
	}
}
