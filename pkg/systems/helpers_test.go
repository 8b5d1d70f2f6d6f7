package systems

import (
	"time"

	"github.com/decker502/tavola/pkg/timing"
)

// frameStep 测试中模拟的帧间隔（约 60 FPS）
const frameStep = 16 * time.Millisecond

// advanceFrames 以固定帧间隔推进调度器共 total 时长（最后一步可能不足一帧）
func advanceFrames(s *timing.Scheduler, total time.Duration) {
	for total > 0 {
		step := frameStep
		if total < step {
			step = total
		}
		s.Advance(step)
		total -= step
	}
}
