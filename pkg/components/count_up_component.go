package components

import "time"

// CountUpOptions 数字滚动动画参数
type CountUpOptions struct {
	// Start 起始值，默认 0
	Start float64
	// End 目标值
	End float64
	// Duration 动画时长，<= 0 时使用默认值 2s
	Duration time.Duration
	// Delay 启动前的等待时间，默认 0
	Delay time.Duration
	// Suffix 显示后缀，如 "+"、"%"
	Suffix string
	// Grouping 显示时是否使用千位分隔符
	Grouping bool
	// Enabled 是否运行动画；为 false 时数值停留在 Start
	Enabled bool
}

// CounterComponent 数字滚动状态
type CounterComponent struct {
	// CurrentValue 当前显示的数值，位于 [Start, End] 之间
	CurrentValue float64

	// IsComplete 是否已到达 End
	IsComplete bool
}

// StatCardComponent 着陆页上的统计卡片
type StatCardComponent struct {
	// Label 卡片说明文字
	Label string

	// Index 卡片在所属分区内的序号（决定横向位置）
	Index int

	// SectionTop 所属分区顶部的页面 Y 坐标
	SectionTop float64

	// SectionHeight 所属分区高度
	SectionHeight float64
}
