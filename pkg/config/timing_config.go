package config

import "time"

// 开场序列时间点（均相对于同一个起始时刻）
const (
	// IntroTaglineDelay logo → tagline 的切换时间
	IntroTaglineDelay = 800 * time.Millisecond

	// IntroFadeDelay tagline → fade 的切换时间
	IntroFadeDelay = 2200 * time.Millisecond

	// IntroCompleteDelay 开场序列完成回调时间
	IntroCompleteDelay = 2800 * time.Millisecond

	// IntroTaglineFadeIn 标语渐显时长
	IntroTaglineFadeIn = 400 * time.Millisecond
)

// 页面就绪序列
const (
	// PageReadyMinDisplay 收到加载完成信号后，加载遮罩的最短显示时间（防止闪烁）
	PageReadyMinDisplay = 600 * time.Millisecond

	// PageReadyFadeDuration 加载遮罩淡出时长，与淡出动画一致
	PageReadyFadeDuration = 400 * time.Millisecond
)

// 数字滚动
const (
	// CountUpDefaultDuration 未指定时长时的默认动画时长
	CountUpDefaultDuration = 2000 * time.Millisecond
)

// 着陆页
const (
	// SmoothScrollDuration "回到顶部"平滑滚动时长
	SmoothScrollDuration = 500 * time.Millisecond

	// FloatingButtonTransition 浮动按钮显隐过渡时长
	FloatingButtonTransition = 200 * time.Millisecond

	// ReserveNoticeDuration 点击"立即订座"后提示条的显示时长
	ReserveNoticeDuration = 2500 * time.Millisecond
)
