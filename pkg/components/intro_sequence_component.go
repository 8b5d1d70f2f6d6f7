package components

// IntroPhase 开场序列阶段
type IntroPhase int

const (
	// IntroPhaseLogo 展示品牌 logo
	IntroPhaseLogo IntroPhase = iota
	// IntroPhaseTagline 展示标语
	IntroPhaseTagline
	// IntroPhaseFade 整体淡出
	IntroPhaseFade
)

// String 返回阶段名称
func (p IntroPhase) String() string {
	switch p {
	case IntroPhaseLogo:
		return "logo"
	case IntroPhaseTagline:
		return "tagline"
	case IntroPhaseFade:
		return "fade"
	default:
		return "unknown"
	}
}

// IntroSequenceComponent 开场序列状态。
// Phase 在一次激活内只会向前推进：logo → tagline → fade。
type IntroSequenceComponent struct {
	// Phase 当前阶段
	Phase IntroPhase

	// IsCompleted 本次激活是否已经发出完成回调
	IsCompleted bool

	// Activations 累计激活次数（重新激活会从 logo 重新开始）
	Activations int
}
