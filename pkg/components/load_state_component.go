package components

// LoadPhase 页面就绪序列阶段
type LoadPhase int

const (
	// LoadPhaseWaiting 等待宿主环境的加载完成信号
	LoadPhaseWaiting LoadPhase = iota
	// LoadPhaseHolding 已加载，保持遮罩的最短显示时间
	LoadPhaseHolding
	// LoadPhaseFading 遮罩淡出中
	LoadPhaseFading
	// LoadPhaseDone 就绪
	LoadPhaseDone
)

// String 返回阶段名称
func (p LoadPhase) String() string {
	switch p {
	case LoadPhaseWaiting:
		return "waiting-for-load"
	case LoadPhaseHolding:
		return "holding"
	case LoadPhaseFading:
		return "fading"
	case LoadPhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// LoadStateComponent 加载遮罩状态
//
// 不变量：
//   - FadeOut 只会在 IsLoading 仍为 true 时变为 true
//   - IsLoading 只会在 FadeOut 保持 true 满淡出时长之后变为 false
type LoadStateComponent struct {
	IsLoading bool
	FadeOut   bool
	Phase     LoadPhase
}
