package components

// VisibilityComponent 滚动可见性标志
type VisibilityComponent struct {
	// Visible 最近一次滚动采样是否超过阈值
	Visible bool

	// Threshold 最近一次采样使用的像素阈值
	Threshold float64

	// Toggles 可见性切换次数
	Toggles int
}
