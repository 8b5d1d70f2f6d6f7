//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// SkipHint 返回开场序列的跳过提示
func SkipHint() string {
	return "Tap to skip"
}
