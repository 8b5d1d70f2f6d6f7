package config

// 布局配置常量
// 本文件定义了窗口尺寸与着陆页中浮动元素的位置参数

const (
	// WindowWidth 逻辑屏幕宽度（像素）
	WindowWidth = 960

	// WindowHeight 逻辑屏幕高度（像素），同时也是着陆页的视口高度
	WindowHeight = 640

	// WindowTitle 窗口标题
	WindowTitle = "Tavola"
)

// 浮动按钮布局
const (
	// FloatingButtonSize 浮动按钮边长
	FloatingButtonSize = 48.0

	// FloatingButtonMargin 浮动按钮距窗口右下角的边距
	FloatingButtonMargin = 24.0

	// FloatingButtonGap 两个浮动按钮之间的间距
	FloatingButtonGap = 12.0

	// FloatingButtonSlide 浮动按钮出现/隐藏时的滑动距离
	FloatingButtonSlide = 16.0
)

// BackToTopButtonRect 返回"回到顶部"按钮的矩形（x, y, w, h）
func BackToTopButtonRect() (x, y, w, h float64) {
	x = WindowWidth - FloatingButtonMargin - FloatingButtonSize
	y = WindowHeight - FloatingButtonMargin - FloatingButtonSize
	return x, y, FloatingButtonSize, FloatingButtonSize
}

// ReserveButtonRect 返回"立即订座"浮动按钮的矩形（位于回到顶部按钮上方）
func ReserveButtonRect() (x, y, w, h float64) {
	x, y, w, h = BackToTopButtonRect()
	return x, y - FloatingButtonGap - FloatingButtonSize, w, h
}

// PointInRect 判断点是否在矩形内
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// 加载遮罩布局
const (
	// LoadingBarWidth 进度条宽度
	LoadingBarWidth = 320.0

	// LoadingBarHeight 进度条高度
	LoadingBarHeight = 8.0

	// LoadingBarY 进度条 Y 坐标
	LoadingBarY = 400.0

	// LoadingLogoY 加载页品牌名 Y 坐标
	LoadingLogoY = 280.0
)
