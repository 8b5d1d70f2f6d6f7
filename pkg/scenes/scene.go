package scenes

import (
	"image/color"

	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 是各场景共享的运行环境
type Context struct {
	// Scheduler 全局虚拟时钟，由 App 每个 tick 推进
	Scheduler *timing.Scheduler
	// SceneManager 场景切换
	SceneManager *game.SceneManager
	// Loader 站点内容加载器
	Loader *game.SiteLoader
	// Signal 加载完成信号
	Signal *game.LoadSignal
	// SkipIntro 为 true 时加载完成后直接进入着陆页
	SkipIntro bool
}

// 配色
var (
	colorBackground = color.RGBA{R: 24, G: 18, B: 14, A: 255}
	colorCream      = color.RGBA{R: 246, G: 236, B: 218, A: 255}
	colorEmber      = color.RGBA{R: 214, G: 96, B: 44, A: 255}
	colorMuted      = color.RGBA{R: 150, G: 136, B: 120, A: 255}
	colorTrack      = color.RGBA{R: 60, G: 50, B: 42, A: 255}
)

// drawCenteredText 以 (cx, y) 为顶部中点绘制文本，alpha 为整体不透明度
func drawCenteredText(screen *ebiten.Image, msg string, face *text.GoTextFace, cx, y float64, clr color.Color, alpha float64) {
	if face == nil || msg == "" || alpha <= 0 {
		return
	}
	w, _ := text.Measure(msg, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, msg, face, op)
}

// drawText 以 (x, y) 为左上角绘制文本
func drawText(screen *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, clr color.Color, alpha float64) {
	if face == nil || msg == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, msg, face, op)
}

// fillRect 绘制带不透明度的实心矩形
func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(clr, alpha), false)
}

// withAlpha 按不透明度缩放颜色（color.RGBA 为预乘 alpha）
func withAlpha(clr color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return clr
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * alpha),
		G: uint8(float64(clr.G) * alpha),
		B: uint8(float64(clr.B) * alpha),
		A: uint8(float64(clr.A) * alpha),
	}
}

// screenCenterX 返回屏幕水平中心
func screenCenterX() float64 {
	return config.WindowWidth / 2
}
