package scenes

import (
	"log"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/systems"
	"github.com/decker502/tavola/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoadingScene 加载遮罩
//
// 每个 tick 推进一次 SiteLoader，显示进度条；加载信号触发后由 PageReadySystem
// 保持最短显示时间并淡出，完成后切换到开场序列（或直接进入着陆页）。
type LoadingScene struct {
	ctx       *Context
	pageReady *systems.PageReadySystem
	switched  bool

	brandFace *text.GoTextFace
	hintFace  *text.GoTextFace
}

// NewLoadingScene 创建加载场景
func NewLoadingScene(ctx *Context) *LoadingScene {
	s := &LoadingScene{ctx: ctx}
	s.pageReady = systems.NewPageReadySystem(ctx.Scheduler, ctx.Signal, s.onReady)
	log.Printf("[LoadingScene] Created (phase=%s)", s.pageReady.Phase())
	return s
}

// onReady 遮罩完全淡出后切换场景
func (s *LoadingScene) onReady() {
	if s.switched {
		return
	}
	s.switched = true

	if s.ctx.SkipIntro {
		log.Printf("[LoadingScene] Page ready, skipping intro")
		s.ctx.SceneManager.SwitchTo(NewLandingScene(s.ctx))
		return
	}
	log.Printf("[LoadingScene] Page ready, starting intro")
	s.ctx.SceneManager.SwitchTo(NewIntroScene(s.ctx))
}

// Update 推进加载步骤
func (s *LoadingScene) Update(deltaTime float64) {
	s.ctx.Loader.Update()

	// 字体就绪后才能绘制文字
	if s.brandFace == nil {
		if fonts := s.ctx.Loader.Content().Fonts; fonts != nil {
			s.brandFace = fonts.Face(utils.FontBold, 40)
			s.hintFace = fonts.Face(utils.FontRegular, 16)
		}
	}
}

// Draw 绘制加载遮罩；淡出阶段整体透明度随时间降低
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	alpha := 1.0
	if s.pageReady.FadeOut() {
		alpha = 1 - s.pageReady.FadeProgress()
	}
	if !s.pageReady.IsLoading() {
		return
	}

	cfg := s.ctx.Loader.Content().Config
	cx := screenCenterX()
	drawCenteredText(screen, cfg.Brand.Name, s.brandFace, cx, config.LoadingLogoY, colorCream, alpha)

	barX := cx - config.LoadingBarWidth/2
	fillRect(screen, barX, config.LoadingBarY, config.LoadingBarWidth, config.LoadingBarHeight, colorTrack, alpha)
	fillRect(screen, barX, config.LoadingBarY, config.LoadingBarWidth*s.ctx.Loader.Progress(), config.LoadingBarHeight, colorEmber, alpha)

	hint := "Loading"
	switch {
	case s.ctx.Loader.Err() != nil:
		hint = s.ctx.Loader.Err().Error()
	case s.pageReady.Phase() != components.LoadPhaseWaiting:
		hint = "Ready"
	}
	drawCenteredText(screen, hint, s.hintFace, cx, config.LoadingBarY+config.LoadingBarHeight+16, colorMuted, alpha)
}

// Dispose 释放页面就绪系统（取消未触发的保持/淡出定时器并注销加载监听）
func (s *LoadingScene) Dispose() {
	s.pageReady.Dispose()
}

// PageReady 返回页面就绪系统（测试与调试用）
func (s *LoadingScene) PageReady() *systems.PageReadySystem {
	return s.pageReady
}
