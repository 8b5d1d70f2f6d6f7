package scenes

import (
	"log"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/systems"
	"github.com/decker502/tavola/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// IntroScene 开场序列：品牌名 → 标语 → 淡出 → 着陆页
//
// 点击或按空格跳过开场。
type IntroScene struct {
	ctx   *Context
	intro *systems.IntroSequenceSystem

	// fadeStartedAt 进入 fade 阶段的时刻
	fadeStartedAt time.Duration
	taglineAt     time.Duration
	switched      bool

	brandFace   *text.GoTextFace
	taglineFace *text.GoTextFace
	hintFace    *text.GoTextFace
}

// NewIntroScene 创建开场场景并立即激活序列
func NewIntroScene(ctx *Context) *IntroScene {
	s := &IntroScene{ctx: ctx}

	if fonts := ctx.Loader.Content().Fonts; fonts != nil {
		s.brandFace = fonts.Face(utils.FontBold, 64)
		s.taglineFace = fonts.Face(utils.FontRegular, 22)
		s.hintFace = fonts.Face(utils.FontRegular, 14)
	}

	s.intro = systems.NewIntroSequenceSystem(ctx.Scheduler, s.toLanding)
	s.intro.SetPhaseObserver(s.onPhaseChange)
	s.intro.Start()
	return s
}

// onPhaseChange 记录阶段切换时刻，用于绘制过渡
func (s *IntroScene) onPhaseChange(phase components.IntroPhase) {
	switch phase {
	case components.IntroPhaseTagline:
		s.taglineAt = s.ctx.Scheduler.Now()
	case components.IntroPhaseFade:
		s.fadeStartedAt = s.ctx.Scheduler.Now()
	}
}

// toLanding 切换到着陆页（序列完成或用户跳过）
func (s *IntroScene) toLanding() {
	if s.switched {
		return
	}
	s.switched = true
	s.ctx.SceneManager.SwitchTo(NewLandingScene(s.ctx))
}

// Update 处理跳过输入
func (s *IntroScene) Update(deltaTime float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		log.Printf("[IntroScene] Skipped in phase %s", s.intro.Phase())
		s.toLanding()
	}
}

// Draw 按当前阶段绘制
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	now := s.ctx.Scheduler.Now()
	alpha := 1.0
	if s.intro.Phase() == components.IntroPhaseFade {
		fade := config.IntroCompleteDelay - config.IntroFadeDelay
		alpha = 1 - utils.Progress(float64(now-s.fadeStartedAt), float64(fade))
	}

	cfg := s.ctx.Loader.Content().Config
	cx := screenCenterX()
	drawCenteredText(screen, cfg.Brand.Name, s.brandFace, cx, config.WindowHeight/2-60, colorCream, alpha)

	if s.intro.Phase() >= components.IntroPhaseTagline {
		// 标语渐显
		in := utils.EaseOutQuad(utils.Progress(float64(now-s.taglineAt), float64(config.IntroTaglineFadeIn)))
		drawCenteredText(screen, cfg.Brand.Tagline, s.taglineFace, cx, config.WindowHeight/2+24, colorEmber, alpha*in)
	}

	drawCenteredText(screen, utils.SkipHint(), s.hintFace, cx, config.WindowHeight-48, colorMuted, alpha*0.8)
}

// Dispose 释放开场序列：取消所有未触发的阶段切换
func (s *IntroScene) Dispose() {
	s.intro.Dispose()
}

// Intro 返回开场序列系统（测试与调试用）
func (s *IntroScene) Intro() *systems.IntroSequenceSystem {
	return s.intro
}
