package scenes

import (
	"log"
	"time"

	"github.com/decker502/tavola/pkg/components"
	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/ecs"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/systems"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/decker502/tavola/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 着陆页排版
const (
	landingPaddingX   = 96.0
	sectionTitleY     = 72.0
	sectionBodyY      = 128.0
	sectionLineHeight = 28.0
	statCardWidth     = 180.0
	statCardGap       = 16.0
	statCardY         = 200.0
)

// floatingButton 浮动按钮：显隐由滚动可见性系统驱动，切换时做短暂的淡入淡出
type floatingButton struct {
	label     string
	rect      func() (x, y, w, h float64)
	vis       *systems.ScrollVisibilitySystem
	toggledAt time.Duration
	toggled   bool
}

// LandingScene 可滚动的着陆页
//
// 包含两个浮动按钮（回到顶部、立即订座），以及进入视口时开始数字滚动的统计卡片。
type LandingScene struct {
	ctx     *Context
	content *game.SiteContent

	scroll       *game.ScrollState
	input        *utils.ScrollInput
	smoothScroll *systems.SmoothScrollSystem

	entityManager *ecs.EntityManager
	stats         *systems.StatCounterSystem

	backToTop *floatingButton
	reserve   *floatingButton

	noticeTimer *timing.Timer
	noticeShown bool

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
	statFace  *text.GoTextFace
	smallFace *text.GoTextFace
}

// NewLandingScene 创建着陆页
func NewLandingScene(ctx *Context) *LandingScene {
	content := ctx.Loader.Content()
	cfg := content.Config

	s := &LandingScene{
		ctx:           ctx,
		content:       content,
		scroll:        game.NewScrollState(config.WindowHeight, cfg.ContentHeight()),
		entityManager: ecs.NewEntityManager(),
	}
	s.input = utils.NewScrollInput(cfg.Scroll.WheelSpeed, cfg.Scroll.KeyStep, config.WindowHeight*0.9)
	s.smoothScroll = systems.NewSmoothScrollSystem(ctx.Scheduler, s.scroll, config.SmoothScrollDuration)
	s.stats = systems.NewStatCounterSystem(s.entityManager, ctx.Scheduler, s.scroll, cfg)

	s.backToTop = s.newFloatingButton("Top", "back-to-top", cfg.Scroll.BackToTop, config.BackToTopButtonRect)
	s.reserve = s.newFloatingButton("Book", "reserve", cfg.Scroll.Reserve, config.ReserveButtonRect)

	if content.Fonts != nil {
		s.titleFace = content.Fonts.Face(utils.FontBold, 36)
		s.bodyFace = content.Fonts.Face(utils.FontRegular, game.SectionBodyFontSize)
		s.statFace = content.Fonts.Face(utils.FontBold, 40)
		s.smallFace = content.Fonts.Face(utils.FontRegular, 14)
	}

	log.Printf("[LandingScene] Created (content height=%.0f)", cfg.ContentHeight())
	return s
}

// newFloatingButton 创建浮动按钮及其滚动可见性系统
func (s *LandingScene) newFloatingButton(label, name string, threshold config.Threshold, rect func() (x, y, w, h float64)) *floatingButton {
	b := &floatingButton{
		label: label,
		rect:  rect,
		vis:   systems.NewScrollVisibilitySystem(name, s.scroll, threshold),
	}
	b.vis.SetObserver(func(bool) {
		b.toggled = true
		b.toggledAt = s.ctx.Scheduler.Now()
	})
	return b
}

// Update 处理滚动与点击
func (s *LandingScene) Update(deltaTime float64) {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked && s.handleClick(float64(x), float64(y)) {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		s.smoothScroll.ScrollTo(0)
		return
	}

	if dy := s.input.Read(); dy != 0 {
		// 用户输入打断平滑滚动
		s.smoothScroll.Cancel()
		s.scroll.ScrollBy(dy)
	}
}

// handleClick 处理浮动按钮点击，返回是否命中
func (s *LandingScene) handleClick(x, y float64) bool {
	if s.hit(s.backToTop, x, y) {
		log.Printf("[LandingScene] Back to top")
		s.smoothScroll.ScrollTo(0)
		return true
	}
	if s.hit(s.reserve, x, y) {
		s.showReserveNotice()
		return true
	}
	return false
}

// hit 判断点击是否落在可见的浮动按钮上
func (s *LandingScene) hit(b *floatingButton, x, y float64) bool {
	if !b.vis.Visible() {
		return false
	}
	bx, by, bw, bh := b.rect()
	return config.PointInRect(x, y, bx, by, bw, bh)
}

// showReserveNotice 显示订座提示条，一段时间后自动隐藏
func (s *LandingScene) showReserveNotice() {
	log.Printf("[LandingScene] Reservation requested")
	s.noticeTimer.Stop()
	s.noticeShown = true
	s.noticeTimer = s.ctx.Scheduler.After(config.ReserveNoticeDuration, func() {
		s.noticeShown = false
		s.noticeTimer = nil
	})
}

// Draw 绘制页面分区、统计卡片与浮动按钮
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	offset := s.scroll.ScrollOffset()
	y := -offset
	for i, section := range s.content.Config.Sections {
		if y+section.Height > 0 && y < config.WindowHeight {
			s.drawSection(screen, section, i, y)
		}
		y += section.Height
	}

	s.drawStats(screen, offset)
	s.drawScrollbar(screen, offset)
	s.drawFloatingButton(screen, s.reserve)
	s.drawFloatingButton(screen, s.backToTop)

	if s.noticeShown {
		fillRect(screen, 0, config.WindowHeight-56, config.WindowWidth, 56, colorEmber, 0.95)
		drawCenteredText(screen, "Call us to book your table", s.bodyFace, screenCenterX(), config.WindowHeight-40, colorCream, 1)
	}
}

// drawSection 绘制一个分区
func (s *LandingScene) drawSection(screen *ebiten.Image, section config.SectionConfig, index int, top float64) {
	if index%2 == 1 {
		fillRect(screen, 0, top, config.WindowWidth, section.Height, colorTrack, 0.5)
	}

	drawText(screen, section.Title, s.titleFace, landingPaddingX, top+sectionTitleY, colorCream, 1)
	for i, line := range s.content.SectionLines[section.ID] {
		drawText(screen, line, s.bodyFace, landingPaddingX, top+sectionBodyY+float64(i)*sectionLineHeight, colorMuted, 1)
	}
}

// drawStats 绘制统计卡片
func (s *LandingScene) drawStats(screen *ebiten.Image, offset float64) {
	for _, id := range s.stats.Cards() {
		card, _ := ecs.GetComponent[*components.StatCardComponent](s.entityManager, id)
		counter, _ := ecs.GetComponent[*systems.CountUpSystem](s.entityManager, id)

		x := landingPaddingX + float64(card.Index)*(statCardWidth+statCardGap)
		y := card.SectionTop - offset + statCardY
		if y > config.WindowHeight || y+120 < 0 {
			continue
		}

		drawText(screen, counter.DisplayValue(), s.statFace, x, y, colorEmber, 1)
		drawText(screen, card.Label, s.smallFace, x, y+56, colorMuted, 1)
	}
}

// drawScrollbar 绘制右侧滚动条
func (s *LandingScene) drawScrollbar(screen *ebiten.Image, offset float64) {
	contentHeight := s.scroll.ContentHeight()
	if contentHeight <= config.WindowHeight {
		return
	}
	thumbHeight := config.WindowHeight * config.WindowHeight / contentHeight
	thumbY := (config.WindowHeight - thumbHeight) * offset / s.scroll.MaxOffset()
	fillRect(screen, config.WindowWidth-6, thumbY, 4, thumbHeight, colorMuted, 0.6)
}

// drawFloatingButton 绘制浮动按钮，显隐切换时带滑动与淡入淡出
func (s *LandingScene) drawFloatingButton(screen *ebiten.Image, b *floatingButton) {
	shown := 0.0
	if b.vis.Visible() {
		shown = 1
	}
	if b.toggled {
		p := utils.EaseOutQuad(utils.Progress(float64(s.ctx.Scheduler.Now()-b.toggledAt), float64(config.FloatingButtonTransition)))
		if b.vis.Visible() {
			shown = p
		} else {
			shown = 1 - p
		}
	}
	if shown <= 0 {
		return
	}

	x, y, w, h := b.rect()
	y += (1 - shown) * config.FloatingButtonSlide

	vector.DrawFilledCircle(screen, float32(x+w/2), float32(y+h/2), float32(w/2), withAlpha(colorEmber, shown), true)
	drawCenteredText(screen, b.label, s.smallFace, x+w/2, y+h/2-8, colorCream, shown)
}

// Dispose 释放所有订阅、定时器与帧请求
func (s *LandingScene) Dispose() {
	s.smoothScroll.Dispose()
	s.backToTop.vis.Dispose()
	s.reserve.vis.Dispose()
	s.stats.Dispose()
	s.entityManager.DestroyAll()
	s.noticeTimer.Stop()
	s.noticeTimer = nil
	log.Printf("[LandingScene] Disposed")
}

// Scroll 返回滚动状态（测试与调试用）
func (s *LandingScene) Scroll() *game.ScrollState {
	return s.scroll
}
