// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载站点配置、创建共享的调度器与
// 加载信号，并把加载遮罩作为第一个场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/embedded"
	"github.com/decker502/tavola/pkg/game"
	"github.com/decker502/tavola/pkg/scenes"
	"github.com/decker502/tavola/pkg/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkipIntro 加载完成后跳过开场序列，直接进入着陆页
	SkipIntro bool
	// ConfigPath 站点配置文件路径；为空时使用嵌入的 data/site.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scheduler                *timing.Scheduler
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadSiteConfig 读取并校验站点配置
//
// path 为空时从嵌入资源读取 data/site.yaml，否则从文件系统读取。
func LoadSiteConfig(path string) (*config.SiteConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embedded.ReadFile(config.SiteConfigPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	return config.ParseSiteConfig(data)
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	siteConfig, err := LoadSiteConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("站点配置加载失败: %w", err)
	}
	log.Printf("[App] Site config loaded: %d sections, %d stats", len(siteConfig.Sections), len(siteConfig.Stats))

	scheduler := timing.NewScheduler()
	signal := game.NewLoadSignal()
	sceneManager := game.NewSceneManager()

	ctx := &scenes.Context{
		Scheduler:    scheduler,
		SceneManager: sceneManager,
		Loader:       game.NewSiteLoader(siteConfig, signal),
		Signal:       signal,
		SkipIntro:    cfg.SkipIntro,
	}
	sceneManager.SwitchTo(scenes.NewLoadingScene(ctx))

	return &App{
		sceneManager: sceneManager,
		scheduler:    scheduler,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次：先推进虚拟时钟（触发到期的定时器与动画帧），再更新当前场景
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	tick := time.Second / time.Duration(ebiten.TPS())
	a.scheduler.Advance(tick)
	a.sceneManager.Update(tick.Seconds())
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Shutdown 释放当前场景（窗口关闭时调用）
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	log.Printf("[App] Shutdown, %d pending timers/frames", a.scheduler.Pending())
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
