package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the site (loading overlay, intro, landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，持有定时器、帧请求或订阅的场景需要实现
//
// SceneManager 在切换离开场景时调用 Dispose()，场景必须在其中取消
// 所有尚未触发的定时器和帧请求并注销监听。Dispose 必须可以重复调用。
type Disposable interface {
	Dispose()
}
