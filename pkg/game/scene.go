package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (currently only the board).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed tick.
	// deltaTime is the tick length in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Shaker 是可选接口：场景通过它向 App 报告当前画面偏移
//
// App 在把离屏画面绘制到屏幕时应用该偏移，
// 相当于对整个画布做一次平移变换，不影响场景内的坐标。
type Shaker interface {
	ShakeOffset() (float64, float64)
}
