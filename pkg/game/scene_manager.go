package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 创建一局新的棋局场景
// 由 app 注入，game 包因此不需要依赖 scenes 包
type SceneFactory func() Scene

// SceneManager 持有当前场景并把 Update / Draw 转发给它
type SceneManager struct {
	current Scene
	factory SceneFactory
}

// NewSceneManager 创建没有场景的管理器
// 之后用 SwitchTo 或 Restart 设置场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.factory = factory
}

// SwitchTo 直接替换当前场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.current = scene
}

// GetCurrentScene 当前场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// Restart 用工厂创建新的一局
// 工厂未设置或返回 nil 时保留当前场景
func (sm *SceneManager) Restart() {
	if sm.factory == nil {
		log.Printf("[SceneManager] Restart ignored: no scene factory")
		return
	}

	next := sm.factory()
	if next == nil {
		log.Printf("[SceneManager] Restart ignored: factory returned nil")
		return
	}
	sm.current = next
	log.Printf("[SceneManager] New game started")
}

// ShakeOffset 当前场景的画面偏移
// 场景未实现 Shaker 时为 (0, 0)
func (sm *SceneManager) ShakeOffset() (float64, float64) {
	if shaker, ok := sm.current.(Shaker); ok {
		return shaker.ShakeOffset()
	}
	return 0, 0
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
