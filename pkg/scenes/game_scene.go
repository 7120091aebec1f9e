package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/entities"
	"github.com/decker502/carrom/pkg/game"
	"github.com/decker502/carrom/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameSceneOptions 创建棋局场景的参数
// 除 Config 外都可以为 nil，对应功能降级（无贴图、无声音、不持久化设置、无指针输入）
type GameSceneOptions struct {
	Config   *config.BoardConfig
	Audio    *game.AudioManager
	Settings *game.SettingsManager
	Pointer  systems.PointerSource

	// Rng 震动随机数源，为 nil 时按时间播种
	Rng *rand.Rand
}

// GameScene 一局卡罗姆棋
//
// 每个 tick 按固定顺序更新系统：
// 输入 → 物理 → 碰撞 → 落袋 → 震动。
// 绘制时由 RenderSystem 画棋盘和棋子，震动的画面偏移由 App 在合成时施加。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	cfg             *config.BoardConfig

	audio    *game.AudioManager
	settings *game.SettingsManager

	rack *entities.Rack

	inputSystem     *systems.InputSystem
	physicsSystem   *systems.PhysicsSystem
	collisionSystem *systems.CollisionSystem
	pocketSystem    *systems.PocketSystem
	shakeSystem     *systems.ShakeSystem
	renderSystem    *systems.RenderSystem

	showDebug   bool
	lastPockets []systems.PocketEvent

	// keyJustPressed 热键检测，测试中可替换
	keyJustPressed func(ebiten.Key) bool
}

var (
	_ game.Scene  = (*GameScene)(nil)
	_ game.Shaker = (*GameScene)(nil)
)

// NewGameScene 创建新的一局
//
// 参数:
//   - rm: 资源管理器，可为 nil（无头模拟）
//   - sm: 场景管理器，可为 nil；设置后 R 键通过 SceneManager.Restart 开新局
//   - opts: 其余依赖
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, opts GameSceneOptions) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultBoardConfig()
	}

	s := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		entityManager:   ecs.NewEntityManager(),
		gameState:       game.NewGameState(),
		cfg:             cfg,
		audio:           opts.Audio,
		settings:        opts.Settings,
		keyJustPressed:  inpututil.IsKeyJustPressed,
	}

	if s.settings != nil {
		s.showDebug = s.settings.GetSettings().ShowDebug
	}

	// 接口字段不能接收带类型的 nil 指针
	var sounds systems.SoundPlayer
	if s.audio != nil {
		sounds = s.audio
	}
	var loader entities.ImageLoader
	if rm != nil {
		loader = rm
	}

	s.shakeSystem = systems.NewShakeSystem(s.entityManager, cfg, opts.Rng)
	s.inputSystem = systems.NewInputSystem(s.entityManager, cfg, sounds, s.shakeSystem, opts.Pointer)
	s.physicsSystem = systems.NewPhysicsSystem(s.entityManager, cfg)
	s.collisionSystem = systems.NewCollisionSystem(s.entityManager)
	s.pocketSystem = systems.NewPocketSystem(s.entityManager, cfg, sounds, s.shakeSystem)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, cfg, s.loadBoardImage())

	s.rack = entities.NewRack(s.entityManager, loader, cfg)

	log.Printf("[GameScene] New game ready (%d entities)", s.entityManager.EntityCount())
	return s
}

// loadBoardImage 加载棋盘背景，失败时返回 nil
func (s *GameScene) loadBoardImage() *ebiten.Image {
	if s.resourceManager == nil {
		return nil
	}
	img, err := s.resourceManager.LoadImageByID(game.ImageBoard)
	if err != nil {
		log.Printf("[GameScene] Warning: board image unavailable, using plain board: %v", err)
		return nil
	}
	return img
}

// Update 处理热键后推进一个 tick
func (s *GameScene) Update(deltaTime float64) {
	s.handleHotkeys()
	if s.gameState.IsPaused {
		return
	}
	s.Step(deltaTime)
}

// Step 按固定顺序推进一个 tick 的模拟（不处理热键）
// 返回本 tick 的落袋事件
func (s *GameScene) Step(deltaTime float64) []systems.PocketEvent {
	s.gameState.Ticks++

	if s.inputSystem.Update(deltaTime) { // 1. 指针输入（拖拽、发射）
		s.gameState.RecordShot()
	}
	s.physicsSystem.Update(deltaTime)          // 2. 运动、摩擦、边界
	s.collisionSystem.Update(deltaTime)        // 3. 棋子碰撞
	events := s.pocketSystem.Update(deltaTime) // 4. 落袋检测
	s.shakeSystem.Update(deltaTime)            // 5. 震动

	for _, ev := range events {
		s.gameState.RecordPocket(ev.Kind.String(), ev.Color.String())
	}
	if len(events) > 0 {
		s.lastPockets = events
	}
	return events
}

// handleHotkeys 处理键盘快捷键
//   - R: 重新摆盘
//   - P / Esc: 暂停 / 继续
//   - F3: 调试覆盖层
//   - M: 静音
func (s *GameScene) handleHotkeys() {
	if s.keyJustPressed(ebiten.KeyR) {
		s.restart()
		return
	}

	if s.keyJustPressed(ebiten.KeyP) || s.keyJustPressed(ebiten.KeyEscape) {
		s.gameState.TogglePause()
		if s.gameState.IsPaused {
			s.inputSystem.Cancel()
		}
		log.Printf("[GameScene] Paused: %v", s.gameState.IsPaused)
	}

	if s.keyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
		if s.settings != nil {
			s.settings.SetShowDebug(s.showDebug)
			s.saveSettings()
		}
	}

	if s.keyJustPressed(ebiten.KeyM) && s.audio != nil {
		s.audio.ToggleMute()
		s.saveSettings()
	}
}

// restart 开始新的一局
// 有场景管理器时由工厂创建新场景，否则在当前场景内重新摆盘
func (s *GameScene) restart() {
	if s.sceneManager != nil && s.sceneManager.GetCurrentScene() == game.Scene(s) {
		s.sceneManager.Restart()
		if s.sceneManager.GetCurrentScene() != game.Scene(s) {
			return
		}
	}
	s.Rerack()
}

// Rerack 清空棋盘并按配置重新摆好所有棋子，计数清零
func (s *GameScene) Rerack() {
	s.entityManager.Clear()
	s.gameState = game.NewGameState()
	s.lastPockets = nil

	var loader entities.ImageLoader
	if s.resourceManager != nil {
		loader = s.resourceManager
	}
	s.rack = entities.NewRack(s.entityManager, loader, s.cfg)
	log.Printf("[GameScene] Board re-racked")
}

// saveSettings 持久化设置，失败只记录日志
func (s *GameScene) saveSettings() {
	if s.settings == nil {
		return
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制棋盘、棋子和覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.showDebug {
		s.drawDebugOverlay(screen)
	}
	if s.gameState.IsPaused {
		s.drawPauseOverlay(screen)
	}
}

// ShakeOffset 返回当前的画面震动偏移
func (s *GameScene) ShakeOffset() (float64, float64) {
	return s.shakeSystem.Offset()
}

// GameState 返回本局状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回本局的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Rack 返回本局的棋子实体
func (s *GameScene) Rack() *entities.Rack {
	return s.rack
}

// Input 返回输入系统（无头模拟通过它直接击球）
func (s *GameScene) Input() *systems.InputSystem {
	return s.inputSystem
}

// Settled 所有棋子是否已基本静止
func (s *GameScene) Settled() bool {
	return s.physicsSystem.Settled(s.cfg.Physics.SettleSpeed)
}
