// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端与浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/embedded"
	"github.com/decker502/carrom/pkg/game"
	"github.com/decker502/carrom/pkg/scenes"
	"github.com/decker502/carrom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 资源与配置路径（嵌入文件系统内）
const (
	resourceConfigPath = "assets/config/resources.yaml"
	boardConfigPath    = "data/board.yaml"
	storageAppName     = "carrom"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// BoardConfigPath 从磁盘加载棋盘配置，为空时使用嵌入的 data/board.yaml
	BoardConfigPath string
	// Mute 启动时静音（不写入设置）
	Mute bool
	// Seed 震动随机数种子，0 表示按时间播种
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	boardConfig              *config.BoardConfig
	offscreen                *ebiten.Image // 棋盘先画到离屏图像，合成时叠加震动偏移
	pendingWindowSizeReset   bool          // 延迟设置窗口大小标志
	windowSizeResetCountdown int           // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded resources not initialized")
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	boardConfig, err := loadBoardConfig(cfg.BoardConfigPath)
	if err != nil {
		return nil, fmt.Errorf("棋盘配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 加载资源配置
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	for _, group := range resourceManager.GroupNames() {
		if err := resourceManager.LoadResourceGroup(group); err != nil {
			// 单个资源失败时降级（矢量圆形 / 无声），不阻止启动
			log.Printf("[App] Warning: resource group %s incomplete: %v", group, err)
		}
	}

	// 设置存储（失败时降级为内存模式）
	settingsManager := openSettings()

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.SetSessionMute(cfg.Mute)
	audioManager.PreloadSounds([]string{game.SoundHit, game.SoundPocket, game.SoundQueenPocket})
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	seed := cfg.Seed
	sceneManager.SetSceneFactory(func() game.Scene {
		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewSource(seed))
			seed++ // 每局使用不同但可复现的序列
		}
		return scenes.NewGameScene(resourceManager, sceneManager, scenes.GameSceneOptions{
			Config:   boardConfig,
			Audio:    audioManager,
			Settings: settingsManager,
			Pointer:  utils.NewEbitenPointer(),
			Rng:      rng,
		})
	})
	sceneManager.Restart()

	// 移动端没有窗口，全屏设置只在桌面端生效
	if !utils.IsMobile() && settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		boardConfig:     boardConfig,
	}, nil
}

// loadBoardConfig 优先从磁盘路径加载，否则读取嵌入的默认配置
func loadBoardConfig(path string) (*config.BoardConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载棋盘配置: %s", path)
		return config.LoadBoardConfig(path)
	}

	data, err := embedded.ReadFile(boardConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %s unavailable, using built-in defaults: %v", boardConfigPath, err)
		return config.DefaultBoardConfig(), nil
	}
	return config.ParseBoardConfig(data)
}

// openSettings 打开 gdata 存储并加载设置
func openSettings() *game.SettingsManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	storage, err := game.OpenStorage(storageAppName)
	if err != nil {
		log.Printf("[App] Warning: settings will not persist: %v", err)
	}

	// NewSettingsManager 的加载失败已在内部降级为默认设置
	sm, _ := game.NewSettingsManager(storage)
	return sm
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.GameTPS 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(config.GameTPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记住选择
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 场景先画到离屏图像，再按震动偏移平移贴到屏幕上
func (a *App) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	if a.offscreen == nil || a.offscreen.Bounds() != bounds {
		a.offscreen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}

	a.sceneManager.Draw(a.offscreen)

	screen.Fill(color.Black)
	dx, dy := a.sceneManager.ShakeOffset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	screen.DrawImage(a.offscreen, op)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveSettings 在退出前持久化设置
func (a *App) SaveSettings() error {
	return a.settingsManager.Save()
}
