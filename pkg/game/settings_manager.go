package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 用户偏好
// 棋局本身不存档，这里只有音量和显示选项
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
	ShowDebug    bool    `yaml:"showDebug"` // F3 覆盖层
}

// DefaultSettings 首次启动时的设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// gdata 中的存储位置：对象 settings，属性 global
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 读写 GameSettings
//
// 底层存储是 gdata（桌面端为用户配置目录，浏览器为 localStorage）。
// 存储打不开时 gdataManager 为 nil，设置只保留在内存中，Save 静默成功。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// OpenStorage 打开名为 appName 的 gdata 存储
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata storage %q: %w", appName, err)
	}
	return m, nil
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
//
// 读取失败只记录警告并使用默认值，返回的 error 目前总是 nil。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Persistent 设置是否会写入存储
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从存储读取设置，出错时回退到默认值并返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if !sm.Persistent() || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	loaded, err := decodeSettings(data)
	if err != nil {
		return err
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (volume %.2f, sound %v)", loaded.SoundVolume, loaded.SoundEnabled)
	return nil
}

// decodeSettings 解析 YAML 设置
// 缺失的字段保留默认值，音量钳制到合法范围
func decodeSettings(data []byte) (*GameSettings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.SoundVolume = clampVolume(s.SoundVolume)
	return s, nil
}

// Save 把当前设置写入存储
func (sm *SettingsManager) Save() error {
	if !sm.Persistent() {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 返回当前设置，调用方可以直接修改
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// 以下 setter 只改内存，需要再调用 Save

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func (sm *SettingsManager) SetShowDebug(enabled bool) {
	sm.settings.ShowDebug = enabled
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0), 1)
}
