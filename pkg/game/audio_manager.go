package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 按资源ID播放音效（击球、落袋、皇后落袋）
//
// 音量和静音开关来自 SettingsManager。播放失败不会返回错误：
// 找不到或解码失败的音效记入 missing，之后的请求直接跳过。
type AudioManager struct {
	resources *ResourceManager // 可为 nil（无头模拟，只计数）
	settings  *SettingsManager // 可为 nil，使用默认音量

	players   map[string]*audio.Player
	missing   map[string]bool
	playCount map[string]int // 包括静音时的请求

	muted bool // 本次运行的临时静音（-mute），不写入设置
}

// NewAudioManager 创建音频管理器，两个参数都可以为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resources: rm,
		settings:  sm,
		players:   make(map[string]*audio.Player),
		missing:   make(map[string]bool),
		playCount: make(map[string]int),
	}
}

// PlaySound 从头播放一次音效，返回是否真的发出了声音
func (am *AudioManager) PlaySound(soundID string) bool {
	am.playCount[soundID]++

	if !am.enabled() {
		return false
	}

	player := am.player(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: rewind %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayCount 音效被请求的次数
func (am *AudioManager) PlayCount(soundID string) int {
	return am.playCount[soundID]
}

// SetSoundVolume 修改音量并立即应用到已加载的播放器
// 没有 SettingsManager 时音量固定为默认值
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settings == nil {
		return
	}
	am.settings.SetSoundVolume(volume)
	for _, p := range am.players {
		p.SetVolume(am.volume())
	}
}

func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume()
}

// SetSessionMute 设置本次运行的临时静音
// 只影响 PlaySound，保存设置时 SoundEnabled 保持原值
func (am *AudioManager) SetSessionMute(muted bool) {
	am.muted = muted
}

// ToggleMute 切换音效开关，返回切换后是否有声
// 处于临时静音时先解除临时静音；静音时暂停正在播放的音效
func (am *AudioManager) ToggleMute() bool {
	switch {
	case am.muted:
		am.muted = false
		if am.settings != nil {
			am.settings.SetSoundEnabled(true)
		}
	case am.settings == nil:
		am.muted = true
	default:
		am.settings.SetSoundEnabled(!am.settings.GetSettings().SoundEnabled)
	}

	on := am.enabled()
	if !on {
		for _, p := range am.players {
			p.Pause()
		}
	}
	log.Printf("[AudioManager] Sound enabled: %v", on)
	return on
}

// PreloadSounds 提前解码音效，避免第一次击球时卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	ready := 0
	for _, id := range soundIDs {
		if am.player(id) != nil {
			ready++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", ready, len(soundIDs))
}

// player 返回缓存的播放器，首次请求时加载
func (am *AudioManager) player(soundID string) *audio.Player {
	if p, ok := am.players[soundID]; ok {
		return p
	}
	if am.resources == nil || am.missing[soundID] {
		return nil
	}

	p, err := am.load(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		am.missing[soundID] = true
		return nil
	}
	am.players[soundID] = p
	return p
}

func (am *AudioManager) load(soundID string) (*audio.Player, error) {
	path, ok := am.resources.ResolvePath(soundID)
	if !ok {
		return nil, fmt.Errorf("sound not found: %s", soundID)
	}
	return am.resources.LoadSoundEffect(path)
}

func (am *AudioManager) enabled() bool {
	if am.muted {
		return false
	}
	return am.settings == nil || am.settings.GetSettings().SoundEnabled
}

func (am *AudioManager) volume() float64 {
	if am.settings == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settings.GetSettings().SoundVolume
}
