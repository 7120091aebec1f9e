package game

import "testing"

func newTestAudioManager(t *testing.T) (*AudioManager, *SettingsManager) {
	t.Helper()
	initTestAssets(t)
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	sm, _ := NewSettingsManager(nil)
	return NewAudioManager(rm, sm), sm
}

func TestPlaySound(t *testing.T) {
	am, _ := newTestAudioManager(t)

	if !am.PlaySound(SoundHit) {
		t.Error("PlaySound(SoundHit) should succeed")
	}
	if am.PlayCount(SoundHit) != 1 {
		t.Errorf("expected play count 1, got %d", am.PlayCount(SoundHit))
	}
}

// TestPlaySoundMissing 加载失败的音效静默失败
func TestPlaySoundMissing(t *testing.T) {
	am, _ := newTestAudioManager(t)

	if am.PlaySound(SoundQueenPocket) {
		t.Error("unsupported sound format should not play")
	}
	if am.PlaySound("SOUND_UNKNOWN") {
		t.Error("unknown sound should not play")
	}
	// 请求次数仍然记录
	if am.PlayCount(SoundQueenPocket) != 1 {
		t.Errorf("expected play count 1, got %d", am.PlayCount(SoundQueenPocket))
	}
}

func TestToggleMute(t *testing.T) {
	am, sm := newTestAudioManager(t)

	if am.ToggleMute() {
		t.Error("first toggle should disable sound")
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("settings should reflect muted state")
	}
	if am.PlaySound(SoundPocket) {
		t.Error("muted PlaySound should return false")
	}
	if !am.ToggleMute() {
		t.Error("second toggle should enable sound")
	}
}

func TestSetSoundVolume(t *testing.T) {
	am, _ := newTestAudioManager(t)

	am.SetSoundVolume(0.3)
	if am.GetSoundVolume() != 0.3 {
		t.Errorf("expected volume 0.3, got %v", am.GetSoundVolume())
	}

	noSettings := NewAudioManager(nil, nil)
	if noSettings.GetSoundVolume() != 0.8 {
		t.Errorf("expected default volume 0.8, got %v", noSettings.GetSoundVolume())
	}
	if noSettings.PlaySound(SoundHit) {
		t.Error("AudioManager without resources should not play")
	}
}

// TestSessionMuteNotSaved -mute 只影响本次运行，保存后重新加载仍然有声
func TestSessionMuteNotSaved(t *testing.T) {
	initTestAssets(t)
	storage := openTestStorage(t)
	sm, _ := NewSettingsManager(storage)
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	am := NewAudioManager(rm, sm)

	am.SetSessionMute(true)
	if am.PlaySound(SoundHit) {
		t.Error("PlaySound should be silent while session-muted")
	}

	sm.SetShowDebug(true) // 其他设置照常保存
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, _ := NewSettingsManager(storage)
	if !reloaded.GetSettings().SoundEnabled {
		t.Error("session mute leaked into saved settings")
	}
	if !reloaded.GetSettings().ShowDebug {
		t.Error("ShowDebug should have been saved")
	}
}

// TestToggleMuteClearsSessionMute M 键解除临时静音，且不把设置改成静音
func TestToggleMuteClearsSessionMute(t *testing.T) {
	am, sm := newTestAudioManager(t)
	am.SetSessionMute(true)

	if !am.ToggleMute() {
		t.Fatal("ToggleMute() should unmute a session-muted manager")
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("SoundEnabled should stay true")
	}
	if !am.PlaySound(SoundHit) {
		t.Error("PlaySound should succeed after unmuting")
	}

	noSettings := NewAudioManager(nil, nil)
	if noSettings.ToggleMute() {
		t.Error("ToggleMute() without settings should mute for the session")
	}
	if !noSettings.ToggleMute() {
		t.Error("second ToggleMute() should unmute")
	}
}
