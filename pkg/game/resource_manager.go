package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/decker502/carrom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads images and sound clips from the embedded asset filesystem and
// caches them, so each file is decoded once and reused.
//
// The ResourceManager implements the following key features:
// - Resource manifest (YAML) mapping resource IDs to paths
// - Image loading and caching (PNG/JPEG)
// - Sound effect loading and caching (WAV/MP3/OGG)
// - Degraded mode without an audio context (headless tools, tests)
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game
// goroutine before or during Update, so no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	board, err := rm.LoadImageByID(game.ImageBoard)
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded sound players: path -> Player
	audioContext *audio.Context           // Global audio context, nil disables audio

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context (48000 Hz). May be nil, in which
//     case every sound load fails with an error and the caller degrades to silence.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadResourceConfig parses the YAML manifest and builds the ID -> path map.
//
// Parameters:
//   - configPath: manifest path inside the embedded filesystem
//     (e.g., "assets/config/resources.yaml").
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	if len(config.Groups) == 0 {
		return fmt.Errorf("resource config %s defines no groups", configPath)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d groups, %d resources)",
		configPath, len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap flattens all groups into resourceMap.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = withDefaultExt(buildFullPath(rm.config.BasePath, img.Path), ".png")
		}
		for _, sound := range group.Sounds {
			rm.resourceMap[sound.ID] = withDefaultExt(buildFullPath(rm.config.BasePath, sound.Path), ".wav")
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// GroupNames returns the manifest group names in sorted order.
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupResourceIDs returns the image and sound IDs declared by a group,
// images first, in manifest order.
func (rm *ResourceManager) GroupResourceIDs(groupName string) []string {
	if rm.config == nil {
		return nil
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(group.Images)+len(group.Sounds))
	for _, img := range group.Images {
		ids = append(ids, img.ID)
	}
	for _, sound := range group.Sounds {
		ids = append(ids, sound.ID)
	}
	return ids
}

// decodeImage reads and decodes an image file without touching the GPU.
func decodeImage(p string) (image.Image, error) {
	file, err := embedded.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be decoded.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	img, err := decodeImage(p)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[p]
}

// LoadImageByID loads an image through the manifest.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID returns a cached image by resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// decodeSound decodes a sound file into a seekable PCM stream.
// Supported formats: WAV (.wav), MP3 (.mp3), OGG Vorbis (.ogg).
func decodeSound(p string) (io.ReadSeeker, error) {
	audioData, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", p, err)
	}

	// Read the entire file into memory so the stream can seek freely
	reader := bytes.NewReader(audioData)

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", p, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", p, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", p, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if there is no audio context or the file cannot be decoded.
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[p]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context, cannot load %s", p)
	}

	stream, err := decodeSound(p)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.audioCache[p] = player
	return player, nil
}

// LoadResourceGroup loads every image and sound of a manifest group.
//
// Failures do not stop the group: every failed resource is logged and the
// first error is returned after the whole group was attempted, so a single
// missing sprite never leaves the rest of the board unloaded.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var firstErr error
	record := func(err error) {
		log.Printf("[ResourceManager] Warning: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			record(fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err))
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffect(rm.resourceMap[sound.ID]); err != nil {
			record(fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err))
		}
	}

	return firstErr
}

// CoinImageID returns the manifest ID of the i-th (1-based) coin sprite of a color.
//
// Example:
//
//	CoinImageID("white", 3) == "IMAGE_WHITE_3"
func CoinImageID(color string, index int) string {
	return fmt.Sprintf("IMAGE_%s_%d", strings.ToUpper(color), index)
}
