package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"testing/fstest"

	"github.com/decker502/carrom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// makeTestPNG encodes a solid 10x10 image.
func makeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 160, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

// makeTestWAV builds a short 48kHz 16-bit stereo silent WAV file.
func makeTestWAV(t *testing.T) []byte {
	t.Helper()
	const (
		sampleRate = 48000
		channels   = 2
		bits       = 16
		frames     = 480
	)
	dataSize := frames * channels * bits / 8

	var buf bytes.Buffer
	w := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatalf("failed to write wav: %v", err)
		}
	}
	buf.WriteString("RIFF")
	w(uint32(36 + dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(sampleRate))
	w(uint32(sampleRate * channels * bits / 8))
	w(uint16(channels * bits / 8))
	w(uint16(bits))
	buf.WriteString("data")
	w(uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

const testManifest = `
version: "1.0"
base_path: assets
groups:
  board:
    images:
      - id: IMAGE_BOARD
        path: images/board
  pieces:
    images:
      - id: IMAGE_WHITE_1
        path: images/white1.png
      - id: IMAGE_QUEEN
        path: images/queen.png
      - id: IMAGE_STRIKER
        path: images/striker_missing.png
  sounds:
    sounds:
      - id: SOUND_HIT
        path: sounds/hit
      - id: SOUND_POCKET
        path: sounds/pocket.wav
      - id: SOUND_QUEEN_POCKET
        path: sounds/queenpocket.flac
`

// initTestAssets 用内存文件系统初始化 embedded 包
func initTestAssets(t *testing.T) {
	t.Helper()
	pngData := makeTestPNG(t)
	wavData := makeTestWAV(t)
	fsys := fstest.MapFS{
		"assets/config/resources.yaml":   {Data: []byte(testManifest)},
		"assets/images/board.png":        {Data: pngData},
		"assets/images/white1.png":       {Data: pngData},
		"assets/images/queen.png":        {Data: pngData},
		"assets/sounds/hit.wav":          {Data: wavData},
		"assets/sounds/pocket.wav":       {Data: wavData},
		"assets/sounds/queenpocket.flac": {Data: wavData},
		"assets/config/broken.yaml":      {Data: []byte("groups: [")},
		"assets/config/empty.yaml":       {Data: []byte("version: \"1.0\"\n")},
	}
	embedded.Init(fsys, fsys)
}
