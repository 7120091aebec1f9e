package systems

import (
	"math"
	"testing"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// layerRank 返回棋子种类在 drawLayers 中的位置
func layerRank(t *testing.T, kind components.PieceKind) int {
	t.Helper()
	for i, k := range drawLayers {
		if k == kind {
			return i
		}
	}
	t.Fatalf("kind %v has no draw layer", kind)
	return -1
}

// TestRenderFallback 贴图全部缺失时用矢量圆形绘制，落袋的棋子不画
func TestRenderFallback(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	rack := entities.NewRack(em, nil, cfg)
	mustPiece(em, rack.White[0]).Pocketed = true

	rs := NewRenderSystem(em, cfg, nil)
	list := rs.drawList()

	want := len(rack.White) + len(rack.Black) + 2 - 1
	if len(list) != want {
		t.Fatalf("drawList length: got %d, want %d", len(list), want)
	}
	for i, p := range list {
		if p.id == rack.White[0] {
			t.Errorf("pocketed coin %d is still drawn", p.id)
		}
		if i > 0 && layerRank(t, list[i-1].info.Kind) > layerRank(t, p.info.Kind) {
			t.Errorf("index %d: %v drawn after %v", i, p.info.Kind, list[i-1].info.Kind)
		}
	}
	if last := list[len(list)-1]; last.id != rack.Striker {
		t.Errorf("top piece: got %d, want striker %d", last.id, rack.Striker)
	}
	if list[len(list)-2].id != rack.Queen {
		t.Errorf("queen should sit right under the striker, got %d", list[len(list)-2].id)
	}

	screen := ebiten.NewImage(600, 600)
	rs.Draw(screen)
}

func TestRenderDrawListOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	striker := addTestPiece(em, components.PieceStriker, 300, 500, 0, 0, 20)
	queen := addTestPiece(em, components.PieceQueen, 300, 300, 0, 0, 15)
	coinA := addTestPiece(em, components.PieceCoin, 270, 300, 0, 0, 15)
	coinB := addTestPiece(em, components.PieceCoin, 330, 300, 0, 0, 15)

	got := NewRenderSystem(em, testConfig(), nil).drawList()
	want := []ecs.EntityID{coinA, coinB, queen, striker}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].id != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i].id, want[i])
		}
	}
}

func TestRenderSprites(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	id := addTestPiece(em, components.PieceQueen, 295, 315, 0, 0, 15)
	sprite := &components.SpriteComponent{Image: ebiten.NewImage(60, 60), Width: 30, Height: 30}
	ecs.AddComponent(em, id, sprite)

	m := spriteGeoM(sprite, 295, 315)
	tests := []struct {
		name         string
		sx, sy       float64
		wantX, wantY float64
	}{
		{"top left", 0, 0, 280, 300},
		{"center", 30, 30, 295, 315},
		{"bottom right", 60, 60, 310, 330},
	}
	for _, tt := range tests {
		x, y := m.Apply(tt.sx, tt.sy)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, x, y, tt.wantX, tt.wantY)
		}
	}

	screen := ebiten.NewImage(600, 600)
	NewRenderSystem(em, cfg, ebiten.NewImage(300, 300)).Draw(screen)
}

func TestBoardGeoM(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		size float64
	}{
		{"upscale", 300, 300, 600},
		{"downscale", 1200, 1200, 600},
		{"non square", 400, 200, 600},
	}
	for _, tt := range tests {
		m := boardGeoM(tt.w, tt.h, tt.size)
		x, y := m.Apply(float64(tt.w), float64(tt.h))
		if math.Abs(x-tt.size) > 1e-9 || math.Abs(y-tt.size) > 1e-9 {
			t.Errorf("%s: far corner at (%v, %v), want (%v, %v)", tt.name, x, y, tt.size, tt.size)
		}
		if x0, y0 := m.Apply(0, 0); x0 != 0 || y0 != 0 {
			t.Errorf("%s: origin moved to (%v, %v)", tt.name, x0, y0)
		}
	}
}

func TestFallbackColor(t *testing.T) {
	tests := []struct {
		name string
		info components.PieceComponent
		want any
	}{
		{"striker", components.PieceComponent{Kind: components.PieceStriker}, strikerFallbackColor},
		{"queen", components.PieceComponent{Kind: components.PieceQueen}, queenFallbackColor},
		{"white", components.PieceComponent{Kind: components.PieceCoin, Color: components.CoinColorWhite}, whiteFallbackColor},
		{"black", components.PieceComponent{Kind: components.PieceCoin, Color: components.CoinColorBlack}, blackFallbackColor},
	}
	for _, tt := range tests {
		if got := fallbackColor(&tt.info); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
