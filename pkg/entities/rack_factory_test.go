package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockImageLoader 记录请求的资源ID，对 failIDs 中的ID返回错误
type mockImageLoader struct {
	requested []string
	failIDs   map[string]bool
}

func (m *mockImageLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	m.requested = append(m.requested, resourceID)
	if m.failIDs[resourceID] {
		return nil, errors.New("not found")
	}
	return ebiten.NewImage(1, 1), nil
}

func TestNewRackLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBoardConfig()
	loader := &mockImageLoader{}

	rack := NewRack(em, loader, cfg)

	if len(rack.White) != 8 || len(rack.Black) != 8 {
		t.Fatalf("expected 8 white and 8 black coins, got %d/%d", len(rack.White), len(rack.Black))
	}
	if len(rack.Pockets) != 4 {
		t.Fatalf("expected 4 pockets, got %d", len(rack.Pockets))
	}
	if len(rack.Coins()) != 16 {
		t.Errorf("Coins() should return 16 ids, got %d", len(rack.Coins()))
	}

	tests := []struct {
		name   string
		id     ecs.EntityID
		x, y   float64
		radius float64
		kind   components.PieceKind
	}{
		{"white 1", rack.White[0], 155, 265, 15, components.PieceCoin},
		{"white 8", rack.White[7], 435, 265, 15, components.PieceCoin},
		{"black 1", rack.Black[0], 155, 365, 15, components.PieceCoin},
		{"queen", rack.Queen, 295, 315, 15, components.PieceQueen},
		{"striker", rack.Striker, 300, 550, 20, components.PieceStriker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, tt.id)
			if !ok {
				t.Fatal("missing PositionComponent")
			}
			if pos.X != tt.x || pos.Y != tt.y {
				t.Errorf("position: got (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.x, tt.y)
			}
			circle, _ := ecs.GetComponent[*components.CircleComponent](em, tt.id)
			if circle.Radius != tt.radius {
				t.Errorf("radius: got %v, want %v", circle.Radius, tt.radius)
			}
			piece, _ := ecs.GetComponent[*components.PieceComponent](em, tt.id)
			if piece.Kind != tt.kind || piece.Pocketed {
				t.Errorf("piece: got %+v", piece)
			}
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, tt.id)
			if !vel.IsZero() {
				t.Error("pieces must start at rest")
			}
		})
	}

	// 只有击球子带拖拽组件
	if got := ecs.GetEntitiesWith1[*components.DragComponent](em); len(got) != 1 || got[0] != rack.Striker {
		t.Errorf("DragComponent should only be on the striker, got %v", got)
	}
}

func TestNewRackNoOverlap(t *testing.T) {
	em := ecs.NewEntityManager()
	NewRack(em, nil, config.DefaultBoardConfig())

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CircleComponent](em)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, _ := ecs.GetComponent[*components.PositionComponent](em, ids[i])
			b, _ := ecs.GetComponent[*components.PositionComponent](em, ids[j])
			ra, _ := ecs.GetComponent[*components.CircleComponent](em, ids[i])
			rb, _ := ecs.GetComponent[*components.CircleComponent](em, ids[j])
			if d := math.Hypot(a.X-b.X, a.Y-b.Y); d < ra.Radius+rb.Radius {
				t.Errorf("entities %d and %d overlap: d=%.2f", ids[i], ids[j], d)
			}
		}
	}
}

func TestNewRackSprites(t *testing.T) {
	em := ecs.NewEntityManager()
	loader := &mockImageLoader{failIDs: map[string]bool{game.ImageQueen: true}}
	rack := NewRack(em, loader, config.DefaultBoardConfig())

	// 16 枚棋子 + 皇后 + 击球子
	if len(loader.requested) != 18 {
		t.Errorf("expected 18 image requests, got %d", len(loader.requested))
	}
	if loader.requested[0] != "IMAGE_WHITE_1" || loader.requested[8] != "IMAGE_BLACK_1" {
		t.Errorf("unexpected request order: %v", loader.requested)
	}

	queen, _ := ecs.GetComponent[*components.SpriteComponent](em, rack.Queen)
	if queen.Image != nil {
		t.Error("failed queen load should leave a nil image")
	}
	if queen.Width != 30 || queen.Height != 30 {
		t.Errorf("queen sprite size: got %vx%v", queen.Width, queen.Height)
	}

	striker, _ := ecs.GetComponent[*components.SpriteComponent](em, rack.Striker)
	if striker.Image == nil {
		t.Error("striker image should be loaded")
	}
	if striker.Width != 40 || striker.Height != 40 {
		t.Errorf("striker should be drawn at its diameter, got %vx%v", striker.Width, striker.Height)
	}
}

func TestNewPockets(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBoardConfig()
	ids := NewPockets(em, cfg)

	for i, id := range ids {
		pocket, ok := ecs.GetComponent[*components.PocketComponent](em, id)
		if !ok {
			t.Fatalf("pocket %d missing PocketComponent", i)
		}
		if pocket.Index != i || pocket.CaptureRadius != 20 {
			t.Errorf("pocket %d: got %+v", i, pocket)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		want := cfg.Pockets.Positions[i]
		if pos.X != want.X || pos.Y != want.Y {
			t.Errorf("pocket %d position: got (%v, %v), want %+v", i, pos.X, pos.Y, want)
		}
		if ecs.HasComponent[*components.PieceComponent](em, id) {
			t.Errorf("pocket %d must not be a piece", i)
		}
	}
}
