package systems

import (
	"testing"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/entities"
	"github.com/decker502/carrom/pkg/game"
)

func TestPocketCoinCapture(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	entities.NewPockets(em, cfg)
	coin := addTestPiece(em, components.PieceCoin, 22, 20, -3, -3, 15)

	sounds, shaker := &recordingSounds{}, &recordingShaker{}
	ps := NewPocketSystem(em, cfg, sounds, shaker)

	events := ps.Update(1.0 / 60)
	if len(events) != 1 {
		t.Fatalf("expected 1 pocket event, got %d", len(events))
	}
	if events[0].Entity != coin || events[0].Kind != components.PieceCoin || events[0].Pocket != 0 {
		t.Errorf("unexpected event %+v", events[0])
	}

	piece := mustPiece(em, coin)
	if !piece.Pocketed {
		t.Error("coin should be pocketed")
	}
	if !mustVel(em, coin).IsZero() {
		t.Error("pocketed coin velocity should be zero")
	}
	if len(sounds.played) != 1 || sounds.played[0] != game.SoundPocket {
		t.Errorf("expected SOUND_POCKET, got %v", sounds.played)
	}
	if len(shaker.requests) != 1 || shaker.requests[0] != (shakeRequest{200, 3}) {
		t.Errorf("expected shake 200ms/3px, got %v", shaker.requests)
	}

	// 落袋只发生一次
	if events := ps.Update(1.0 / 60); len(events) != 0 {
		t.Errorf("coin must not be pocketed twice, got %v", events)
	}
	if len(sounds.played) != 1 {
		t.Errorf("sound should play once, got %v", sounds.played)
	}

	// 落袋后不再参与物理、碰撞
	other := addTestPiece(em, components.PieceCoin, 40, 20, 0, 0, 15)
	NewPhysicsSystem(em, cfg).Update(1.0 / 60)
	NewCollisionSystem(em).Update(1.0 / 60)
	if pos := mustPos(em, other); pos.X != 40 || pos.Y != 20 {
		t.Errorf("pocketed coin still collides: other moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestPocketQueenCapture(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	entities.NewPockets(em, cfg)
	addTestPiece(em, components.PieceQueen, 580, 582, 0, 0, 15)

	sounds, shaker := &recordingSounds{}, &recordingShaker{}
	events := NewPocketSystem(em, cfg, sounds, shaker).Update(1.0 / 60)

	if len(events) != 1 || events[0].Kind != components.PieceQueen || events[0].Pocket != 3 {
		t.Fatalf("unexpected events %+v", events)
	}
	if len(sounds.played) != 1 || sounds.played[0] != game.SoundQueenPocket {
		t.Errorf("expected SOUND_QUEEN_POCKET, got %v", sounds.played)
	}
	if len(shaker.requests) != 1 || shaker.requests[0] != (shakeRequest{600, 10}) {
		t.Errorf("expected shake 600ms/10px, got %v", shaker.requests)
	}
}

// TestPocketStrikerNeverPocketed 击球子停在袋口也不会落袋
func TestPocketStrikerNeverPocketed(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	entities.NewPockets(em, cfg)
	striker := addTestPiece(em, components.PieceStriker, 20, 20, 0, 0, 20)

	events := NewPocketSystem(em, cfg, nil, nil).Update(1.0 / 60)
	if len(events) != 0 {
		t.Errorf("striker must never be pocketed, got %v", events)
	}
	if mustPiece(em, striker).Pocketed {
		t.Error("striker flagged as pocketed")
	}
}

func TestPocketBoundaryAndOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := testConfig()
	entities.NewPocket(em, 0, 100, 100, 20)
	entities.NewPocket(em, 1, 106, 100, 20)

	inBoth := addTestPiece(em, components.PieceCoin, 103, 100, 0, 0, 15)
	onEdge := addTestPiece(em, components.PieceCoin, 100, 120, 0, 0, 15) // 距离恰好 20

	events := NewPocketSystem(em, cfg, nil, nil).Update(1.0 / 60)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %+v", events)
	}
	if events[0].Entity != inBoth || events[0].Pocket != 0 {
		t.Errorf("first pocket should win, got %+v", events[0])
	}
	if mustPiece(em, onEdge).Pocketed {
		t.Error("distance equal to capture radius must not pocket")
	}
}
