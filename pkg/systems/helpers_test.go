package systems

import (
	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
)

// addTestPiece 直接创建一枚棋子（不加载贴图）
func addTestPiece(em *ecs.EntityManager, kind components.PieceKind, x, y, vx, vy, r float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: r})
	ecs.AddComponent(em, id, &components.PieceComponent{Kind: kind, Color: components.CoinColorWhite, Index: 1})
	if kind == components.PieceStriker {
		ecs.AddComponent(em, id, &components.DragComponent{})
	}
	return id
}

func mustPos(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

func mustVel(em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	return vel
}

func mustPiece(em *ecs.EntityManager, id ecs.EntityID) *components.PieceComponent {
	p, _ := ecs.GetComponent[*components.PieceComponent](em, id)
	return p
}

// recordingSounds 记录播放的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

// shakeRequest 一次震动请求
type shakeRequest struct {
	duration, magnitude float64
}

// recordingShaker 记录震动请求
type recordingShaker struct {
	requests []shakeRequest
}

func (r *recordingShaker) Trigger(durationMs, magnitude float64) {
	r.requests = append(r.requests, shakeRequest{durationMs, magnitude})
}

func testConfig() *config.BoardConfig {
	return config.DefaultBoardConfig()
}

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}
