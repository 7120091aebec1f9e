package systems

import (
	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/ecs"
)

// SoundPlayer 按资源ID播放音效
// *game.AudioManager 实现了该接口
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// ShakeTrigger 请求一次震动
// *ShakeSystem 实现了该接口
type ShakeTrigger interface {
	Trigger(durationMs, magnitude float64)
}

// piece 一次查询得到的棋子组件集合
type piece struct {
	id     ecs.EntityID
	pos    *components.PositionComponent
	vel    *components.VelocityComponent
	circle *components.CircleComponent
	info   *components.PieceComponent
}

// activePieces 返回所有未落袋的棋子（按 EntityID 升序）
func activePieces(em *ecs.EntityManager) []piece {
	ids := ecs.GetEntitiesWith4[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CircleComponent,
		*components.PieceComponent,
	](em)

	pieces := make([]piece, 0, len(ids))
	for _, id := range ids {
		info, _ := ecs.GetComponent[*components.PieceComponent](em, id)
		if !info.IsActive() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		circle, _ := ecs.GetComponent[*components.CircleComponent](em, id)
		pieces = append(pieces, piece{id: id, pos: pos, vel: vel, circle: circle, info: info})
	}
	return pieces
}
