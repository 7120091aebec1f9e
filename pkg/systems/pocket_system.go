package systems

import (
	"log"
	"math"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/game"
)

// PocketEvent 一次落袋
type PocketEvent struct {
	Entity ecs.EntityID
	Kind   components.PieceKind
	Color  components.CoinColor
	Index  int // 同色序号
	Pocket int // 袋口序号
}

// PocketSystem 检测棋子落袋
//
// 棋子圆心与袋口中心距离小于捕获半径即落袋：
// 标记 Pocketed、速度清零、播放音效并请求震动。
// 击球子永远不会落袋。
type PocketSystem struct {
	em     *ecs.EntityManager
	cfg    *config.BoardConfig
	sounds SoundPlayer  // 可为 nil
	shaker ShakeTrigger // 可为 nil
}

// NewPocketSystem 创建落袋检测系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 棋盘配置（震动参数）
//   - sounds: 音效播放器，可为 nil
//   - shaker: 震动请求接收方，可为 nil
func NewPocketSystem(em *ecs.EntityManager, cfg *config.BoardConfig, sounds SoundPlayer, shaker ShakeTrigger) *PocketSystem {
	return &PocketSystem{
		em:     em,
		cfg:    cfg,
		sounds: sounds,
		shaker: shaker,
	}
}

// pocketRef 袋口位置和参数
type pocketRef struct {
	pos    *components.PositionComponent
	pocket *components.PocketComponent
}

// pockets 按创建顺序返回所有袋口
func (ps *PocketSystem) pockets() []pocketRef {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PocketComponent](ps.em)
	refs := make([]pocketRef, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		pocket, _ := ecs.GetComponent[*components.PocketComponent](ps.em, id)
		refs = append(refs, pocketRef{pos: pos, pocket: pocket})
	}
	return refs
}

// Update 检测本 tick 的落袋，返回落袋事件
// 一枚棋子命中第一个满足条件的袋口后不再检查其他袋口
func (ps *PocketSystem) Update(deltaTime float64) []PocketEvent {
	pockets := ps.pockets()
	var events []PocketEvent

	for _, p := range activePieces(ps.em) {
		if p.info.Kind == components.PieceStriker {
			continue
		}

		for _, ref := range pockets {
			if math.Hypot(p.pos.X-ref.pos.X, p.pos.Y-ref.pos.Y) >= ref.pocket.CaptureRadius {
				continue
			}

			p.info.Pocketed = true
			p.vel.Stop()
			ps.feedback(p.info.Kind)

			events = append(events, PocketEvent{
				Entity: p.id,
				Kind:   p.info.Kind,
				Color:  p.info.Color,
				Index:  p.info.Index,
				Pocket: ref.pocket.Index,
			})
			log.Printf("[PocketSystem] %s %s#%d pocketed in pocket %d",
				p.info.Color, p.info.Kind, p.info.Index, ref.pocket.Index)
			break
		}
	}

	return events
}

// feedback 播放落袋音效并请求震动
func (ps *PocketSystem) feedback(kind components.PieceKind) {
	soundID := game.SoundPocket
	preset := ps.cfg.Shake.CoinPocket
	if kind == components.PieceQueen {
		soundID = game.SoundQueenPocket
		preset = ps.cfg.Shake.QueenPocket
	}

	if ps.sounds != nil {
		ps.sounds.PlaySound(soundID)
	}
	if ps.shaker != nil {
		ps.shaker.Trigger(preset.Duration, preset.Magnitude)
	}
}
