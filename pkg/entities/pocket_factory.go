package entities

import (
	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
)

// NewPocket 创建一个袋口实体
// 袋口只有位置和捕获半径，创建后不再修改
func NewPocket(em *ecs.EntityManager, index int, x, y, captureRadius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PocketComponent{
		CaptureRadius: captureRadius,
		Index:         index,
	})
	return id
}

// NewPockets 按配置顺序创建所有袋口
func NewPockets(em *ecs.EntityManager, cfg *config.BoardConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(cfg.Pockets.Positions))
	for i, p := range cfg.Pockets.Positions {
		ids = append(ids, NewPocket(em, i, p.X, p.Y, cfg.Pockets.CaptureRadius))
	}
	return ids
}
