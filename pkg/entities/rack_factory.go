package entities

import (
	"log"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
)

// Rack 一局开始时创建的全部实体
type Rack struct {
	Striker ecs.EntityID
	Queen   ecs.EntityID
	White   []ecs.EntityID
	Black   []ecs.EntityID
	Pockets []ecs.EntityID
}

// Coins 返回所有普通棋子（先白后黑）
func (r *Rack) Coins() []ecs.EntityID {
	coins := make([]ecs.EntityID, 0, len(r.White)+len(r.Black))
	coins = append(coins, r.White...)
	return append(coins, r.Black...)
}

// NewRack 按配置摆好一局棋
//
// 创建顺序固定：袋口、白子、黑子、皇后、击球子。
// EntityID 递增，查询按ID排序，因此碰撞遍历顺序在每局中一致。
func NewRack(em *ecs.EntityManager, loader ImageLoader, cfg *config.BoardConfig) *Rack {
	rack := &Rack{
		Pockets: NewPockets(em, cfg),
	}

	for i, p := range config.RowPositions(cfg.Rack.WhiteRow) {
		rack.White = append(rack.White, NewCoin(em, loader, cfg, components.CoinColorWhite, i+1, p.X, p.Y))
	}
	for i, p := range config.RowPositions(cfg.Rack.BlackRow) {
		rack.Black = append(rack.Black, NewCoin(em, loader, cfg, components.CoinColorBlack, i+1, p.X, p.Y))
	}

	rack.Queen = NewQueen(em, loader, cfg)
	rack.Striker = NewStriker(em, loader, cfg)

	log.Printf("[Entities] Rack created: %d white, %d black, queen, striker, %d pockets",
		len(rack.White), len(rack.Black), len(rack.Pockets))
	return rack
}
