package systems

import (
	"math"

	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
)

// PhysicsSystem 推进棋子的运动
// 每个 tick：位置加上速度，速度乘以摩擦系数，然后做边界钳制与反弹。
// 击球子与其他棋子使用同一套规则；已落袋的棋子不参与。
type PhysicsSystem struct {
	em  *ecs.EntityManager
	cfg *config.BoardConfig
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 棋盘配置（摩擦、反弹系数、棋盘尺寸）
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.BoardConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:  em,
		cfg: cfg,
	}
}

// Update 推进一个 tick
//
// 速度单位是 像素/tick，因此 deltaTime 不参与计算。
func (ps *PhysicsSystem) Update(deltaTime float64) {
	friction := ps.cfg.Physics.Friction
	size := ps.cfg.Board.Size

	for _, p := range activePieces(ps.em) {
		p.pos.X += p.vel.VX
		p.pos.Y += p.vel.VY
		p.vel.VX *= friction
		p.vel.VY *= friction

		p.pos.X, p.vel.VX = ps.clampAxis(p.pos.X, p.vel.VX, p.circle.Radius, size)
		p.pos.Y, p.vel.VY = ps.clampAxis(p.pos.Y, p.vel.VY, p.circle.Radius, size)
	}
}

// clampAxis 把一个坐标分量钳制在 [r, size-r]，越界时速度分量反向并衰减
func (ps *PhysicsSystem) clampAxis(x, v, r, size float64) (float64, float64) {
	restitution := ps.cfg.Physics.WallRestitution
	if x-r < 0 {
		return r, v * -restitution
	}
	if x+r > size {
		return size - r, v * -restitution
	}
	return x, v
}

// Settled 判断所有台面上的棋子速度是否都低于阈值
func (ps *PhysicsSystem) Settled(threshold float64) bool {
	for _, p := range activePieces(ps.em) {
		if math.Hypot(p.vel.VX, p.vel.VY) >= threshold {
			return false
		}
	}
	return true
}
