package systems

import (
	"math"

	"github.com/decker502/carrom/pkg/ecs"
)

// CollisionSystem 处理棋子之间的碰撞
//
// 对每一对重叠的棋子（含击球子）：
//  1. 沿圆心连线各推开重叠量的一半，使圆心距离恰好等于半径之和
//  2. 交换一半的速度差：Δ = vB - vA，vA += Δ/2，vB -= Δ/2
//
// 不考虑质量与恢复系数。圆心重合（距离为 0）的棋子对没有方向，跳过。
type CollisionSystem struct {
	em *ecs.EntityManager

	// 上一次 Update 处理的碰撞对数（调试覆盖层使用）
	lastContacts int
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 对所有棋子对做一轮碰撞处理
// 棋子对按 EntityID 升序遍历，同样的输入总是得到同样的结果
func (cs *CollisionSystem) Update(deltaTime float64) {
	pieces := activePieces(cs.em)
	cs.lastContacts = 0

	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			if cs.resolve(&pieces[i], &pieces[j]) {
				cs.lastContacts++
			}
		}
	}
}

// LastContacts 返回上一个 tick 处理的碰撞对数
func (cs *CollisionSystem) LastContacts() int {
	return cs.lastContacts
}

// resolve 处理一对棋子，返回是否发生了碰撞
func (cs *CollisionSystem) resolve(a, b *piece) bool {
	dx := b.pos.X - a.pos.X
	dy := b.pos.Y - a.pos.Y
	d := math.Hypot(dx, dy)
	minDist := a.circle.Radius + b.circle.Radius

	if d == 0 || d >= minDist {
		return false
	}

	// 单位法向量（从 a 指向 b）
	nx, ny := dx/d, dy/d
	half := (minDist - d) / 2

	a.pos.X -= nx * half
	a.pos.Y -= ny * half
	b.pos.X += nx * half
	b.pos.Y += ny * half

	dvx := b.vel.VX - a.vel.VX
	dvy := b.vel.VY - a.vel.VY
	a.vel.VX += dvx / 2
	a.vel.VY += dvy / 2
	b.vel.VX -= dvx / 2
	b.vel.VY -= dvy / 2

	return true
}
