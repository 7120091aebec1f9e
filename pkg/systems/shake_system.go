package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
)

// ShakeSystem 管理"地震"效果
//
// 整局只有一个震动实体，所有震动请求都交给 ShakeSystem 合并：
//   - 幅度取当前与新请求中的较大值
//   - 持续时间取剩余时间与新请求中的较大值
//   - 已经过时间从 0 重新计时
//
// 震动期间每个 tick 生成一个画面偏移，并对台面上的普通棋子和皇后
// 施加独立的随机抖动（直接修改真实坐标）。击球子不抖动。
type ShakeSystem struct {
	em     *ecs.EntityManager
	cfg    *config.BoardConfig
	rng    *rand.Rand
	entity ecs.EntityID // 震动实体ID

	triggers int // 累计请求次数（调试覆盖层使用）
}

// NewShakeSystem 创建震动系统并创建震动实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 棋盘配置（抖动幅度）
//   - rng: 随机数源，为 nil 时使用当前时间作为种子
func NewShakeSystem(em *ecs.EntityManager, cfg *config.BoardConfig, rng *rand.Rand) *ShakeSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ss := &ShakeSystem{
		em:  em,
		cfg: cfg,
		rng: rng,
	}
	ss.entity = em.CreateEntity()
	ecs.AddComponent(em, ss.entity, &components.ShakeComponent{})
	return ss
}

// state 返回震动组件
func (ss *ShakeSystem) state() *components.ShakeComponent {
	shake, ok := ecs.GetComponent[*components.ShakeComponent](ss.em, ss.entity)
	if !ok {
		// 实体被意外清理时重建
		ss.entity = ss.em.CreateEntity()
		shake = &components.ShakeComponent{}
		ecs.AddComponent(ss.em, ss.entity, shake)
	}
	return shake
}

// Trigger 请求一次震动
//
// 参数:
//   - durationMs: 持续时间（毫秒）
//   - magnitude: 画面偏移幅度（像素）
func (ss *ShakeSystem) Trigger(durationMs, magnitude float64) {
	shake := ss.state()
	ss.triggers++

	if remaining := shake.Remaining(); remaining > 0 {
		magnitude = max(shake.Magnitude, magnitude)
		durationMs = max(remaining, durationMs)
	}

	shake.Elapsed = 0
	shake.Duration = durationMs
	shake.Magnitude = magnitude
	shake.Active = durationMs > 0
	if !shake.Active {
		shake.OffsetX, shake.OffsetY = 0, 0
	}

	log.Printf("[ShakeSystem] Shake %.0fms / %.1fpx", durationMs, magnitude)
}

// Update 推进震动效果
//
// 参数:
//   - deltaTime: 帧间隔（秒），内部换算为毫秒
func (ss *ShakeSystem) Update(deltaTime float64) {
	shake := ss.state()
	if !shake.Active {
		return
	}

	if shake.Elapsed >= shake.Duration {
		shake.Active = false
		shake.OffsetX, shake.OffsetY = 0, 0
		return
	}

	shake.OffsetX = ss.uniform(shake.Magnitude)
	shake.OffsetY = ss.uniform(shake.Magnitude)
	ss.jitterPieces()

	shake.Elapsed += deltaTime * 1000
}

// jitterPieces 对普通棋子和皇后施加随机抖动
func (ss *ShakeSystem) jitterPieces() {
	jitter := ss.cfg.Shake.Jitter
	if jitter <= 0 {
		return
	}
	for _, p := range activePieces(ss.em) {
		if p.info.Kind == components.PieceStriker {
			continue
		}
		p.pos.X += ss.uniform(jitter)
		p.pos.Y += ss.uniform(jitter)
	}
}

// uniform 返回 [-m, m) 内均匀分布的随机数
func (ss *ShakeSystem) uniform(m float64) float64 {
	return (ss.rng.Float64()*2 - 1) * m
}

// Offset 返回当前画面偏移，震动结束后为 (0, 0)
func (ss *ShakeSystem) Offset() (float64, float64) {
	shake := ss.state()
	return shake.OffsetX, shake.OffsetY
}

// IsActive 是否正在震动
func (ss *ShakeSystem) IsActive() bool {
	return ss.state().Active
}

// TriggerCount 返回累计的震动请求次数
func (ss *ShakeSystem) TriggerCount() int {
	return ss.triggers
}
