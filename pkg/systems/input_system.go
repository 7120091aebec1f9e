package systems

import (
	"log"
	"math"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/game"
)

// PointerSource 提供当前帧的指针状态（鼠标或第一个触点）
// 松开的那一帧 pressed 为 false，x, y 是松开时的位置。
// utils.EbitenPointer 是基于 ebiten 的实现，测试中可以替换为脚本化的输入
type PointerSource interface {
	Pointer() (pressed bool, x, y int)
}

// InputSystem 处理击球子的拖拽与发射
//
// 按下位置在击球子半径内时开始拖拽并把击球子速度清零；
// 拖拽期间击球子跟随指针；松开时按 (按下位置 - 松开位置) / LaunchScale 发射，
// 播放击球音效并请求一次震动。
type InputSystem struct {
	em     *ecs.EntityManager
	cfg    *config.BoardConfig
	sounds SoundPlayer   // 可为 nil
	shaker ShakeTrigger  // 可为 nil
	source PointerSource // 可为 nil（无头模拟）

	wasPressed   bool
	lastX, lastY float64 // 上一帧的指针位置
	waitRelease  bool    // Cancel 之后忽略指针，直到它松开
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, cfg *config.BoardConfig, sounds SoundPlayer, shaker ShakeTrigger, source PointerSource) *InputSystem {
	return &InputSystem{
		em:     em,
		cfg:    cfg,
		sounds: sounds,
		shaker: shaker,
		source: source,
	}
}

// Update 轮询指针并把按下、移动、松开的边沿转换为对应操作
// 返回本帧是否发射了击球子
func (is *InputSystem) Update(deltaTime float64) bool {
	if is.source == nil {
		return false
	}

	pressed, ix, iy := is.source.Pointer()
	x, y := float64(ix), float64(iy)

	if is.waitRelease {
		is.waitRelease = pressed
		return false
	}

	launched := false
	switch {
	case pressed && !is.wasPressed:
		is.PointerDown(x, y)
	case pressed && is.wasPressed:
		if x != is.lastX || y != is.lastY {
			is.PointerMove(x, y)
		}
	case !pressed && is.wasPressed:
		launched = is.PointerUp(x, y)
	}

	is.wasPressed = pressed
	is.lastX, is.lastY = x, y
	return launched
}

// Cancel 放弃当前拖拽，不发射
// 击球子退回按下时的位置，之后的指针输入要等松开再按下才重新生效。
func (is *InputSystem) Cancel() {
	if is.wasPressed {
		is.waitRelease = true
	}
	is.wasPressed = false

	drag, pos, _, _, ok := is.striker()
	if !ok || !drag.Dragging {
		return
	}
	drag.Dragging = false
	pos.X, pos.Y = drag.OriginX, drag.OriginY
	log.Printf("[InputSystem] Drag cancelled, striker back at (%.1f, %.1f)", pos.X, pos.Y)
}

// striker 查找击球子（唯一带 DragComponent 的实体）
func (is *InputSystem) striker() (*components.DragComponent, *components.PositionComponent, *components.VelocityComponent, *components.CircleComponent, bool) {
	ids := ecs.GetEntitiesWith4[
		*components.DragComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CircleComponent,
	](is.em)
	if len(ids) == 0 {
		return nil, nil, nil, nil, false
	}
	id := ids[0]
	drag, _ := ecs.GetComponent[*components.DragComponent](is.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](is.em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](is.em, id)
	circle, _ := ecs.GetComponent[*components.CircleComponent](is.em, id)
	return drag, pos, vel, circle, true
}

// PointerDown 指针按下
// 返回是否开始拖拽
func (is *InputSystem) PointerDown(x, y float64) bool {
	drag, pos, vel, circle, ok := is.striker()
	if !ok {
		return false
	}

	if math.Hypot(x-pos.X, y-pos.Y) >= circle.Radius {
		return false
	}

	drag.Dragging = true
	drag.StartX = x
	drag.StartY = y
	drag.OriginX = pos.X
	drag.OriginY = pos.Y
	vel.Stop()
	return true
}

// PointerMove 指针移动，拖拽中击球子圆心跟随指针
func (is *InputSystem) PointerMove(x, y float64) {
	drag, pos, _, _, ok := is.striker()
	if !ok || !drag.Dragging {
		return
	}
	pos.X = x
	pos.Y = y
}

// PointerUp 指针松开
// 拖拽中松开时击球子从松开位置发射，返回是否发射
//
// 示例：按下 (100,100)，松开 (80,120)，LaunchScale = 5 → 速度 (4, -4)
func (is *InputSystem) PointerUp(x, y float64) bool {
	drag, pos, vel, _, ok := is.striker()
	if !ok || !drag.Dragging {
		return false
	}

	drag.Dragging = false
	pos.X, pos.Y = x, y
	scale := is.cfg.Physics.LaunchScale
	vel.VX = (drag.StartX - x) / scale
	vel.VY = (drag.StartY - y) / scale

	if is.sounds != nil {
		is.sounds.PlaySound(game.SoundHit)
	}
	if is.shaker != nil {
		hit := is.cfg.Shake.Hit
		is.shaker.Trigger(hit.Duration, hit.Magnitude)
	}

	log.Printf("[InputSystem] Striker launched with velocity (%.2f, %.2f)", vel.VX, vel.VY)
	return true
}

// IsDragging 击球子是否正在被拖拽
func (is *InputSystem) IsDragging() bool {
	drag, _, _, _, ok := is.striker()
	return ok && drag.Dragging
}
