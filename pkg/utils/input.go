// Package utils 放平台相关的小工具：指针输入、存储目录、移动端检测
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPointer 基于 ebiten 的指针输入源
// 同时支持鼠标和触摸，触摸优先，且始终跟踪最先按下的触点
type EbitenPointer struct {
	touch touchTracker
}

// NewEbitenPointer 创建指针输入源
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// Pointer 返回当前帧的指针状态：是否按下、X坐标、Y坐标
// 松开的那一帧返回松开时的位置
func (p *EbitenPointer) Pointer() (pressed bool, x, y int) {
	released := p.touch.tracking && inpututil.IsTouchJustReleased(p.touch.id)
	if touched, down, tx, ty := p.touch.step(released, inpututil.AppendJustPressedTouchIDs(nil), ebiten.TouchPosition); touched {
		return down, tx, ty
	}

	// 其次检查鼠标输入（桌面设备），光标位置在松开后仍然有效
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// touchTracker 跟踪单个触点
// 触点抬起后 ebiten 不再提供它的坐标，所以记下最后一次看到的位置
type touchTracker struct {
	id           ebiten.TouchID
	tracking     bool
	lastX, lastY int
}

// step 推进一帧
//
// 参数:
//   - released: 被跟踪的触点是否在这一帧抬起
//   - justPressed: 这一帧新按下的触点
//   - position: 查询触点坐标
//
// touched 为 false 表示这一帧与触摸无关，调用方应改用鼠标。
func (t *touchTracker) step(released bool, justPressed []ebiten.TouchID, position func(ebiten.TouchID) (int, int)) (touched, pressed bool, x, y int) {
	if t.tracking && released {
		t.tracking = false
		return true, false, t.lastX, t.lastY
	}

	if !t.tracking && len(justPressed) > 0 {
		t.id = justPressed[0]
		t.tracking = true
	}
	if !t.tracking {
		return false, false, 0, 0
	}

	t.lastX, t.lastY = position(t.id)
	return true, true, t.lastX, t.lastY
}
