package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebugOverlay 绘制调试覆盖层（F3）
// 显示 TPS、击球数、落袋计数和最近一次落袋
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 230, 110, color.RGBA{A: 140}, false)
	ebitenutil.DebugPrintAt(screen, s.debugText(), 6, 4)
}

// debugText 生成调试覆盖层文字
func (s *GameScene) debugText() string {
	gs := s.gameState

	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f\n", ebiten.ActualTPS())
	fmt.Fprintf(&b, "Shots: %d  Ticks: %d\n", gs.Shots, gs.Ticks)
	fmt.Fprintf(&b, "White: %d/%d  Black: %d/%d\n",
		gs.WhitePocketed, len(s.rack.White), gs.BlackPocketed, len(s.rack.Black))
	fmt.Fprintf(&b, "Queen: %v\n", gs.QueenPocketed)
	fmt.Fprintf(&b, "Contacts: %d  Shake: %v\n", s.collisionSystem.LastContacts(), s.shakeSystem.IsActive())

	state := "moving"
	if s.Settled() {
		state = "ready"
	}
	fmt.Fprintf(&b, "Board: %s", state)

	if len(s.lastPockets) > 0 {
		ev := s.lastPockets[len(s.lastPockets)-1]
		fmt.Fprintf(&b, "\nLast: %s %s #%d -> pocket %d", ev.Color, ev.Kind, ev.Index, ev.Pocket)
	}
	return b.String()
}

// drawPauseOverlay 暂停时的半透明遮罩和提示
func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	size := float32(s.cfg.Board.Size)
	vector.DrawFilledRect(screen, 0, 0, size, size, color.RGBA{A: 120}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED  (P to resume, R to re-rack)", int(size)/2-105, int(size)/2-8)
}
