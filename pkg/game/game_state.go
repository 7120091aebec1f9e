package game

// GameState 一局棋的状态数据
//
// 与旧的全局单例不同，每个棋局场景持有自己的 GameState，
// 由场景显式传给需要它的系统。
type GameState struct {
	IsPaused bool // 暂停时模拟系统不推进

	Shots         int // 已击球次数
	WhitePocketed int // 落袋白子数
	BlackPocketed int // 落袋黑子数
	QueenPocketed bool

	Ticks int // 已推进的 tick 数
}

// NewGameState 创建新的一局
func NewGameState() *GameState {
	return &GameState{}
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.IsPaused = !gs.IsPaused
}

// RecordShot 记录一次击球
func (gs *GameState) RecordShot() {
	gs.Shots++
}

// RecordPocket 记录一次落袋
//
// 参数：
//   - kind: "coin" 或 "queen"
//   - color: 棋子颜色 "white" / "black"，皇后忽略
func (gs *GameState) RecordPocket(kind, color string) {
	if kind == "queen" {
		gs.QueenPocketed = true
		return
	}
	switch color {
	case "white":
		gs.WhitePocketed++
	case "black":
		gs.BlackPocketed++
	}
}

// TotalPocketed 返回落袋总数（含皇后）
func (gs *GameState) TotalPocketed() int {
	total := gs.WhitePocketed + gs.BlackPocketed
	if gs.QueenPocketed {
		total++
	}
	return total
}
