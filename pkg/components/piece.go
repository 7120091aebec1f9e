package components

// PieceKind 棋子种类
type PieceKind int

const (
	// PieceStriker 击球子：玩家拖拽发射，永远不会落袋
	PieceStriker PieceKind = iota
	// PieceCoin 普通棋子（白/黑）
	PieceCoin
	// PieceQueen 皇后（红子），落袋时有独立音效和更强的震动
	PieceQueen
)

// String 返回棋子种类名称（日志用）
func (k PieceKind) String() string {
	switch k {
	case PieceStriker:
		return "striker"
	case PieceCoin:
		return "coin"
	case PieceQueen:
		return "queen"
	default:
		return "unknown"
	}
}

// CoinColor 棋子颜色，仅用于外观，不参与计分
type CoinColor int

const (
	CoinColorNone CoinColor = iota
	CoinColorWhite
	CoinColorBlack
)

// String 返回颜色名称
func (c CoinColor) String() string {
	switch c {
	case CoinColorWhite:
		return "white"
	case CoinColorBlack:
		return "black"
	default:
		return "none"
	}
}

// PieceComponent 标识一个棋盘上的棋子
//
// 落袋后 Pocketed 置为 true 且不再复位：
// 物理、碰撞、袋口检测和渲染系统都会跳过已落袋的棋子。
// 实体本身保留在 EntityManager 中，直到重新摆盘。
type PieceComponent struct {
	Kind     PieceKind
	Color    CoinColor
	Index    int  // 同色棋子的序号（1~8），对应贴图 white1..white8
	Pocketed bool // 是否已落袋
}

// IsActive 棋子是否仍在台面上
func (p *PieceComponent) IsActive() bool {
	return !p.Pocketed
}
