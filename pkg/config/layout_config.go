package config

// 布局配置常量
// 本文件定义了绘制表面与棋盘的固定尺寸，以及默认摆盘位置

// Screen Configuration (绘制表面配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素），与棋盘边长一致
	GameWindowWidth = 600

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameTPS 固定逻辑帧率，每个 tick 推进一次物理
	GameTPS = 60
)

// Rack Layout (默认摆盘)
// 所有坐标都是棋子圆心在棋盘坐标系中的位置
const (
	// DefaultStrikerX 击球子初始圆心X
	DefaultStrikerX = 300.0
	// DefaultStrikerY 击球子初始圆心Y（底线附近）
	DefaultStrikerY = 550.0

	// DefaultQueenX 皇后初始圆心X
	DefaultQueenX = 295.0
	// DefaultQueenY 皇后初始圆心Y（两排棋子之间）
	DefaultQueenY = 315.0

	// DefaultRowStartX 第1枚棋子的圆心X，之后每枚向右偏移 DefaultRowSpacing
	DefaultRowStartX = 155.0
	// DefaultRowSpacing 同排相邻棋子的间距
	DefaultRowSpacing = 40.0
	// DefaultWhiteRowY 白子一排的圆心Y
	DefaultWhiteRowY = 265.0
	// DefaultBlackRowY 黑子一排的圆心Y
	DefaultBlackRowY = 365.0

	// CoinsPerColor 每种颜色的棋子数（对应 white1..white8 / black1..black8 贴图）
	CoinsPerColor = 8
)

// DefaultPocketPositions 返回四个角袋的圆心（左上、右上、左下、右下）
// 袋口内缩 15 像素，使半径 15 的棋子被边界钳制后仍能进入捕获范围
func DefaultPocketPositions() []Point {
	return []Point{
		{X: 15, Y: 15},
		{X: GameWindowWidth - 15, Y: 15},
		{X: 15, Y: GameWindowHeight - 15},
		{X: GameWindowWidth - 15, Y: GameWindowHeight - 15},
	}
}

// RowPositions 计算一排棋子的圆心坐标
//
// 参数：
//   - row: 棋子排配置
//
// 返回：
//   - []Point: 从左到右的圆心坐标，长度为 row.Count
func RowPositions(row RowConfig) []Point {
	points := make([]Point, 0, row.Count)
	for i := 0; i < row.Count; i++ {
		points = append(points, Point{
			X: row.StartX + float64(i)*row.Spacing,
			Y: row.Y,
		})
	}
	return points
}
