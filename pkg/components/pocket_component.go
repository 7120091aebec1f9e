package components

// PocketComponent 袋口
// 位置由同一实体的 PositionComponent 给出，创建后不再改变
type PocketComponent struct {
	CaptureRadius float64 // 捕获半径：棋子圆心到袋口中心距离小于该值即落袋
	Index         int     // 袋口序号（0~3，按创建顺序）
}
