package components

// CircleComponent 定义棋子的圆形碰撞体
// 碰撞、边界钳制和袋口检测都以 PositionComponent 为圆心
type CircleComponent struct {
	Radius float64 // 半径（像素），必须 > 0
}
