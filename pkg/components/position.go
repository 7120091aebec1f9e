package components

// PositionComponent 实体在棋盘坐标系中的位置（圆心）
// 棋盘坐标系原点为左上角，与绘制表面一致
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（像素/tick）
type VelocityComponent struct {
	VX float64
	VY float64
}

// Stop 将速度清零
func (v *VelocityComponent) Stop() {
	v.VX = 0
	v.VY = 0
}

// IsZero 速度是否为零
func (v *VelocityComponent) IsZero() bool {
	return v.VX == 0 && v.VY == 0
}
