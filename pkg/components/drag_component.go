package components

// DragComponent 击球子拖拽状态
type DragComponent struct {
	Dragging bool
	StartX   float64 // 按下时的指针位置
	StartY   float64
	OriginX  float64 // 按下时击球子的圆心，取消拖拽时退回这里
	OriginY  float64
}
