package components

// ShakeComponent 震动效果状态（"地震"）
//
// 同一时间只有一个震动实体，由 ShakeSystem 独占管理。
// 时间单位为毫秒，由固定步长的 tick 推进。
type ShakeComponent struct {
	Active    bool
	Elapsed   float64 // 已经过的时间（毫秒）
	Duration  float64 // 总持续时间（毫秒）
	Magnitude float64 // 画面偏移幅度（像素），偏移在 [-Magnitude, +Magnitude] 内均匀分布

	// 当前帧的画面偏移，仅影响最终绘制，不影响物理坐标
	OffsetX float64
	OffsetY float64
}

// Remaining 返回剩余时间（毫秒），未激活时为 0
func (s *ShakeComponent) Remaining() float64 {
	if !s.Active || s.Elapsed >= s.Duration {
		return 0
	}
	return s.Duration - s.Elapsed
}
