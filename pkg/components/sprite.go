package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Image 为 nil 时（资源加载失败），渲染系统改用矢量圆形绘制
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  float64 // 绘制宽度（像素），图像会被缩放到该尺寸
	Height float64 // 绘制高度（像素）
}
