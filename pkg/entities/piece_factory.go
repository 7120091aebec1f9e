package entities

import (
	"log"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 按资源ID加载图片
// *game.ResourceManager 实现了该接口，测试中可以替换为 mock
type ImageLoader interface {
	LoadImageByID(resourceID string) (*ebiten.Image, error)
}

// loadSprite 加载棋子贴图，失败时返回 nil（渲染系统改用矢量圆形）
func loadSprite(loader ImageLoader, resourceID string) *ebiten.Image {
	if loader == nil {
		return nil
	}
	img, err := loader.LoadImageByID(resourceID)
	if err != nil {
		log.Printf("[Entities] Warning: failed to load %s, falling back to vector circle: %v", resourceID, err)
		return nil
	}
	return img
}

// newPiece 创建棋子实体的公共部分
func newPiece(em *ecs.EntityManager, x, y, radius float64, piece *components.PieceComponent, sprite *components.SpriteComponent) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CircleComponent{Radius: radius})
	ecs.AddComponent(em, id, piece)
	ecs.AddComponent(em, id, sprite)

	return id
}

// NewStriker 创建击球子
// 参数:
//   - em: EntityManager 实例
//   - loader: 图片加载器，可为 nil
//   - cfg: 棋盘配置（提供初始位置和半径）
//
// 返回: 创建的实体ID
func NewStriker(em *ecs.EntityManager, loader ImageLoader, cfg *config.BoardConfig) ecs.EntityID {
	r := cfg.Pieces.StrikerRadius
	id := newPiece(em, cfg.Rack.Striker.X, cfg.Rack.Striker.Y, r,
		&components.PieceComponent{Kind: components.PieceStriker},
		&components.SpriteComponent{
			Image:  loadSprite(loader, game.ImageStriker),
			Width:  2 * r, // 击球子按直径绘制
			Height: 2 * r,
		})

	// 只有击球子可以被拖拽
	ecs.AddComponent(em, id, &components.DragComponent{})
	return id
}

// NewCoin 创建一枚普通棋子
// 参数:
//   - color: 白子或黑子
//   - index: 同色序号（1~8），决定使用哪张贴图
//   - x, y: 圆心坐标
func NewCoin(em *ecs.EntityManager, loader ImageLoader, cfg *config.BoardConfig, color components.CoinColor, index int, x, y float64) ecs.EntityID {
	size := cfg.Pieces.SpriteSize
	return newPiece(em, x, y, cfg.Pieces.CoinRadius,
		&components.PieceComponent{Kind: components.PieceCoin, Color: color, Index: index},
		&components.SpriteComponent{
			Image:  loadSprite(loader, game.CoinImageID(color.String(), index)),
			Width:  size,
			Height: size,
		})
}

// NewQueen 创建皇后
func NewQueen(em *ecs.EntityManager, loader ImageLoader, cfg *config.BoardConfig) ecs.EntityID {
	size := cfg.Pieces.SpriteSize
	return newPiece(em, cfg.Rack.Queen.X, cfg.Rack.Queen.Y, cfg.Pieces.QueenRadius,
		&components.PieceComponent{Kind: components.PieceQueen},
		&components.SpriteComponent{
			Image:  loadSprite(loader, game.ImageQueen),
			Width:  size,
			Height: size,
		})
}
