package systems

import (
	"image/color"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 贴图缺失时的矢量绘制颜色
var (
	boardFallbackColor   = color.RGBA{R: 233, G: 205, B: 150, A: 255}
	pocketFallbackColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	whiteFallbackColor   = color.RGBA{R: 245, G: 240, B: 225, A: 255}
	blackFallbackColor   = color.RGBA{R: 40, G: 35, B: 35, A: 255}
	queenFallbackColor   = color.RGBA{R: 200, G: 30, B: 40, A: 255}
	strikerFallbackColor = color.RGBA{R: 235, G: 220, B: 180, A: 255}
)

// RenderSystem 绘制棋盘和棋子
//
// 绘制顺序（从底到顶）：棋盘 → 普通棋子 → 皇后 → 击球子。
// 已落袋的棋子不绘制。贴图为 nil 时用矢量圆形代替。
// 画面震动偏移不在这里处理，由 App 在最终合成时平移整张画面。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.BoardConfig
	board         *ebiten.Image // 棋盘背景，可为 nil
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 棋盘配置（棋盘尺寸）
//   - board: 棋盘背景图，为 nil 时绘制纯色底板和袋口
func NewRenderSystem(em *ecs.EntityManager, cfg *config.BoardConfig, board *ebiten.Image) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cfg:           cfg,
		board:         board,
	}
}

// Draw 清屏并绘制整个棋盘
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Clear()
	s.drawBoard(screen)

	for _, p := range s.drawList() {
		s.drawPiece(screen, p)
	}
}

// drawLayers 棋子的绘制层次，靠后的画在上面
var drawLayers = []components.PieceKind{components.PieceCoin, components.PieceQueen, components.PieceStriker}

// drawList 返回本帧要绘制的棋子，按层次排好序（同层内按 EntityID）
func (s *RenderSystem) drawList() []piece {
	pieces := activePieces(s.entityManager)
	ordered := make([]piece, 0, len(pieces))
	for _, layer := range drawLayers {
		for _, p := range pieces {
			if p.info.Kind == layer {
				ordered = append(ordered, p)
			}
		}
	}
	return ordered
}

// drawBoard 把棋盘图缩放到棋盘尺寸绘制
func (s *RenderSystem) drawBoard(screen *ebiten.Image) {
	size := s.cfg.Board.Size

	if s.board == nil {
		vector.DrawFilledRect(screen, 0, 0, float32(size), float32(size), boardFallbackColor, false)
		ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PocketComponent](s.entityManager)
		for _, id := range ids {
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			pocket, _ := ecs.GetComponent[*components.PocketComponent](s.entityManager, id)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(pocket.CaptureRadius), pocketFallbackColor, true)
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = boardGeoM(s.board.Bounds().Dx(), s.board.Bounds().Dy(), size)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.board, op)
}

// drawPiece 以圆心为中心绘制一枚棋子
func (s *RenderSystem) drawPiece(screen *ebiten.Image, p piece) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, p.id)
	if !ok || sprite.Image == nil {
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.circle.Radius), fallbackColor(p.info), true)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(sprite, p.pos.X, p.pos.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}

// boardGeoM 把 w×h 的棋盘图铺满 size×size 的棋盘
func boardGeoM(w, h int, size float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(size/float64(w), size/float64(h))
	return m
}

// spriteGeoM 把贴图缩放到绘制尺寸，并让它的中心落在 (x, y)
func spriteGeoM(sprite *components.SpriteComponent, x, y float64) ebiten.GeoM {
	bounds := sprite.Image.Bounds()

	var m ebiten.GeoM
	m.Scale(sprite.Width/float64(bounds.Dx()), sprite.Height/float64(bounds.Dy()))
	m.Translate(x-sprite.Width/2, y-sprite.Height/2)
	return m
}

// fallbackColor 返回棋子的矢量绘制颜色
func fallbackColor(info *components.PieceComponent) color.Color {
	switch info.Kind {
	case components.PieceStriker:
		return strikerFallbackColor
	case components.PieceQueen:
		return queenFallbackColor
	}
	if info.Color == components.CoinColorBlack {
		return blackFallbackColor
	}
	return whiteFallbackColor
}
