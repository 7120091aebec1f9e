package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// BoardConfig 棋盘物理与布局配置
//
// 包含棋盘尺寸、摩擦与反弹系数、棋子半径、袋口、震动参数和默认摆盘。
// 所有长度单位为像素，速度单位为 像素/tick，时间单位为毫秒。
//
// 配置文件位置: data/board.yaml
type BoardConfig struct {
	Board   BoardSection   `yaml:"board"`
	Physics PhysicsSection `yaml:"physics"`
	Pieces  PiecesSection  `yaml:"pieces"`
	Pockets PocketsSection `yaml:"pockets"`
	Shake   ShakeSection   `yaml:"shake"`
	Rack    RackSection    `yaml:"rack"`
}

// BoardSection 棋盘尺寸
type BoardSection struct {
	// Size 正方形棋盘边长
	Size float64 `yaml:"size"`
}

// PhysicsSection 物理参数
type PhysicsSection struct {
	// Friction 每个 tick 速度乘以该系数
	Friction float64 `yaml:"friction"`

	// WallRestitution 撞边后速度分量取反并乘以该系数
	WallRestitution float64 `yaml:"wallRestitution"`

	// LaunchScale 拖拽位移除以该值得到发射速度
	LaunchScale float64 `yaml:"launchScale"`

	// SettleSpeed 所有棋子速度低于该值时视为静止（仅用于 HUD 提示）
	SettleSpeed float64 `yaml:"settleSpeed"`
}

// PiecesSection 棋子尺寸
type PiecesSection struct {
	CoinRadius    float64 `yaml:"coinRadius"`
	QueenRadius   float64 `yaml:"queenRadius"`
	StrikerRadius float64 `yaml:"strikerRadius"`

	// SpriteSize 棋子和皇后的绘制尺寸（击球子按 2*半径 绘制）
	SpriteSize float64 `yaml:"spriteSize"`
}

// PocketsSection 袋口配置
type PocketsSection struct {
	CaptureRadius float64 `yaml:"captureRadius"`
	Positions     []Point `yaml:"positions"`
}

// ShakeSection 震动效果配置
type ShakeSection struct {
	// Jitter 震动期间每个 tick 对棋子真实坐标施加的随机偏移上限
	Jitter float64 `yaml:"jitter"`

	Hit         ShakePreset `yaml:"hit"`         // 击球
	CoinPocket  ShakePreset `yaml:"coinPocket"`  // 普通棋子落袋
	QueenPocket ShakePreset `yaml:"queenPocket"` // 皇后落袋
}

// ShakePreset 一次震动请求的参数
type ShakePreset struct {
	Duration  float64 `yaml:"duration"`  // 毫秒
	Magnitude float64 `yaml:"magnitude"` // 像素
}

// RackSection 默认摆盘
type RackSection struct {
	Striker  Point     `yaml:"striker"`
	Queen    Point     `yaml:"queen"`
	WhiteRow RowConfig `yaml:"whiteRow"`
	BlackRow RowConfig `yaml:"blackRow"`
}

// RowConfig 一排等距棋子
type RowConfig struct {
	StartX  float64 `yaml:"startX"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Count   int     `yaml:"count"`
}

// Point 棋盘坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultBoardConfig 返回内置默认配置
// 与 data/board.yaml 的内容一致，配置文件缺失时使用
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Board: BoardSection{Size: GameWindowWidth},
		Physics: PhysicsSection{
			Friction:        0.98,
			WallRestitution: 0.5,
			LaunchScale:     5,
			SettleSpeed:     0.05,
		},
		Pieces: PiecesSection{
			CoinRadius:    15,
			QueenRadius:   15,
			StrikerRadius: 20,
			SpriteSize:    30,
		},
		Pockets: PocketsSection{
			CaptureRadius: 20,
			Positions:     DefaultPocketPositions(),
		},
		Shake: ShakeSection{
			Jitter:      1,
			Hit:         ShakePreset{Duration: 300, Magnitude: 5},
			CoinPocket:  ShakePreset{Duration: 200, Magnitude: 3},
			QueenPocket: ShakePreset{Duration: 600, Magnitude: 10},
		},
		Rack: RackSection{
			Striker: Point{X: DefaultStrikerX, Y: DefaultStrikerY},
			Queen:   Point{X: DefaultQueenX, Y: DefaultQueenY},
			WhiteRow: RowConfig{
				StartX:  DefaultRowStartX,
				Y:       DefaultWhiteRowY,
				Spacing: DefaultRowSpacing,
				Count:   CoinsPerColor,
			},
			BlackRow: RowConfig{
				StartX:  DefaultRowStartX,
				Y:       DefaultBlackRowY,
				Spacing: DefaultRowSpacing,
				Count:   CoinsPerColor,
			},
		},
	}
}

// LoadBoardConfig 从磁盘加载棋盘配置
//
// 参数:
//   - path: 配置文件路径（如 "data/board.yaml"）
//
// 返回:
//   - *BoardConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadBoardConfig(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board config: %w", err)
	}
	return ParseBoardConfig(data)
}

// ParseBoardConfig 解析 YAML 格式的棋盘配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件只需写出要覆盖的部分。
func ParseBoardConfig(data []byte) (*BoardConfig, error) {
	config := DefaultBoardConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse board config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 棋盘边长、半径、捕获半径、发射系数为正
//   - 摩擦系数在 (0, 1]，反弹系数在 [0, 1]
//   - 浮点参数不能是 NaN（YAML 的 .nan 会通过所有比较）
//   - 至少一个袋口
//   - 每种颜色最多 CoinsPerColor 枚（贴图数量限制）
//   - 摆盘位置不超出棋盘
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *BoardConfig) Validate() error {
	if c.Board.Size <= 0 || math.IsNaN(c.Board.Size) || math.IsInf(c.Board.Size, 0) {
		return fmt.Errorf("board size must be > 0, got %.1f", c.Board.Size)
	}

	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 || math.IsNaN(c.Physics.Friction) {
		return fmt.Errorf("friction must be in (0, 1], got %.3f", c.Physics.Friction)
	}
	if c.Physics.WallRestitution < 0 || c.Physics.WallRestitution > 1 || math.IsNaN(c.Physics.WallRestitution) {
		return fmt.Errorf("wallRestitution must be in [0, 1], got %.3f", c.Physics.WallRestitution)
	}
	if c.Physics.LaunchScale <= 0 || math.IsNaN(c.Physics.LaunchScale) {
		return fmt.Errorf("launchScale must be > 0, got %.3f", c.Physics.LaunchScale)
	}
	if c.Physics.SettleSpeed < 0 || math.IsNaN(c.Physics.SettleSpeed) {
		return fmt.Errorf("settleSpeed must be >= 0, got %.3f", c.Physics.SettleSpeed)
	}

	radii := map[string]float64{
		"coinRadius":    c.Pieces.CoinRadius,
		"queenRadius":   c.Pieces.QueenRadius,
		"strikerRadius": c.Pieces.StrikerRadius,
		"spriteSize":    c.Pieces.SpriteSize,
		"captureRadius": c.Pockets.CaptureRadius,
	}
	for name, r := range radii {
		if r <= 0 || math.IsNaN(r) {
			return fmt.Errorf("%s must be > 0, got %.1f", name, r)
		}
	}

	if len(c.Pockets.Positions) == 0 {
		return fmt.Errorf("at least one pocket is required")
	}

	for name, preset := range map[string]ShakePreset{
		"hit":         c.Shake.Hit,
		"coinPocket":  c.Shake.CoinPocket,
		"queenPocket": c.Shake.QueenPocket,
	} {
		if preset.Duration < 0 || preset.Magnitude < 0 || math.IsNaN(preset.Duration) || math.IsNaN(preset.Magnitude) {
			return fmt.Errorf("shake preset '%s' must not be negative", name)
		}
	}

	for name, row := range map[string]RowConfig{"whiteRow": c.Rack.WhiteRow, "blackRow": c.Rack.BlackRow} {
		if row.Count < 0 || row.Count > CoinsPerColor {
			return fmt.Errorf("%s count must be in [0, %d], got %d", name, CoinsPerColor, row.Count)
		}
		for i, p := range RowPositions(row) {
			if !c.Contains(p, c.Pieces.CoinRadius) {
				return fmt.Errorf("%s coin %d at (%.1f, %.1f) is outside the board", name, i+1, p.X, p.Y)
			}
		}
	}

	if !c.Contains(c.Rack.Striker, c.Pieces.StrikerRadius) {
		return fmt.Errorf("striker at (%.1f, %.1f) is outside the board", c.Rack.Striker.X, c.Rack.Striker.Y)
	}
	if !c.Contains(c.Rack.Queen, c.Pieces.QueenRadius) {
		return fmt.Errorf("queen at (%.1f, %.1f) is outside the board", c.Rack.Queen.X, c.Rack.Queen.Y)
	}

	return nil
}

// Contains 判断半径为 radius 的圆放在 p 处是否完全位于棋盘内
func (c *BoardConfig) Contains(p Point, radius float64) bool {
	return p.X-radius >= 0 && p.X+radius <= c.Board.Size &&
		p.Y-radius >= 0 && p.Y+radius <= c.Board.Size
}
