package main

import (
	"embed"
	"flag"
	"log"

	"github.com/decker502/carrom/pkg/app"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// go:embed 只能引用本包目录下的文件，所以资源声明放在根目录
var (
	//go:embed all:assets
	assetsFS embed.FS

	//go:embed data/board.yaml
	dataFS embed.FS
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	boardConfig = flag.String("config", "", "从磁盘加载棋盘配置（YAML），默认使用内置 data/board.yaml")
	mute        = flag.Bool("mute", false, "启动时静音")
	seed        = flag.Int64("seed", 0, "震动随机数种子（0 表示按时间播种）")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		BoardConfigPath: *boardConfig,
		Mute:            *mute,
		Seed:            *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Carrom")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.GameTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	if err := gameApp.SaveSettings(); err != nil {
		log.Printf("[Main] Warning: failed to save settings: %v", err)
	}
}
