// simulate 无窗口运行一局卡罗姆棋
//
// 从磁盘读取 data/board.yaml，按参数完成一次击球，
// 然后逐 tick 推进模拟并打印落袋事件，直到棋盘静止或达到最大 tick 数。
//
// 用法:
//
//	go run ./cmd/simulate -pull-x 12 -pull-y 60 -ticks 900 -seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/carrom/pkg/components"
	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/ecs"
	"github.com/decker502/carrom/pkg/embedded"
	"github.com/decker502/carrom/pkg/game"
	"github.com/decker502/carrom/pkg/scenes"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	root    = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	ticks   = flag.Int("ticks", 900, "最多模拟的 tick 数")
	pullX   = flag.Float64("pull-x", 0, "拖拽位移X（松开点相对按下点）")
	pullY   = flag.Float64("pull-y", 60, "拖拽位移Y（松开点相对按下点）")
	seed    = flag.Int64("seed", 1, "震动随机数种子")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := embedded.InitFromDir(*root); err != nil {
		return err
	}

	data, err := embedded.ReadFile("data/board.yaml")
	if err != nil {
		return fmt.Errorf("failed to read board config: %w", err)
	}
	cfg, err := config.ParseBoardConfig(data)
	if err != nil {
		return err
	}

	// 没有资源管理器时音效只计数不播放
	audio := game.NewAudioManager(nil, nil)
	scene := scenes.NewGameScene(nil, nil, scenes.GameSceneOptions{
		Config: cfg,
		Audio:  audio,
		Rng:    rand.New(rand.NewSource(*seed)),
	})

	// 击球：在击球子圆心按下，拖到 pull 位移处松开
	em := scene.EntityManager()
	strikerPos, _ := ecs.GetComponent[*components.PositionComponent](em, scene.Rack().Striker)
	startX, startY := strikerPos.X, strikerPos.Y
	releaseX, releaseY := startX+*pullX, startY+*pullY

	input := scene.Input()
	if !input.PointerDown(startX, startY) {
		return fmt.Errorf("pointer down at (%.1f, %.1f) missed the striker", startX, startY)
	}
	input.PointerMove(releaseX, releaseY)
	input.PointerUp(releaseX, releaseY)
	scene.GameState().RecordShot()

	fmt.Printf("shot: drag (%.1f, %.1f) -> (%.1f, %.1f)\n", startX, startY, releaseX, releaseY)

	dt := 1.0 / float64(config.GameTPS)
	tick := 0
	for tick < *ticks {
		tick++
		for _, ev := range scene.Step(dt) {
			fmt.Printf("tick %4d: %s %s #%d -> pocket %d\n", tick, ev.Color, ev.Kind, ev.Index, ev.Pocket)
		}
		if scene.Settled() {
			break
		}
	}

	gs := scene.GameState()
	fmt.Printf("settled after %d ticks: white %d, black %d, queen %v\n",
		tick, gs.WhitePocketed, gs.BlackPocketed, gs.QueenPocketed)
	fmt.Printf("sounds: hit %d, pocket %d, queen %d\n",
		audio.PlayCount(game.SoundHit), audio.PlayCount(game.SoundPocket), audio.PlayCount(game.SoundQueenPocket))
	return nil
}
