// check_embed 检查资源清单中的每个文件是否都能读取
//
// 对 resources.yaml 列出的每个资源ID输出路径、大小和 MD5，
// 列出清单之外的图片和音效，并校验 data/board.yaml。
// 缺失文件或配置错误时退出码非零。
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/carrom/pkg/config"
	"github.com/decker502/carrom/pkg/embedded"
	"github.com/decker502/carrom/pkg/game"
)

var root = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")

func main() {
	flag.Parse()

	if err := embedded.InitFromDir(*root); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	missing := 0
	referenced := make(map[string]bool)

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, group := range rm.GroupNames() {
		fmt.Printf("[%s]\n", group)
		for _, id := range rm.GroupResourceIDs(group) {
			p, _ := rm.ResolvePath(id)
			referenced[p] = true
			if !embedded.Exists(p) {
				fmt.Printf("  %-20s MISSING %s\n", id, p)
				missing++
				continue
			}
			data, err := embedded.ReadFile(p)
			if err != nil {
				fmt.Printf("  %-20s UNREADABLE %s: %v\n", id, p, err)
				missing++
				continue
			}
			fmt.Printf("  %-20s %6d bytes  %x  %s\n", id, len(data), md5.Sum(data), p)
		}
	}

	// 清单没有引用的文件只提示，不算错误
	for _, pattern := range []string{"assets/images/*", "assets/sounds/*"} {
		files, err := embedded.Glob(pattern)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, f := range files {
			if !referenced[f] {
				fmt.Printf("unreferenced: %s\n", f)
			}
		}
	}

	data, err := embedded.ReadFile("data/board.yaml")
	if err == nil {
		_, err = config.ParseBoardConfig(data)
	}
	if err != nil {
		fmt.Printf("data/board.yaml: %v\n", err)
		missing++
	} else {
		fmt.Println("data/board.yaml: ok")
	}

	if missing > 0 {
		fmt.Printf("%d problem(s) found\n", missing)
		os.Exit(1)
	}
}
