//go:build mobile

// Package mobile 是 ebitenmobile 的绑定入口（Android .aar / iOS .xcframework）
//
// go:embed 不能引用包目录以外的文件，绑定前先复制资源：
//
//	cp -r assets mobile/ && mkdir -p mobile/data && cp data/board.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.carrom -o build/android/carrom.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Carrom.xcframework ./mobile
package mobile

import (
	"embed"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/carrom/pkg/app"
	"github.com/decker502/carrom/pkg/embedded"
)

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/board.yaml
var dataFS embed.FS

func init() {
	embedded.Init(assetsFS, dataFS)

	// 设备上看不到控制台，日志交给 logcat / Xcode
	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("[Mobile] init failed: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy 供 ebitenmobile 生成绑定时引用
func Dummy() {}
