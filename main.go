package main

import (
	"flag"
	"log"

	"github.com/decker502/nuclear-survival/pkg/app"
	"github.com/decker502/nuclear-survival/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认使用内嵌的 data/game.yaml）")
	seed       = flag.Int64("seed", 0, "僵尸生成随机种子（0 = 当前时间）")
	mute       = flag.Bool("mute", false, "关闭音频")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(nil, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
