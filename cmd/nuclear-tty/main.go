// nuclear-tty 在终端中运行游戏
//
// 操作: WASD 移动，鼠标左键朝指针方向开火，空格开始，R 重开，H 返回主页，Esc 退出。
// 终端无法报告按键松开，按住的按键由重复事件维持（见 terminal.DefaultHoldFrames）。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/nuclear-survival/internal/audio"
	"github.com/decker502/nuclear-survival/internal/terminal"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/scenes"
	"github.com/decker502/nuclear-survival/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "将调试日志写入 -log 指定的文件")
	logPath    = flag.String("log", "nuclear-tty.log", "调试日志文件")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "僵尸生成随机种子（0 = 当前时间）")
	mute       = flag.Bool("mute", false, "关闭音频")
	holdFrames = flag.Int("hold", terminal.DefaultHoldFrames, "按键保持的帧数")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nuclear-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 终端被 tcell 占用，日志只能写文件
	if *verbose {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	var sink game.AudioSink = game.NopAudio{}
	if !*mute && cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio)
		if err := sm.Initialize(); err != nil {
			log.Printf("[Main] Warning: audio unavailable, continuing muted: %v", err)
		} else {
			defer sm.Cleanup()
			sink = sm
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[Main] Seed %d", *seed)

	sim := systems.NewSimulation(cfg, game.NewGameState(cfg.Player.Health), sink, rand.New(rand.NewSource(*seed)))
	sceneManager := game.NewSceneManager()
	scenes.Register(sceneManager, sim, sink)

	renderer := terminal.NewRenderer(screen, cfg.Window.Width, cfg.Window.Height)
	input := terminal.NewInput(renderer, *holdFrames)
	limiter := terminal.NewFrameLimiter(cfg.Window.TPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.Run(ctx, screen, sceneManager, input, renderer, limiter)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
