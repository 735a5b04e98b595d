// Package app 提供游戏应用的核心包装器
//
// 该包把配置、音频、模拟和场景组装成一个 ebiten.Game，
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/scenes"
	"github.com/decker502/nuclear-survival/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定磁盘上的配置文件，为空则使用内嵌的 data/game.yaml
	ConfigPath string
	// Seed 僵尸生成随机种子，0 表示使用当前时间
	Seed int64
	// Mute 关闭所有音频
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *game.SceneManager
	input        *ebitenInput
	clock        *wallClock
	renderer     *ebitenRenderer
	audioManager *AudioManager // 静音或音频关闭时为 nil
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	var sink game.AudioSink = game.NopAudio{}
	var audioManager *AudioManager
	if !cfg.Mute && gameConfig.Audio.Enabled {
		// 初始化音频上下文
		audioContext := audio.NewContext(48000)
		audioManager = NewAudioManager(NewResourceManager(audioContext), gameConfig.Audio)
		audioManager.Preload()
		sink = audioManager
		log.Printf("[App] AudioManager initialized")
	} else {
		log.Printf("[App] Audio disabled")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Spawn seed: %d", seed)

	gameState := game.NewGameState(gameConfig.Player.Health)
	sim := systems.NewSimulation(gameConfig, gameState, sink, rand.New(rand.NewSource(seed)))

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	scenes.Register(sceneManager, sim, sink)

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		input:        newEbitenInput(),
		clock:        newWallClock(time.Now),
		renderer:     newEbitenRenderer(),
		audioManager: audioManager,
	}, nil
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	// M 切换静音
	if a.audioManager != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audioManager.ToggleMute()
	}

	if err := a.sceneManager.Update(a.input, a.clock); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.begin(screen)
	a.sceneManager.Draw(a.renderer)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}
