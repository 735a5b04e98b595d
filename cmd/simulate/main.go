// simulate 无窗口地运行若干局游戏，输出每局统计
//
// 用法:
//
//	go run ./cmd/simulate -runs 5 -seed 42
//
// 输入由脚本生成：始终开火，准星绕玩家旋转，每隔一段时间换一个移动方向。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/scenes"
	"github.com/decker502/nuclear-survival/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置配置）")
	runs       = flag.Int("runs", 3, "模拟局数")
	maxTicks   = flag.Int64("ticks", 36000, "每局最多模拟的帧数")
	seed       = flag.Int64("seed", 1, "僵尸生成随机种子")
	stepMs     = flag.Int64("step", 16, "每帧的毫秒数")
	strafe     = flag.Int("strafe", 90, "每个移动方向保持的帧数（0 = 不移动）")
)

var moveOrder = []game.Action{
	game.ActionMoveLeft,
	game.ActionMoveUp,
	game.ActionMoveRight,
	game.ActionMoveDown,
}

// RunReport 一局的统计
type RunReport struct {
	RunID        string
	Ticks        int64
	Score        int
	HighScore    int
	BulletsAlive int
	ZombiesAlive int
	Defeated     bool
}

// pilot 生成脚本化输入
type pilot struct {
	input   *systems.ScriptedInput
	centerX float64
	centerY float64
	frame   int
}

func (p *pilot) next(strafeFrames int) {
	p.frame++

	angle := float64(p.frame) * 0.05
	p.input.Aim(int(p.centerX+200*math.Cos(angle)), int(p.centerY+200*math.Sin(angle)))
	p.input.Press(game.ActionFire)

	p.input.Release(moveOrder...)
	if strafeFrames > 0 {
		p.input.Press(moveOrder[(p.frame/strafeFrames)%len(moveOrder)])
	}
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	reports, err := simulate(cfg, *runs, *maxTicks, *seed, *stepMs, *strafe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "模拟失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-36s %8s %6s %6s %8s %8s %s\n", "RUN", "TICKS", "SCORE", "HIGH", "BULLETS", "ZOMBIES", "RESULT")
	for _, r := range reports {
		result := "survived"
		if r.Defeated {
			result = "defeated"
		}
		fmt.Printf("%-36s %8d %6d %6d %8d %8d %s\n",
			r.RunID, r.Ticks, r.Score, r.HighScore, r.BulletsAlive, r.ZombiesAlive, result)
	}
}

// simulate 通过场景管理器驱动完整的 主页 -> 游戏 -> 结束 流程
func simulate(cfg *config.GameConfig, runs int, maxTicks, seed, stepMs int64, strafeFrames int) ([]RunReport, error) {
	sim := systems.NewSimulation(cfg, game.NewGameState(cfg.Player.Health), nil, rand.New(rand.NewSource(seed)))
	sm := game.NewSceneManager()
	scenes.Register(sm, sim, nil)

	clock := systems.NewFixedClock(stepMs)
	p := &pilot{
		input:   systems.NewScriptedInput(),
		centerX: cfg.CenterX(),
		centerY: cfg.CenterY(),
	}

	update := func() error {
		err := sm.Update(p.input, clock)
		p.input.Release(game.ActionStart, game.ActionRestart)
		return err
	}

	// 主页按开始
	p.input.Press(game.ActionStart)
	if err := update(); err != nil {
		return nil, err
	}

	reports := make([]RunReport, 0, runs)
	for run := 0; run < runs; run++ {
		if sm.CurrentState() != game.StatePlaying {
			return reports, fmt.Errorf("run %d: expected Playing, got %s", run+1, sm.CurrentState())
		}

		for sm.CurrentState() == game.StatePlaying && sim.Ticks() < maxTicks {
			p.next(strafeFrames)
			if err := update(); err != nil {
				return reports, err
			}
		}

		reports = append(reports, RunReport{
			RunID:        sim.State.RunID,
			Ticks:        sim.Ticks(),
			Score:        sim.State.Score,
			HighScore:    sim.State.HighScore,
			BulletsAlive: sim.World.Bullets.Len(),
			ZombiesAlive: sim.World.Zombies.Len(),
			Defeated:     sm.CurrentState() == game.StateGameOver,
		})

		if run == runs-1 {
			break
		}
		if sm.CurrentState() == game.StatePlaying {
			// 达到帧数上限，直接开始下一局
			sim.Reset()
			continue
		}
		p.input.Release(moveOrder...)
		p.input.Press(game.ActionRestart)
		if err := update(); err != nil {
			return reports, err
		}
	}
	return reports, nil
}
