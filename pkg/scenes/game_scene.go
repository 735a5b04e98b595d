package scenes

import (
	"log"

	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/systems"
)

// GameScene 游戏进行中的场景
// 每帧采样一次输入并推进模拟，玩家生命值耗尽时切换到结算界面
type GameScene struct {
	sceneManager *game.SceneManager
	sim          *systems.Simulation
	render       *systems.RenderSystem
}

// NewGameScene creates the gameplay scene around an existing simulation.
func NewGameScene(sm *game.SceneManager, sim *systems.Simulation, render *systems.RenderSystem) *GameScene {
	return &GameScene{
		sceneManager: sm,
		sim:          sim,
		render:       render,
	}
}

// OnEnter starts a fresh run, both from the home screen and on restart.
func (s *GameScene) OnEnter(from game.ScreenState) {
	s.sim.Reset()
	log.Printf("[GameScene] Entered from %s, run %s", from, s.sim.State.RunID)
}

// Update advances the simulation by one tick.
func (s *GameScene) Update(ctx *game.FrameContext) {
	in := systems.SampleInput(ctx.Input)
	res := s.sim.Tick(in, ctx.DeltaMillis, ctx.NowMillis)
	if res.Defeated {
		s.sceneManager.SwitchTo(game.StateGameOver)
	}
}

// Draw renders the field, entities and HUD.
func (s *GameScene) Draw(r game.Renderer) {
	s.render.DrawPlaying(r, s.sim)
}
