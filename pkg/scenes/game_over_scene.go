package scenes

import (
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/systems"
)

// GameOverScene 结算界面
// 显示本局得分和最高分，等待重新开始（R）或返回主页（H）。
// 模拟在此界面不推进。
type GameOverScene struct {
	sceneManager *game.SceneManager
	state        *game.GameState
	render       *systems.RenderSystem
}

// NewGameOverScene creates the game-over screen.
func NewGameOverScene(sm *game.SceneManager, gs *game.GameState, render *systems.RenderSystem) *GameOverScene {
	return &GameOverScene{
		sceneManager: sm,
		state:        gs,
		render:       render,
	}
}

func (s *GameOverScene) OnEnter(from game.ScreenState) {}

// Update polls the restart and home actions. Restart wins when both are held.
func (s *GameOverScene) Update(ctx *game.FrameContext) {
	switch {
	case ctx.Input.IsActionPressed(game.ActionRestart):
		s.sceneManager.SwitchTo(game.StatePlaying)
	case ctx.Input.IsActionPressed(game.ActionHome):
		s.sceneManager.SwitchTo(game.StateHome)
	}
}

// Draw renders the final score.
func (s *GameOverScene) Draw(r game.Renderer) {
	s.render.DrawGameOver(r, s.state.Score, s.state.HighScore)
}
