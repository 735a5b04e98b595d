package scenes

import (
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/systems"
)

// HomeScene 主页：显示标题、操作说明和最高分，按开始键进入游戏
type HomeScene struct {
	sceneManager *game.SceneManager
	state        *game.GameState
	render       *systems.RenderSystem
	audio        game.AudioSink
}

// NewHomeScene creates the home screen.
func NewHomeScene(sm *game.SceneManager, gs *game.GameState, render *systems.RenderSystem, audio game.AudioSink) *HomeScene {
	return &HomeScene{
		sceneManager: sm,
		state:        gs,
		render:       render,
		audio:        audio,
	}
}

// OnEnter starts the background music. It keeps looping across all screens.
func (s *HomeScene) OnEnter(from game.ScreenState) {
	s.audio.PlayMusic(game.MusicBackground)
}

// Update switches to gameplay when the start action is pressed.
func (s *HomeScene) Update(ctx *game.FrameContext) {
	if ctx.Input.IsActionPressed(game.ActionStart) {
		s.sceneManager.SwitchTo(game.StatePlaying)
	}
}

// Draw renders the title screen.
func (s *HomeScene) Draw(r game.Renderer) {
	s.render.DrawHome(r, s.state.HighScore)
}
