package scenes

import (
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/decker502/nuclear-survival/pkg/systems"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Register creates the home, gameplay and game-over scenes, binds them to sm
// and activates the home screen.
func Register(sm *game.SceneManager, sim *systems.Simulation, audio game.AudioSink) {
	if audio == nil {
		audio = game.NopAudio{}
	}
	render := systems.NewRenderSystem(sim.Config)

	sm.Register(game.StateHome, NewHomeScene(sm, sim.State, render, audio))
	sm.Register(game.StatePlaying, NewGameScene(sm, sim, render))
	sm.Register(game.StateGameOver, NewGameOverScene(sm, sim.State, render))
	sm.SwitchTo(game.StateHome)
}
