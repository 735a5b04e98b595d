package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
)

func newTestSimulation(t *testing.T, audio game.AudioSink) *Simulation {
	t.Helper()
	cfg := config.DefaultGameConfig()
	gs := game.NewGameState(cfg.Player.Health)
	sim := NewSimulation(cfg, gs, audio, rand.New(rand.NewSource(1)))
	sim.Reset()
	return sim
}
