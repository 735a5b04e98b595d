package game

import (
	"fmt"
	"log"
)

// ScreenState identifies the active screen.
type ScreenState int

const (
	StateNone ScreenState = iota
	StateHome
	StatePlaying
	StateGameOver
)

func (s ScreenState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateHome:
		return "Home"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("ScreenState(%d)", int(s))
	}
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	scenes       map[ScreenState]Scene
	current      ScreenState
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes:  make(map[ScreenState]Scene),
		current: StateNone,
	}
}

// Register binds a scene to a screen state.
func (sm *SceneManager) Register(state ScreenState, scene Scene) {
	sm.scenes[state] = scene
}

// SwitchTo changes the active scene and calls its OnEnter hook.
// Switching to an unregistered state is logged and ignored.
func (sm *SceneManager) SwitchTo(state ScreenState) {
	scene, ok := sm.scenes[state]
	if !ok {
		log.Printf("[SceneManager] 错误: 未注册的场景状态: %s", state)
		return
	}

	from := sm.current
	sm.current = state
	sm.currentScene = scene
	log.Printf("[SceneManager] %s -> %s", from, state)
	scene.OnEnter(from)
}

// CurrentState returns the active screen state.
func (sm *SceneManager) CurrentState() ScreenState {
	return sm.current
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update polls the clock once, checks for quit and advances the active scene.
//
// Returns ErrQuit when the input source reports a quit signal, whatever the
// active state is. No scene is updated on that frame.
func (sm *SceneManager) Update(input InputSource, clock Clock) error {
	if input.QuitRequested() {
		log.Printf("[SceneManager] Quit requested in state %s", sm.current)
		return ErrQuit
	}
	ctx := &FrameContext{
		Input:       input,
		DeltaMillis: clock.DeltaMillis(),
		NowMillis:   clock.NowMillis(),
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(ctx)
	}
	return nil
}

// Draw renders the active scene and finalises the frame.
// If no scene is active only Present is called.
func (sm *SceneManager) Draw(r Renderer) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(r)
	}
	r.Present()
}
