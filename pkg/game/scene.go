package game

// FrameContext carries the sampled input and timing of one frame.
type FrameContext struct {
	Input       InputSource
	DeltaMillis int64 // milliseconds since the previous frame
	NowMillis   int64 // monotonic timestamp of this frame
}

// Scene represents one screen state (home, gameplay, game over).
// Each scene has its own update and rendering logic.
type Scene interface {
	// OnEnter is called when the scene becomes active.
	// from is the state that was active before the switch.
	OnEnter(from ScreenState)

	// Update advances the scene by one frame.
	Update(ctx *FrameContext)

	// Draw issues the draw requests of the scene.
	Draw(r Renderer)
}
