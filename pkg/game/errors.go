package game

import "errors"

// ErrQuit is returned by SceneManager.Update when the input source reports a
// quit signal. It terminates the loop from any screen state.
var ErrQuit = errors.New("quit requested")
