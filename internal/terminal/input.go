package terminal

import (
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldFrames is how long a key press counts as held.
// Terminals report key repeats but no key releases, so a held key is
// refreshed by its repeat events and expires this many frames after the last one.
const DefaultHoldFrames = 8

var runeBindings = map[rune]game.Action{
	'w': game.ActionMoveUp,
	's': game.ActionMoveDown,
	'a': game.ActionMoveLeft,
	'd': game.ActionMoveRight,
	' ': game.ActionStart,
	'r': game.ActionRestart,
	'h': game.ActionHome,
}

// Input implements game.InputSource from tcell events.
// All methods run on the loop goroutine.
type Input struct {
	renderer   *Renderer
	holdFrames int
	held       map[game.Action]int // frames left before the action expires
	fire       bool
	pointerX   int
	pointerY   int
	quit       bool
}

// NewInput creates an input source; renderer maps mouse cells to logical coordinates
func NewInput(renderer *Renderer, holdFrames int) *Input {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Input{
		renderer:   renderer,
		holdFrames: holdFrames,
		held:       make(map[game.Action]int),
	}
}

// HandleEvent applies one tcell event
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.quit = true
		case tcell.KeyRune:
			r := ev.Rune()
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			if action, ok := runeBindings[r]; ok {
				in.held[action] = in.holdFrames
			}
		}
	case *tcell.EventMouse:
		in.fire = ev.Buttons()&tcell.Button1 != 0
		col, row := ev.Position()
		if in.renderer != nil && in.renderer.cols > 0 {
			x, y := in.renderer.LogicalAt(col, row)
			in.pointerX, in.pointerY = int(x), int(y)
		}
	}
}

// EndFrame ages held keys by one frame
func (in *Input) EndFrame() {
	for action, left := range in.held {
		if left <= 1 {
			delete(in.held, action)
			continue
		}
		in.held[action] = left - 1
	}
}

func (in *Input) IsActionPressed(action game.Action) bool {
	if action == game.ActionFire {
		return in.fire
	}
	return in.held[action] > 0
}

func (in *Input) PointerPosition() (int, int) {
	return in.pointerX, in.pointerY
}

func (in *Input) QuitRequested() bool {
	return in.quit
}
