package terminal

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// FrameLimiter paces the loop at a fixed tick rate and measures frame time.
// It implements game.Clock.
type FrameLimiter struct {
	ticker *time.Ticker
	now    func() time.Time
	start  time.Time
	last   time.Time
}

// NewFrameLimiter creates a limiter ticking tps times per second
func NewFrameLimiter(tps int) *FrameLimiter {
	if tps <= 0 {
		tps = 60
	}
	t := time.Now()
	return &FrameLimiter{
		ticker: time.NewTicker(time.Second / time.Duration(tps)),
		now:    time.Now,
		start:  t,
		last:   t,
	}
}

// C delivers one value per frame
func (f *FrameLimiter) C() <-chan time.Time {
	return f.ticker.C
}

// Stop releases the ticker
func (f *FrameLimiter) Stop() {
	f.ticker.Stop()
}

func (f *FrameLimiter) DeltaMillis() int64 {
	t := f.now()
	delta := t.Sub(f.last).Milliseconds()
	f.last = t
	return delta
}

func (f *FrameLimiter) NowMillis() int64 {
	return f.last.Sub(f.start).Milliseconds()
}

// Run drives the scene manager until quit or ctx is cancelled.
//
// One goroutine forwards screen events into a channel; every state change
// happens on the calling goroutine. Quit returns nil.
func Run(ctx context.Context, screen tcell.Screen, sm *game.SceneManager, input *Input, renderer *Renderer, limiter *FrameLimiter) error {
	defer limiter.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalised
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			input.HandleEvent(ev)

		case <-limiter.C():
			err := sm.Update(input, limiter)
			if errors.Is(err, game.ErrQuit) {
				log.Printf("[Terminal] Quit")
				return nil
			}
			if err != nil {
				return err
			}
			sm.Draw(renderer)
			input.EndFrame()
		}
	}
}
