package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/grid-snake/input"
)

// EventSource is the pollable input queue, Poll never blocks
type EventSource interface {
	Poll() []input.Intent
}

// Sink draws a frame, an error aborts the run
type Sink interface {
	Render(f Frame) error
}

// Resizer is implemented by sinks that need to react to terminal resize
type Resizer interface {
	Resize()
}

// TickHook observes every completed simulation step
type TickHook func(res StepResult)

// Result is the terminal outcome of a run
type Result struct {
	Reason EndReason
	Stats  Stats
}

// ClockScheduler runs input, simulation and rendering at a fixed rate on one goroutine
// A slow tick shortens the following sleep, there is no frame skipping or catch-up
type ClockScheduler struct {
	game   *Game
	source EventSource
	sink   Sink
	clock  Clock

	tickInterval time.Duration
	tickCount    uint64
	hooks        []TickHook
}

// NewClockScheduler creates a scheduler with the specified tick interval
func NewClockScheduler(game *Game, source EventSource, sink Sink, clock Clock, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		game:         game,
		source:       source,
		sink:         sink,
		clock:        clock,
		tickInterval: tickInterval,
	}
}

// OnTick registers a hook run after each step, must be called before Run
func (cs *ClockScheduler) OnTick(hook TickHook) {
	cs.hooks = append(cs.hooks, hook)
}

// TickCount returns the number of completed iterations
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// Run loops until the game ends, a quit intent arrives, or ctx is cancelled
// Game over is returned as a Result, only render failures are errors
func (cs *ClockScheduler) Run(ctx context.Context) (Result, error) {
	log.Debug().Dur("interval", cs.tickInterval).Msg("Scheduler started")

	for {
		if ctx.Err() != nil {
			cs.game.Quit()
			return cs.result(), nil
		}

		start := cs.clock.Now()

		if quit := cs.drainInput(); quit {
			cs.game.Quit()
			return cs.result(), nil
		}

		res := cs.game.Tick()
		cs.tickCount++
		for _, hook := range cs.hooks {
			hook(res)
		}

		if res.Phase == PhaseGameOver {
			log.Info().
				Stringer("reason", res.Reason).
				Uint64("ticks", cs.tickCount).
				Int("length", cs.game.Stats().Length).
				Msg("Game over")
			return cs.result(), nil
		}

		if err := cs.sink.Render(cs.game.Frame()); err != nil {
			return cs.result(), fmt.Errorf("render tick %d: %w", cs.tickCount, err)
		}

		elapsed := cs.clock.Now().Sub(start)
		if elapsed < cs.tickInterval {
			cs.clock.Sleep(cs.tickInterval - elapsed)
		} else {
			log.Debug().Dur("elapsed", elapsed).Uint64("tick", cs.tickCount).Msg("Tick over budget")
		}
	}
}

// drainInput feeds all pending intents through the latch, reports a quit intent
// Only the first accepted direction change per tick takes effect
func (cs *ClockScheduler) drainInput() bool {
	latch := cs.game.Latch()
	for _, intent := range cs.source.Poll() {
		switch intent.Type {
		case input.IntentQuit:
			return true
		case input.IntentMove:
			latch.Record(intent.Dir)
		case input.IntentResize:
			if r, ok := cs.sink.(Resizer); ok {
				r.Resize()
			}
		}
	}
	return false
}

func (cs *ClockScheduler) result() Result {
	return Result{
		Reason: cs.game.Reason(),
		Stats:  cs.game.Stats(),
	}
}
