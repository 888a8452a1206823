package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// ScreenSource pumps tcell events into a buffered channel and drains them without blocking
type ScreenSource struct {
	table  *KeyTable
	events chan Intent
	done   chan struct{}
	once   sync.Once
}

// NewScreenSource starts the event pump for screen
// The pump only forwards translated intents, it never touches game state
func NewScreenSource(screen tcell.Screen, table *KeyTable, bufferSize int) *ScreenSource {
	s := &ScreenSource{
		table:  table,
		events: make(chan Intent, bufferSize),
		done:   make(chan struct{}),
	}

	// Panics in the pump still restore the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				s.push(Quit())
				return
			}
			intent := s.table.Translate(ev)
			if intent.Type == IntentNone {
				continue
			}
			if !s.push(intent) {
				return
			}
		}
	})

	return s
}

// push blocks until the intent is buffered or the source is closed
func (s *ScreenSource) push(intent Intent) bool {
	select {
	case s.events <- intent:
		return true
	case <-s.done:
		return false
	}
}

// Poll returns all buffered intents in arrival order
func (s *ScreenSource) Poll() []Intent {
	var out []Intent
	for {
		select {
		case intent := <-s.events:
			out = append(out, intent)
		default:
			return out
		}
	}
}

// Close stops forwarding, the pump exits on its next event
func (s *ScreenSource) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}
