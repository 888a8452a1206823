package input

import "github.com/lixenwraith/grid-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, bypass the latch
	IntentQuit   // Esc, Ctrl+C, q, window close
	IntentResize // Terminal resize event

	// Steering
	IntentMove // h,j,k,l, arrows
)

// Intent is a translated input event
type Intent struct {
	Type IntentType
	Dir  core.Direction
}

// Move returns a steering intent
func Move(dir core.Direction) Intent {
	return Intent{Type: IntentMove, Dir: dir}
}

// Quit returns a quit intent
func Quit() Intent {
	return Intent{Type: IntentQuit}
}
