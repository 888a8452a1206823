package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: Quit(),
			tcell.KeyCtrlC:  Quit(),
			tcell.KeyCtrlQ:  Quit(),
			tcell.KeyUp:     Move(core.Up),
			tcell.KeyDown:   Move(core.Down),
			tcell.KeyLeft:   Move(core.Left),
			tcell.KeyRight:  Move(core.Right),
		},

		Runes: map[rune]Intent{
			'h': Move(core.Left),
			'j': Move(core.Down),
			'k': Move(core.Up),
			'l': Move(core.Right),
			'q': Quit(),
		},
	}
}

// Translate maps a terminal event to an intent, unrecognized events are IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if intent, ok := kt.Runes[ev.Rune()]; ok {
				return intent
			}
			return Intent{}
		}
		if intent, ok := kt.SpecialKeys[ev.Key()]; ok {
			return intent
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventInterrupt:
		return Quit()
	}
	return Intent{}
}
