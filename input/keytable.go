package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps key events to intents per mode
type KeyTable struct {
	// Special keys shared by all modes
	SystemKeys map[tcell.Key]IntentType

	// Space mode bindings
	SpaceKeys  map[tcell.Key]IntentType
	SpaceRunes map[rune]IntentType

	// Carousel mode bindings
	CarouselKeys  map[tcell.Key]IntentType
	CarouselRunes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
		},
		SpaceKeys: map[tcell.Key]IntentType{
			tcell.KeyRight:   IntentCursorNext,
			tcell.KeyLeft:    IntentCursorPrev,
			tcell.KeyTab:     IntentCursorNext,
			tcell.KeyBacktab: IntentCursorPrev,
			tcell.KeyEnter:   IntentActivate,
		},
		SpaceRunes: map[rune]IntentType{
			'l': IntentCursorNext,
			'h': IntentCursorPrev,
			'r': IntentToggleAutoRotate,
			'm': IntentToggleMute,
			'q': IntentQuit,
			' ': IntentActivate,
		},
		CarouselKeys: map[tcell.Key]IntentType{
			tcell.KeyLeft:  IntentCarouselCounter,
			tcell.KeyRight: IntentCarouselClock,
		},
		CarouselRunes: map[rune]IntentType{
			'a': IntentCarouselCounter,
			'd': IntentCarouselClock,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Translate maps a key event to an intent for the active mode.
// Detail mode only honors the system keys (Escape closes)
func (kt *KeyTable) Translate(ev *tcell.EventKey, mode Mode) Intent {
	if t, ok := kt.SystemKeys[ev.Key()]; ok {
		return Intent{Type: t}
	}

	switch mode {
	case ModeSpace:
		if t, ok := kt.SpaceKeys[ev.Key()]; ok {
			return Intent{Type: t}
		}
		if ev.Key() == tcell.KeyRune {
			if t, ok := kt.SpaceRunes[ev.Rune()]; ok {
				return Intent{Type: t}
			}
		}
	case ModeCarousel:
		if t, ok := kt.CarouselKeys[ev.Key()]; ok {
			return Intent{Type: t}
		}
		if ev.Key() == tcell.KeyRune {
			if t, ok := kt.CarouselRunes[ev.Rune()]; ok {
				return Intent{Type: t}
			}
		}
	case ModeDetail:
		// Escape and quit only; handled above
	}

	return Intent{Type: IntentNone}
}
