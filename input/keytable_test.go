package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslateCarouselBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"Left arrow counterclockwise", keyEvent(tcell.KeyLeft), IntentCarouselCounter},
		{"a counterclockwise", runeEvent('a'), IntentCarouselCounter},
		{"Right arrow clockwise", keyEvent(tcell.KeyRight), IntentCarouselClock},
		{"d clockwise", runeEvent('d'), IntentCarouselClock},
		{"Escape closes", keyEvent(tcell.KeyEscape), IntentEscape},
		{"Space-only binding inert", runeEvent('h'), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev, ModeCarousel); got.Type != tt.want {
				t.Errorf("Translate = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestTranslateSpaceBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"Right cursor", keyEvent(tcell.KeyRight), IntentCursorNext},
		{"h cursor", runeEvent('h'), IntentCursorPrev},
		{"Enter activates", keyEvent(tcell.KeyEnter), IntentActivate},
		{"Mute toggle", runeEvent('m'), IntentToggleMute},
		{"Quit", runeEvent('q'), IntentQuit},
		{"Carousel-only binding inert", runeEvent('d'), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev, ModeSpace); got.Type != tt.want {
				t.Errorf("Translate = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestTranslateDetailModeOnlySystemKeys(t *testing.T) {
	kt := DefaultKeyTable()

	if got := kt.Translate(keyEvent(tcell.KeyEscape), ModeDetail); got.Type != IntentEscape {
		t.Errorf("Escape in detail mode = %v, want IntentEscape", got.Type)
	}
	if got := kt.Translate(runeEvent('a'), ModeDetail); got.Type != IntentNone {
		t.Errorf("rune in detail mode = %v, want IntentNone", got.Type)
	}
}
