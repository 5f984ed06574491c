package input

// Mode is the active input context. Each mode owns its own bindings;
// translation happens against the active mode on the frame loop, so
// a binding can never fire in a mode it does not belong to
type Mode uint8

const (
	ModeSpace Mode = iota
	ModeCarousel
	ModeDetail
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentEscape     // ESC (context-dependent: close carousel/detail)
	IntentToggleMute // m

	// Space mode
	IntentCursorNext       // l, Right, Tab
	IntentCursorPrev       // h, Left, Shift+Tab
	IntentActivate         // Enter (click; two rapid = double-click)
	IntentToggleAutoRotate // r

	// Carousel mode
	IntentCarouselCounter // Left arrow, a → navigate(+1)
	IntentCarouselClock   // Right arrow, d → navigate(-1)
)

// Intent is one translated key press
type Intent struct {
	Type IntentType
}
