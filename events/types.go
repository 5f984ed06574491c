package events

import (
	"time"
)

// EventType represents the type of scene event
type EventType int

const (
	// EventItemClicked signals single-click feedback on a ring item
	// Trigger: pointer.Disambiguator on an isolated click
	// Consumer: scene.Space (brief highlight) | Payload: *ItemPayload
	EventItemClicked EventType = iota

	// EventItemSelected signals the start of a double-click resolution
	// Trigger: pointer.Disambiguator on the second rapid click
	// Consumer: scene.Space (selected highlight), audio | Payload: *ItemPayload
	EventItemSelected

	// EventDetailOpen signals a resolved double-click
	// Trigger: pointer.Disambiguator after the resolution delay
	// Consumer: app surface (detail overlay), audio | Payload: *DetailPayload
	EventDetailOpen

	// EventDetailClose signals the detail overlay should close
	// Trigger: input (Escape in detail mode) | Payload: nil
	EventDetailClose

	// EventCarouselOpen signals entry into the gallery carousel
	// Trigger: detail open on the gallery category
	// Consumer: app surface | Payload: *CarouselOpenPayload
	EventCarouselOpen

	// EventCarouselStep signals a completed carousel navigation
	// Trigger: scene.Carousel after Navigate/SetIndex
	// Consumer: app surface (caption refresh), audio | Payload: *CarouselStepPayload
	EventCarouselStep

	// EventCarouselClose signals exit from the carousel
	// Trigger: input (Escape in carousel mode) | Payload: nil
	EventCarouselClose

	// EventSettingsChanged signals a customization edit
	// Trigger: app surface controls
	// Consumer: settings.Autosaver (debounced save) | Payload: nil
	EventSettingsChanged

	// EventToggleMute signals an audio mute toggle
	// Trigger: input (`m`) | Consumer: audio.Service | Payload: nil
	EventToggleMute

	// EventQuit signals application shutdown
	// Trigger: input (`q`, Ctrl+C) | Payload: nil
	EventQuit

	// EventKey carries a raw key press from the input goroutine to
	// the frame loop, where it is translated against the active mode
	// Trigger: terminal poll goroutine | Payload: *tcell.EventKey
	EventKey

	// EventResize signals a terminal size change
	// Trigger: terminal poll goroutine | Payload: nil
	EventResize
)

// Event represents a single scene event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
