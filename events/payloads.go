package events

import (
	"memoa/content"
)

// ItemPayload identifies a ring item receiving click feedback
type ItemPayload struct {
	Category content.Category
}

// DetailPayload carries a resolved double-click to the detail view.
// Data is the category's extracted entries, passed through untouched
type DetailPayload struct {
	Category content.Category
	Data     any
}

// CarouselOpenPayload carries the gallery entries entering the carousel
type CarouselOpenPayload struct {
	Entries []content.Entry
}

// CarouselStepPayload reports the new active index after navigation
type CarouselStepPayload struct {
	Index     int
	Direction int
}
