package scene

import (
	"time"

	"memoa/content"
	"memoa/settings"
	"memoa/vmath"
)

// Highlight is the transient visual state of a ring item
type Highlight uint8

const (
	HighlightNone Highlight = iota
	HighlightClicked
	HighlightSelected
)

// Space is the memorial space: the category ring derived from the
// current snapshot and settings, plus view state (yaw, cursor,
// highlights). The snapshot is read-only; all derivations are
// recomputed per tick
type Space struct {
	snapshot *content.Snapshot
	cfg      settings.Settings

	yaw    float64
	items  []LayoutItem
	cursor int

	highlights map[content.Category]Highlight
}

// NewSpace creates a space over the given snapshot and settings
func NewSpace(snapshot *content.Snapshot, cfg settings.Settings) *Space {
	s := &Space{
		snapshot:   snapshot,
		cfg:        cfg,
		highlights: make(map[content.Category]Highlight),
	}
	s.rebuild()
	return s
}

// SetSettings swaps in a new settings snapshot
func (s *Space) SetSettings(cfg settings.Settings) {
	s.cfg = cfg
	s.rebuild()
}

// SetSnapshot swaps in a freshly loaded content snapshot
func (s *Space) SetSnapshot(snap *content.Snapshot) {
	s.snapshot = snap
	s.rebuild()
}

// Settings returns the current settings snapshot
func (s *Space) Settings() settings.Settings { return s.cfg }

func (s *Space) rebuild() {
	visible := content.Visible(s.snapshot, s.cfg.Hidden)
	s.items = ComputeLayout(visible, &s.cfg)
	if s.cursor >= len(s.items) {
		s.cursor = 0
	}
	for c, h := range s.highlights {
		s.applyHighlight(c, h)
	}
}

// Update advances auto-rotation
func (s *Space) Update(dt time.Duration) {
	if s.cfg.AutoRotate {
		s.yaw = vmath.WrapAngle(s.yaw + s.cfg.RotationSpeed*dt.Seconds())
	}
}

// Priority orders the space before the carousel and starfield
func (s *Space) Priority() int { return 10 }

// Yaw returns the current ring rotation in radians
func (s *Space) Yaw() float64 { return s.yaw }

// Items returns the positioned ring items
func (s *Space) Items() []LayoutItem { return s.items }

// CursorMove shifts the keyboard cursor by delta, wrapping
func (s *Space) CursorMove(delta int) {
	n := len(s.items)
	if n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Current returns the item under the keyboard cursor
func (s *Space) Current() (LayoutItem, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return LayoutItem{}, false
	}
	return s.items[s.cursor], true
}

// CursorIndex returns the keyboard cursor slot
func (s *Space) CursorIndex() int { return s.cursor }

// SetHighlight applies click/selection feedback to a category
func (s *Space) SetHighlight(c content.Category, h Highlight) {
	if h == HighlightNone {
		delete(s.highlights, c)
	} else {
		s.highlights[c] = h
	}
	s.applyHighlight(c, h)
}

func (s *Space) applyHighlight(c content.Category, h Highlight) {
	for i := range s.items {
		if s.items[i].Category != c {
			continue
		}
		switch h {
		case HighlightSelected:
			s.items[i].Scale = 1.3
		case HighlightClicked:
			s.items[i].Scale = 1.15
		default:
			s.items[i].Scale = 1
		}
	}
}

// Entries returns the extracted entries behind a category icon
func (s *Space) Entries(c content.Category) []content.Entry {
	d, ok := content.DescriptorFor(c)
	if !ok || s.snapshot == nil {
		return nil
	}
	return d.Extract(s.snapshot)
}
