package settings

import (
	"memoa/content"
	"memoa/vmath"
)

// Settings is the user-controlled scene configuration. The engine
// consumes it as an immutable snapshot per render; every edit goes
// through the store and comes back as a new value
type Settings struct {
	Radius         float64 `yaml:"radius"`
	VerticalSpread float64 `yaml:"vertical_spread"`
	RotationSpeed  float64 `yaml:"rotation_speed"` // radians per second
	AutoRotate     bool    `yaml:"auto_rotate"`
	Theme          string  `yaml:"theme"`

	Items map[content.Category]ItemSettings `yaml:"items,omitempty"`

	Particles Particles `yaml:"particles"`
}

// ItemSettings are per-category overrides. Zero values mean "no
// override": empty color falls through to the theme palette, nil
// Visible means visible, nil Position keeps the computed ring slot
type ItemSettings struct {
	Color    string      `yaml:"color,omitempty"` // "#rrggbb"
	Visible  *bool       `yaml:"visible,omitempty"`
	Position *[3]float64 `yaml:"position,omitempty"`
}

// Particles configures the starfield backdrop
type Particles struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Depth float64 `yaml:"depth"`
}

// Default returns the out-of-the-box configuration
func Default() Settings {
	return Settings{
		Radius:         10,
		VerticalSpread: 2,
		RotationSpeed:  0.1,
		AutoRotate:     true,
		Theme:          "cosmic",
		Particles: Particles{
			Count: 400,
			Size:  1,
			Speed: 0.02,
			Depth: 50,
		},
	}
}

// Clamp forces every numeric field into its sane range so a
// hand-edited file can never produce degenerate layout math
func (s *Settings) Clamp() {
	s.Radius = vmath.Clamp(s.Radius, 2, 50)
	s.VerticalSpread = vmath.Clamp(s.VerticalSpread, 0, 10)
	s.RotationSpeed = vmath.Clamp(s.RotationSpeed, 0, 2)
	s.Particles.Count = vmath.ClampInt(s.Particles.Count, 0, 5000)
	s.Particles.Size = vmath.Clamp(s.Particles.Size, 0.1, 5)
	s.Particles.Speed = vmath.Clamp(s.Particles.Speed, 0, 1)
	s.Particles.Depth = vmath.Clamp(s.Particles.Depth, 10, 200)
}

// Hidden reports whether a category is explicitly hidden
func (s *Settings) Hidden(c content.Category) bool {
	item, ok := s.Items[c]
	return ok && item.Visible != nil && !*item.Visible
}

// PositionOverride returns the manual position for a category, if set
func (s *Settings) PositionOverride(c content.Category) (vmath.Vec3, bool) {
	item, ok := s.Items[c]
	if !ok || item.Position == nil {
		return vmath.Vec3{}, false
	}
	p := *item.Position
	return vmath.Vec3{X: p[0], Y: p[1], Z: p[2]}, true
}

// ColorOverride returns the hex color override for a category, if set
func (s *Settings) ColorOverride(c content.Category) (string, bool) {
	item, ok := s.Items[c]
	if !ok || item.Color == "" {
		return "", false
	}
	return item.Color, true
}

// SetItem stores per-category overrides, allocating the map lazily
func (s *Settings) SetItem(c content.Category, item ItemSettings) {
	if s.Items == nil {
		s.Items = make(map[content.Category]ItemSettings)
	}
	s.Items[c] = item
}
