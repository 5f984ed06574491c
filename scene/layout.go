package scene

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"memoa/content"
	"memoa/settings"
	"memoa/vmath"
)

// LayoutItem is one positioned ring icon. Items are pure derivations:
// recomputed whenever the snapshot or settings change, never retained
type LayoutItem struct {
	Category content.Category
	Position vmath.Vec3
	Color    tcell.Color
	Visible  bool
	Scale    float64
}

// ComputeLayout maps the ordered visible categories onto evenly
// spaced angular slots of a ring with radius r and vertical spread v:
//
//	θ_i = (i / N) · 2π
//	x = sin(θ_i)·r, y = sin(θ_i·0.5)·v, z = cos(θ_i)·r
//
// A manual position override replaces the computed position verbatim
// but the item still counts toward N and occupies its index, so the
// other slots do not shift. Pure function of its inputs
func ComputeLayout(visible []content.Category, cfg *settings.Settings) []LayoutItem {
	n := len(visible)
	if n == 0 {
		return nil
	}

	palette := PaletteFor(cfg.Theme)
	// Divisor clamp: n is already ≥ 1 here, but keep the guard local
	// to the math so a future caller cannot reintroduce a zero divide
	slots := float64(max(n, 1))

	items := make([]LayoutItem, 0, n)
	for i, c := range visible {
		theta := float64(i) / slots * vmath.TwoPi

		pos := vmath.Vec3{
			X: math.Sin(theta) * cfg.Radius,
			Y: math.Sin(theta*0.5) * cfg.VerticalSpread,
			Z: math.Cos(theta) * cfg.Radius,
		}
		if override, ok := cfg.PositionOverride(c); ok {
			pos = override
		}

		colorOverride, _ := cfg.ColorOverride(c)

		items = append(items, LayoutItem{
			Category: c,
			Position: pos,
			Color:    ResolveColor(c, colorOverride, palette),
			Visible:  true,
			Scale:    1,
		})
	}
	return items
}
