package render

import (
	"github.com/gdamore/tcell/v2"
)

// Fixed UI colors; category colors come from the scene theme
var (
	RgbBackground = tcell.NewRGBColor(16, 16, 28)    // Deep space blue
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(40, 42, 64)    // Muted indigo
	RgbLabelDim   = tcell.NewRGBColor(140, 140, 160) // Dim label gray
	RgbCursorRing = tcell.NewRGBColor(255, 165, 0)   // Orange cursor marker
	RgbDetailBg   = tcell.NewRGBColor(26, 27, 38)    // Overlay background
	RgbDetailFg   = tcell.NewRGBColor(210, 210, 220)
)

// DimForDepth darkens a color for far-away points. t in [0,1],
// 0 = nearest (full brightness), 1 = farthest
func DimForDepth(c tcell.Color, t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := c.RGB()
	factor := 1 - 0.7*t
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
