package scene

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"memoa/content"
)

// Palette maps each category to its icon color
type Palette map[content.Category]tcell.Color

// DefaultThemeName is used when the configured theme is unknown
const DefaultThemeName = "cosmic"

// Themes is the fixed table of named palettes
var Themes = map[string]Palette{
	"cosmic": {
		content.CategoryFavorites:  tcell.NewRGBColor(255, 105, 180), // Hot pink
		content.CategoryGaming:     tcell.NewRGBColor(138, 43, 226),  // Violet
		content.CategoryPresence:   tcell.NewRGBColor(0, 191, 255),   // Sky blue
		content.CategoryGallery:    tcell.NewRGBColor(255, 215, 0),   // Gold
		content.CategoryNarratives: tcell.NewRGBColor(152, 251, 152), // Pale green
		content.CategoryVoice:      tcell.NewRGBColor(255, 140, 0),   // Orange
		content.CategoryAvatars:    tcell.NewRGBColor(64, 224, 208),  // Turquoise
		content.CategoryDocuments:  tcell.NewRGBColor(222, 184, 135), // Tan
		content.CategoryTributes:   tcell.NewRGBColor(230, 230, 250), // Lavender
	},
	"ember": {
		content.CategoryFavorites:  tcell.NewRGBColor(255, 69, 0),
		content.CategoryGaming:     tcell.NewRGBColor(205, 92, 92),
		content.CategoryPresence:   tcell.NewRGBColor(255, 160, 122),
		content.CategoryGallery:    tcell.NewRGBColor(255, 215, 0),
		content.CategoryNarratives: tcell.NewRGBColor(244, 164, 96),
		content.CategoryVoice:      tcell.NewRGBColor(255, 99, 71),
		content.CategoryAvatars:    tcell.NewRGBColor(233, 150, 122),
		content.CategoryDocuments:  tcell.NewRGBColor(210, 180, 140),
		content.CategoryTributes:   tcell.NewRGBColor(255, 228, 196),
	},
	"ocean": {
		content.CategoryFavorites:  tcell.NewRGBColor(0, 206, 209),
		content.CategoryGaming:     tcell.NewRGBColor(70, 130, 180),
		content.CategoryPresence:   tcell.NewRGBColor(100, 149, 237),
		content.CategoryGallery:    tcell.NewRGBColor(127, 255, 212),
		content.CategoryNarratives: tcell.NewRGBColor(176, 224, 230),
		content.CategoryVoice:      tcell.NewRGBColor(0, 139, 139),
		content.CategoryAvatars:    tcell.NewRGBColor(72, 209, 204),
		content.CategoryDocuments:  tcell.NewRGBColor(95, 158, 160),
		content.CategoryTributes:   tcell.NewRGBColor(224, 255, 255),
	},
}

// PaletteFor returns the palette for a theme name, falling back to
// the default palette for unknown names
func PaletteFor(theme string) Palette {
	if p, ok := Themes[theme]; ok {
		return p
	}
	return Themes[DefaultThemeName]
}

// fallbackColor covers categories missing from a palette
var fallbackColor = tcell.NewRGBColor(200, 200, 200)

// ResolveColor applies the precedence: explicit override, then theme
// palette, then gray
func ResolveColor(c content.Category, override string, palette Palette) tcell.Color {
	if override != "" {
		if col, ok := ParseHexColor(override); ok {
			return col
		}
	}
	if col, ok := palette[c]; ok {
		return col
	}
	return fallbackColor
}

// ParseHexColor parses "#rrggbb" (leading '#' optional)
func ParseHexColor(s string) (tcell.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return tcell.NewRGBColor(
		int32(v>>16&0xff),
		int32(v>>8&0xff),
		int32(v&0xff),
	), true
}
