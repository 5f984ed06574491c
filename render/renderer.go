package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"memoa/content"
	"memoa/scene"
	"memoa/starfield"
	"memoa/vmath"
)

const carouselRadius = 9.0

// Renderer draws the memorial space onto a tcell screen. It owns no
// state beyond the screen handle; everything it draws is derived from
// the scene passed in each frame
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderSpace draws the full space frame: starfield, category ring,
// status bar
func (r *Renderer) RenderSpace(sp *scene.Space, field *starfield.Field, status string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(bg)

	r.drawStarfield(field, sp.Yaw(), w, h, bg)
	r.drawRing(sp, w, h, bg)
	r.drawStatusBar(status, w, h)

	r.screen.Show()
}

// RenderCarousel draws the carousel frame: starfield backdrop, media
// ring rotated by the eased camera rotation, caption strip
func (r *Renderer) RenderCarousel(c *scene.Carousel, field *starfield.Field, status string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(bg)

	r.drawStarfield(field, c.Rotation(), w, h, bg)
	r.drawCarouselRing(c, w, h, bg)
	r.drawStatusBar(status, w, h)

	r.screen.Show()
}

// RenderStarfieldOnly draws just the particle field; used by the
// starfield sandbox
func (r *Renderer) RenderStarfieldOnly(field *starfield.Field, yaw float64) {
	r.screen.Clear()
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(bg)
	r.drawStarfield(field, yaw, w, h, bg)
	r.screen.Show()
}

// RenderDetail draws the detail overlay for an opened category
func (r *Renderer) RenderDetail(label string, entries []content.Entry, status string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbDetailBg)
	r.fill(bg)

	title := tcell.StyleDefault.Background(RgbDetailBg).Foreground(RgbStatusBar).Bold(true)
	r.drawText(2, 1, label, title)

	style := tcell.StyleDefault.Background(RgbDetailBg).Foreground(RgbDetailFg)
	row := 3
	for _, e := range entries {
		if row >= h-2 {
			r.drawText(2, row, fmt.Sprintf("… %d more", len(entries)-(row-3)), style)
			break
		}
		r.drawText(2, row, "• "+e.Title, style)
		row++
	}

	r.drawStatusBar(status, w, h)
	r.screen.Show()
}

func (r *Renderer) fill(style tcell.Style) {
	w, h := r.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawStarfield(field *starfield.Field, yaw float64, w, h int, bg tcell.Style) {
	if field == nil {
		return
	}
	positions := field.Positions()
	colors := field.Colors()
	sizes := field.Sizes()

	for i, p := range positions {
		x, y, depth, ok := Project(p, yaw, w, h)
		if !ok {
			continue
		}
		c := colors[i]
		// Far particles dim toward the background
		t := (depth + cameraDistance) / (2 * cameraDistance)
		col := DimForDepth(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)), t)

		glyph := '·'
		if sizes[i] > 1.2 {
			glyph = '•'
		}
		r.screen.SetContent(x, y, glyph, nil, bg.Foreground(col))
	}
}

type projectedItem struct {
	item scene.LayoutItem
	x, y int
	depth float64
}

func (r *Renderer) drawRing(sp *scene.Space, w, h int, bg tcell.Style) {
	items := sp.Items()

	projected := make([]projectedItem, 0, len(items))
	for _, item := range items {
		if !item.Visible {
			continue
		}
		x, y, depth, ok := Project(item.Position, sp.Yaw(), w, h)
		if !ok {
			continue
		}
		projected = append(projected, projectedItem{item: item, x: x, y: y, depth: depth})
	}

	// Painter's order: far first so near icons overdraw
	sort.Slice(projected, func(i, j int) bool {
		return projected[i].depth > projected[j].depth
	})

	cursorIdx := sp.CursorIndex()
	for _, p := range projected {
		d, ok := content.DescriptorFor(p.item.Category)
		if !ok {
			continue
		}

		style := bg.Foreground(p.item.Color)
		if p.item.Scale > 1 {
			style = style.Bold(true)
		}
		r.screen.SetContent(p.x, p.y, d.Icon, nil, style)

		// Label next to the icon, dimmed unless under the cursor
		labelStyle := bg.Foreground(RgbLabelDim)
		if idx := indexOf(items, p.item.Category); idx == cursorIdx {
			labelStyle = bg.Foreground(p.item.Color).Bold(true)
			r.screen.SetContent(p.x-1, p.y, '[', nil, bg.Foreground(RgbCursorRing))
			r.screen.SetContent(p.x+1, p.y, ']', nil, bg.Foreground(RgbCursorRing))
		}
		r.drawText(p.x+3, p.y, d.Label, labelStyle)
	}
}

func (r *Renderer) drawCarouselRing(c *scene.Carousel, w, h int, bg tcell.Style) {
	items := c.Items()
	for i, entry := range items {
		angle := c.ItemAngle(i)
		pos := vmath.Vec3{
			X: math.Sin(angle) * carouselRadius,
			Y: 0,
			Z: math.Cos(angle) * carouselRadius,
		}
		x, y, depth, ok := Project(pos, c.Rotation(), w, h)
		if !ok {
			continue
		}

		glyph := '▫'
		style := bg.Foreground(RgbLabelDim)
		if c.ItemScale(i) == scene.ActiveScale {
			glyph = '▣'
			style = bg.Foreground(RgbStatusBar).Bold(true)
		} else if depth > 0 {
			style = bg.Foreground(DimForDepth(RgbLabelDim, 0.5))
		}
		r.screen.SetContent(x, y, glyph, nil, style)

		if c.ItemScale(i) == scene.ActiveScale {
			caption := fmt.Sprintf("%s (%d/%d)", entry.Title, i+1, len(items))
			r.drawText(w/2-len(caption)/2, h-3, caption, bg.Foreground(RgbStatusBar))
		}
	}
}

func (r *Renderer) drawStatusBar(status string, w, h int) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, h-1, ' ', nil, style)
	}
	r.drawText(1, h-1, status, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, ch := range s {
		cx := x + i
		if cx < 0 || cx >= w {
			continue
		}
		r.screen.SetContent(cx, y, ch, nil, style)
	}
}

func indexOf(items []scene.LayoutItem, c content.Category) int {
	for i, item := range items {
		if item.Category == c {
			return i
		}
	}
	return -1
}
