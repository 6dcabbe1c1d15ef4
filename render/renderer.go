// Package render composes rain field state into styled terminal cells.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/modes"
	"github.com/lixenwraith/digital-rain/rain"
)

// FrameStats counts cell writes for one Draw
type FrameStats struct {
	Written int
	Dropped int
}

// Renderer draws a field onto a Surface; it reuses its cell scratch buffer across frames
type Renderer struct {
	caption      string
	captionWidth int
	cells        []rain.Cell
}

// NewRenderer creates a renderer with the default pause caption
func NewRenderer() *Renderer {
	return NewRendererWithCaption(constants.PauseCaption)
}

// NewRendererWithCaption creates a renderer with a custom pause caption
func NewRendererWithCaption(caption string) *Renderer {
	return &Renderer{
		caption:      caption,
		captionWidth: runewidth.StringWidth(caption),
		cells:        make([]rain.Cell, 0, constants.MaxTrailLength),
	}
}

// frame tracks writes against the surface bounds captured at the start of Draw
type frame struct {
	s             Surface
	width, height int
	stats         FrameStats
}

func (f *frame) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		f.stats.Dropped++
		return
	}
	f.s.SetContent(x, y, r, nil, style)
	f.stats.Written++
}

// BoxOrigin returns the top-left corner of the pause box, never negative
func (r *Renderer) BoxOrigin(width, height int) (x, y int) {
	return max(0, width/2-r.BoxWidth()/2), max(0, height/2-constants.OverlayHeight/2)
}

// BoxWidth returns the pause box width in cells
func (r *Renderer) BoxWidth() int {
	return r.captionWidth + constants.OverlayPaddingX
}

// Draw clears s and composes the field for mode
// Writes outside either the given size or the surface's current size are dropped.
// A zero-sized screen yields a cleared frame.
func (r *Renderer) Draw(s Surface, field *rain.Field, mode modes.Mode, width, height int) FrameStats {
	s.Clear()

	sw, sh := s.Size()
	f := frame{s: s, width: min(width, sw), height: min(height, sh)}
	if width <= 0 || height <= 0 || f.width <= 0 || f.height <= 0 {
		return f.stats
	}

	frozen := mode == modes.ModePaused
	for x, col := range field.Columns() {
		r.cells = col.AppendVisibleCells(r.cells[:0], height)
		for _, c := range r.cells {
			style := StyleFrozen
			if !frozen {
				style = roleStyle(c.Role)
			}
			f.put(x, c.Row, c.Glyph, style)
		}
	}

	if frozen {
		r.drawOverlay(&f, width, height)
	}
	return f.stats
}

func roleStyle(role rain.Role) tcell.Style {
	switch role {
	case rain.RoleHead:
		return StyleHead
	case rain.RoleNearHead:
		return StyleNearHead
	default:
		return StyleTrail
	}
}

func (r *Renderer) drawOverlay(f *frame, width, height int) {
	boxX, boxY := r.BoxOrigin(width, height)
	boxW := r.BoxWidth()

	for y := 0; y < constants.OverlayHeight; y++ {
		for x := 0; x < boxW; x++ {
			f.put(boxX+x, boxY+y, ' ', StyleOverlay)
		}
	}

	x := boxX + constants.CaptionCol
	y := boxY + constants.CaptionRow
	for _, ch := range r.caption {
		f.put(x, y, ch, StyleCaption)
		x += runewidth.RuneWidth(ch)
	}
}
