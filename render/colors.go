package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the rain palette
var (
	RgbHead       = tcell.NewRGBColor(255, 255, 255) // White head
	RgbGlyph      = tcell.NewRGBColor(0, 205, 0)     // Terminal green
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
)

// Cell styles per role and for the pause overlay
var (
	StyleHead     = tcell.StyleDefault.Foreground(RgbHead).Background(RgbBackground).Bold(true)
	StyleNearHead = tcell.StyleDefault.Foreground(RgbGlyph).Background(RgbBackground).Bold(true)
	StyleTrail    = tcell.StyleDefault.Foreground(RgbGlyph).Background(RgbBackground)

	// StyleFrozen is applied to every glyph while paused
	StyleFrozen = StyleTrail

	// StyleOverlay fills the box interior, StyleCaption highlights its text
	StyleOverlay = StyleTrail
	StyleCaption = tcell.StyleDefault.Reverse(true)
)
