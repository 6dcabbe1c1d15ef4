package render

import "github.com/gdamore/tcell/v2"

// Surface is the part of tcell.Screen a frame is composed onto
// tcell.Screen and tcell.SimulationScreen both satisfy it.
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}
