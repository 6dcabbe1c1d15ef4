package rain

import (
	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/modes"
)

// Field owns one Column per screen column, in screen order
type Field struct {
	columns []Column
	spawner *Spawner
}

// NewField creates an empty field; the first Reconcile sizes it
func NewField(spawner *Spawner) *Field {
	return &Field{spawner: spawner}
}

// Len returns the column count
func (f *Field) Len() int {
	return len(f.columns)
}

// Column returns the column at x for in-place inspection or mutation
func (f *Field) Column(x int) *Column {
	return &f.columns[x]
}

// Columns returns the backing slice; callers must not retain it across Reconcile
func (f *Field) Columns() []Column {
	return f.columns
}

// Reconcile grows or truncates the field to width
// Existing columns keep their state and order; growth appends freshly spawned columns.
// Shrinking always drops trailing columns.
func (f *Field) Reconcile(width, height int) (added, dropped int) {
	if width < 0 {
		width = 0
	}

	switch n := len(f.columns); {
	case n < width:
		for x := n; x < width; x++ {
			var c Column
			c.Reset(f.spawner, height, 0)
			f.columns = append(f.columns, c)
		}
		return width - n, 0
	case n > width:
		clear(f.columns[width:])
		f.columns = f.columns[:width]
		return 0, n - width
	}
	return 0, 0
}

// Advance moves every column one tick according to mode
// Returns true in ModeDraining once no column had any trail left to shorten.
func (f *Field) Advance(mode modes.Mode, height int) (allDone bool) {
	switch mode {
	case modes.ModeRunning:
		f.advanceRunning(height)
	case modes.ModeDraining:
		return f.advanceDraining()
	}
	return false
}

func (f *Field) advanceRunning(height int) {
	for i := range f.columns {
		c := &f.columns[i]
		c.AdvanceRunning()
		if c.Exited(height) {
			c.Reset(f.spawner, height, -constants.RespawnGap)
		}
	}
}

func (f *Field) advanceDraining() bool {
	allDone := true
	for i := range f.columns {
		if f.columns[i].AdvanceDraining() {
			allDone = false
		}
	}
	return allDone
}

// ResetAll respawns every column as on first sizing
func (f *Field) ResetAll(height int) {
	for i := range f.columns {
		f.columns[i].Reset(f.spawner, height, 0)
	}
}
