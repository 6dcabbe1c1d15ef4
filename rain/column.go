// Package rain simulates the falling glyph streams, one Column per screen column.
package rain

import "github.com/lixenwraith/digital-rain/constants"

// Role classifies a lit cell by its distance from the head
type Role uint8

const (
	RoleHead Role = iota
	RoleNearHead
	RoleTrail
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleHead:
		return "Head"
	case RoleNearHead:
		return "NearHead"
	default:
		return "Trail"
	}
}

// Cell is one visible row of a column
type Cell struct {
	Row   int
	Glyph rune
	Role  Role
}

// Column is a single falling stream
// HeadY may sit above or below the screen. Glyphs has the screen height of the last
// reset and is indexed modulo its length, so it stays usable after a resize.
type Column struct {
	HeadY       int
	Speed       int
	TrailLength int
	Glyphs      []rune
}

// Reset rerolls every field; HeadY lands in [-height, ceiling)
func (c *Column) Reset(s *Spawner, height, ceiling int) {
	rows := height
	if rows < 1 {
		rows = 1
	}
	c.HeadY = s.head(-height, ceiling)
	c.Speed = s.speed()
	c.TrailLength = s.trail()
	c.Glyphs = s.glyphs(rows)
}

// AdvanceRunning moves the head down by Speed
func (c *Column) AdvanceRunning() {
	c.HeadY += c.Speed
}

// AdvanceDraining moves the head and shortens the trail by one
// Returns false once the trail was already empty, meaning there was nothing left to drain.
func (c *Column) AdvanceDraining() (shortened bool) {
	c.HeadY += c.Speed
	if c.TrailLength > 0 {
		c.TrailLength--
		return true
	}
	return false
}

// Exited reports whether the whole trail has passed the bottom edge
func (c *Column) Exited(height int) bool {
	return c.HeadY > height+c.TrailLength
}

// AppendVisibleCells appends on-screen cells, head first, to dst
func (c *Column) AppendVisibleCells(dst []Cell, height int) []Cell {
	n := len(c.Glyphs)
	if n == 0 {
		return dst
	}
	for i := 0; i < c.TrailLength; i++ {
		row := c.HeadY - i
		if row < 0 || row >= height {
			continue
		}

		role := RoleTrail
		switch {
		case i == 0:
			role = RoleHead
		case i < constants.NearHeadRows:
			role = RoleNearHead
		}

		dst = append(dst, Cell{Row: row, Glyph: c.Glyphs[row%n], Role: role})
	}
	return dst
}

// VisibleCells returns on-screen cells, head first
func (c *Column) VisibleCells(height int) []Cell {
	return c.AppendVisibleCells(nil, height)
}
