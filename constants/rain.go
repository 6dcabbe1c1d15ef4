package constants

// Column Parameters
const (
	// MinTrailLength and MaxTrailLength bound a column's lit rows, inclusive
	MinTrailLength = 5
	MaxTrailLength = 25

	// NearHeadRows is the count of rows from the head (head included) drawn bold
	NearHeadRows = 3

	// RespawnGap keeps a column that left the bottom at least this many rows above the screen
	RespawnGap = 5
)

// ColumnSpeeds is the set of rows-per-tick a column may fall at
var ColumnSpeeds = []int{1, 2}
