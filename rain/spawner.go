package rain

import (
	"github.com/lixenwraith/digital-rain/constants"
	"github.com/lixenwraith/digital-rain/glyph"
)

// Spawner draws fresh column parameters from a glyph pool and a random source
type Spawner struct {
	pool   *glyph.Pool
	rng    Rand
	speeds []int
}

// NewSpawner creates a spawner using the default speed set
func NewSpawner(pool *glyph.Pool, rng Rand) *Spawner {
	return &Spawner{
		pool:   pool,
		rng:    rng,
		speeds: constants.ColumnSpeeds,
	}
}

// head returns a row in [lo, hi); an empty range collapses to hi-1
func (s *Spawner) head(lo, hi int) int {
	if hi <= lo {
		return hi - 1
	}
	return lo + s.rng.IntN(hi-lo)
}

func (s *Spawner) speed() int {
	return s.speeds[s.rng.IntN(len(s.speeds))]
}

func (s *Spawner) trail() int {
	return constants.MinTrailLength + s.rng.IntN(constants.MaxTrailLength-constants.MinTrailLength+1)
}

func (s *Spawner) glyphs(n int) []rune {
	return s.pool.Fill(s.rng, n)
}
