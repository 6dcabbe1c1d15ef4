// Package glyph holds the character set columns draw from.
package glyph

// Source is the random capability a Pool draws with
type Source interface {
	IntN(n int) int
}

// Pool is an immutable, non-empty set of candidate display characters
type Pool struct {
	runes []rune
}

// latin mirrors the printable ASCII portion of the set
const latin = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%^&*()"

// Katakana block U+30A0..U+30FE
const (
	katakanaFirst = 0x30A0
	katakanaLast  = 0x30FE
)

// DefaultPool returns the Latin + Katakana set
func DefaultPool() *Pool {
	runes := make([]rune, 0, len(latin)+katakanaLast-katakanaFirst+1)
	runes = append(runes, []rune(latin)...)
	for r := rune(katakanaFirst); r <= katakanaLast; r++ {
		runes = append(runes, r)
	}
	return &Pool{runes: runes}
}

// NewPool builds a pool from the given runes, falling back to DefaultPool when empty
func NewPool(runes []rune) *Pool {
	if len(runes) == 0 {
		return DefaultPool()
	}
	cp := make([]rune, len(runes))
	copy(cp, runes)
	return &Pool{runes: cp}
}

// Len returns the number of candidate runes
func (p *Pool) Len() int {
	return len(p.runes)
}

// Pick returns a uniformly random rune; draws are independent
func (p *Pool) Pick(src Source) rune {
	return p.runes[src.IntN(len(p.runes))]
}

// Fill returns n independent picks
func (p *Pool) Fill(src Source, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = p.Pick(src)
	}
	return out
}
