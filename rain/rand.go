package rain

import "math/rand/v2"

// Rand is the random capability columns are spawned with
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source; seed 0 draws a random seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
