package drill

import "math/rand/v2"

// Source draws uniformly distributed integers in the inclusive range [lo, hi].
type Source interface {
	IntRange(lo, hi int) int
}

// pcgStreamMix decorrelates the second PCG word from the seed.
const pcgStreamMix = 0x9e3779b97f4a7c15

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a reproducible Source seeded with seed.
func NewSource(seed uint64) Source {
	return &randSource{rng: rand.New(rand.NewPCG(seed, seed^pcgStreamMix))}
}

// IntRange returns lo when the range is empty.
func (s *randSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
