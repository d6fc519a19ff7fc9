package vg

import "math/rand/v2"

// seedStream is the fixed PCG stream selector; only the seed varies.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic generator for seed. Generators built from
// the same seed produce the same sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), seedStream))
}

// uniform returns a value in [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
