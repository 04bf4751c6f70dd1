package search

import "math/rand"

// DefaultSeed is the seed used when callers pass seed == 0 or no source at all.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is NOT goroutine-safe; a stream belongs to one delivery
// session at a time.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}
