package noise

import (
	"math/rand"
	"time"
)

// A Source draws uniformly distributed values in [0,1).
// *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

// Returns a Source seeded with seed, or with the clock when seed is zero.
// The returned Source is not safe for concurrent use.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
