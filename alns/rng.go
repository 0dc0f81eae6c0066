package alns

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass Seed == 0,
// mirroring tsp.rngFromSeed's seed-zero policy.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 selects
// defaultSeed; any other value is used verbatim. Every call to Run must
// use its own *rand.Rand — never a shared or global one (spec §5).
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
