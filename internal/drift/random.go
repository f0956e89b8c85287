package drift

import "math/rand/v2"

// RandomInRange returns a uniformly distributed integer in [min, max].
// Callers must guarantee min <= max. A nil r draws from the global source.
func RandomInRange(r *rand.Rand, min, max int) int {
	if r == nil {
		return min + rand.IntN(max-min+1)
	}
	return min + r.IntN(max-min+1)
}
