package media

import (
	"errors"
	"math/rand/v2"
)

// ErrNoSources is returned when there is nothing to pick from.
var ErrNoSources = errors.New("media: no sources configured")

// PickSource returns a uniformly random entry of sources. A nil r uses the
// global random source.
func PickSource(r *rand.Rand, sources []string) (string, error) {
	if len(sources) == 0 {
		return "", ErrNoSources
	}
	if r == nil {
		return sources[rand.IntN(len(sources))], nil
	}
	return sources[r.IntN(len(sources))], nil
}
