package strategy

import (
	"math/rand/v2"

	"github.com/shanecelis/secret-santa/types"
)

// Random attempts givers in uniformly random order.
type Random struct{}

var _ types.SearchStrategy = (*Random)(nil)

// NewRandom creates a new random-order strategy.
//
// The strategy shuffles the unassigned givers before search, so repeated
// runs over the same plan reach different (equally valid) solutions unless
// the seed is fixed. This is the default strategy.
//
// Returns:
//   - *Random: Initialized random-order strategy
func NewRandom() *Random {
	return &Random{}
}

// Name returns the strategy identifier used in logs.
func (s *Random) Name() string { return "random" }

// OrderGivers returns a uniformly random permutation of the givers.
//
// Parameters:
//   - degrees: Legal receiver count per giver (unused by this strategy)
//   - rng: Per-solve random source
//
// Returns:
//   - []int: Shuffled permutation of 0..len(degrees)-1
func (s *Random) OrderGivers(degrees []int, rng *rand.Rand) []int {
	order := make([]int, len(degrees))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return order
}
