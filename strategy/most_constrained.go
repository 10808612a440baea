package strategy

import (
	"math/rand/v2"
	"sort"

	"github.com/shanecelis/secret-santa/types"
)

// MostConstrained attempts the givers with the fewest legal receivers first.
type MostConstrained struct{}

var _ types.SearchStrategy = (*MostConstrained)(nil)

// NewMostConstrained creates a new fewest-receivers-first strategy.
//
// Placing the tightest givers at the top of the search tree surfaces dead
// branches early, which cuts backtracking on densely constrained plans.
// Givers with equal degree are shuffled, so variety across runs and
// determinism under a fixed seed both still hold.
//
// Returns:
//   - *MostConstrained: Initialized strategy
func NewMostConstrained() *MostConstrained {
	return &MostConstrained{}
}

// Name returns the strategy identifier used in logs.
func (s *MostConstrained) Name() string { return "most_constrained" }

// OrderGivers returns the givers sorted by ascending legal receiver count,
// with random order among ties.
//
// Parameters:
//   - degrees: Legal receiver count per giver
//   - rng: Per-solve random source for tie-breaking
//
// Returns:
//   - []int: Permutation of 0..len(degrees)-1
func (s *MostConstrained) OrderGivers(degrees []int, rng *rand.Rand) []int {
	order := make([]int, len(degrees))
	for i := range order {
		order[i] = i
	}
	// Shuffle first so the stable sort breaks ties randomly.
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	sort.SliceStable(order, func(i, j int) bool {
		return degrees[order[i]] < degrees[order[j]]
	})

	return order
}
