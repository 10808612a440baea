package types

import "math/rand/v2"

// SearchStrategy decides the order in which unassigned givers are attempted
// by the backtracking search.
//
// Strategies receive plain data so they stay decoupled from the constraint
// model: degrees[i] is the number of legal receivers currently available to
// the i-th unassigned giver. The returned slice must be a permutation of the
// indices 0..len(degrees)-1.
//
// Implementations must be stateless or safe for concurrent use; the same
// strategy instance may serve concurrent solves.
type SearchStrategy interface {
	// Name returns a short identifier used in logs.
	Name() string

	// OrderGivers returns the processing order for unassigned givers.
	//
	// Parameters:
	//   - degrees: Legal receiver count per unassigned giver
	//   - rng: Per-solve random source for tie-breaking and shuffling
	//
	// Returns:
	//   - []int: Permutation of 0..len(degrees)-1
	OrderGivers(degrees []int, rng *rand.Rand) []int
}
