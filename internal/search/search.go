// Package search implements the randomized backtracking search over a
// compiled Ruleset. The traversal knows nothing about constraint semantics;
// every branch decision goes through Ruleset.Allowed.
package search

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/shanecelis/secret-santa/internal/rules"
)

// Sentinel results of a search run. The solver maps these onto the public
// error taxonomy.
var (
	// ErrNoSolution is returned when the search exhausted the whole space
	// without finding an assignment. This is a proof of infeasibility.
	ErrNoSolution = errors.New("search space exhausted")

	// ErrBudgetExceeded is returned when the node budget ran out before the
	// search completed. Not a proof of infeasibility.
	ErrBudgetExceeded = errors.New("node budget exceeded")
)

// ctxCheckInterval is how many nodes are visited between context checks.
const ctxCheckInterval = 1024

// Stats reports search effort for metrics and logging.
type Stats struct {
	// Nodes is the number of candidate edges tried.
	Nodes int64

	// Backtracks is the number of assignments undone.
	Backtracks int64
}

// frame is one level of the explicit backtracking stack: a giver, its
// shuffled candidate receivers, and the cursor into them.
type frame struct {
	giver      int
	candidates []int
	next       int
	chosen     int
}

// Run searches for a complete assignment over rs.
//
// Forced edges are fixed before the traversal starts. order lists the
// remaining (unforced) givers in the order they should be attempted; the
// candidate receivers of each giver are shuffled with rng, so two runs with
// the same rng stream are identical and runs with different streams explore
// the space in different orders.
//
// budget bounds the number of nodes visited; spending it yields
// ErrBudgetExceeded rather than an unbounded worst case. The context is
// checked periodically so a caller can abort a pathological search.
//
// Returns:
//   - []int: assign[g] = receiver index for giver g, complete on success
//   - Stats: effort spent, populated on every return
//   - error: nil, ErrNoSolution, ErrBudgetExceeded, or ctx.Err()
func Run(ctx context.Context, rs *rules.Ruleset, order []int, rng *rand.Rand, budget int64) ([]int, Stats, error) {
	n := rs.Len()
	assign := make([]int, n)
	taken := make([]bool, n)
	for i := range assign {
		assign[i] = -1
	}

	// Fix forced pairs first and remove their receivers from the pool.
	for g := range n {
		if r := rs.Forced(g); r != -1 {
			assign[g] = r
			taken[r] = true
		}
	}

	var stats Stats
	stack := make([]frame, 0, len(order))

	for {
		if len(stack) == len(order) {
			return assign, stats, nil
		}

		giver := order[len(stack)]
		candidates := shuffledReceivers(rs, giver, assign, taken, rng)
		stack = append(stack, frame{giver: giver, candidates: candidates, chosen: -1})

		for {
			top := &stack[len(stack)-1]

			advanced := false
			for top.next < len(top.candidates) {
				r := top.candidates[top.next]
				top.next++
				stats.Nodes++
				if stats.Nodes > budget {
					return nil, stats, ErrBudgetExceeded
				}
				if stats.Nodes%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return nil, stats, err
					}
				}
				// Candidates were filtered at push time, but later frames
				// may have created a 2-cycle conflict since; re-check.
				if taken[r] || !rs.Allowed(top.giver, r, assign) {
					continue
				}
				assign[top.giver] = r
				taken[r] = true
				top.chosen = r
				advanced = true

				break
			}
			if advanced {
				break
			}

			// Candidates exhausted: undo the most recent assignment and
			// retry the frame below. Exhausting the root proves there is
			// no solution.
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil, stats, ErrNoSolution
			}
			stats.Backtracks++
			parent := &stack[len(stack)-1]
			taken[parent.chosen] = false
			assign[parent.giver] = -1
			parent.chosen = -1
		}
	}
}

// shuffledReceivers returns the receivers currently legal for giver in
// random order.
func shuffledReceivers(rs *rules.Ruleset, giver int, assign []int, taken []bool, rng *rand.Rand) []int {
	candidates := make([]int, 0, rs.Len())
	for r := range rs.Len() {
		if taken[r] {
			continue
		}
		if rs.Allowed(giver, r, assign) {
			candidates = append(candidates, r)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates
}
