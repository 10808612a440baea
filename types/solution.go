package types

import (
	"sort"
	"strings"
)

// Solution is a complete assignment: a total bijection over the roster with
// no fixed points and no 2-cycles, satisfying every active constraint.
//
// A Solution is immutable once produced. Accessors return copies where
// mutation would otherwise be possible.
type Solution struct {
	pairs      []Pair
	byGiver    map[string]string
	byReceiver map[string]string
}

// NewSolution builds a Solution from assignment pairs. Pairs are sorted by
// giver name so downstream rendering is stable regardless of search order.
//
// The constructor trusts its input; the engine only calls it with an
// assignment that already passed every constraint check.
func NewSolution(pairs []Pair) *Solution {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Giver < sorted[j].Giver })

	byGiver := make(map[string]string, len(sorted))
	byReceiver := make(map[string]string, len(sorted))
	for _, p := range sorted {
		byGiver[p.Giver] = p.Receiver
		byReceiver[p.Receiver] = p.Giver
	}

	return &Solution{pairs: sorted, byGiver: byGiver, byReceiver: byReceiver}
}

// Pairs returns the assignment edges sorted by giver name.
func (s *Solution) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)

	return out
}

// ReceiverOf returns the recipient assigned to the named giver.
func (s *Solution) ReceiverOf(giver string) (string, bool) {
	r, ok := s.byGiver[giver]
	return r, ok
}

// GiverOf returns the person assigned to give to the named receiver.
func (s *Solution) GiverOf(receiver string) (string, bool) {
	g, ok := s.byReceiver[receiver]
	return g, ok
}

// Len returns the number of assignment edges, which equals the roster size.
func (s *Solution) Len() int {
	return len(s.pairs)
}

// String renders the assignment one edge per line, sorted by giver.
func (s *Solution) String() string {
	var b strings.Builder
	for i, p := range s.pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.String())
	}

	return b.String()
}
