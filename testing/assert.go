package testing

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shanecelis/secret-santa/types"
)

// RequireValidSolution asserts every structural invariant of a valid
// solution over the plan's roster:
//
//   - totality: every person gives exactly once and receives exactly once
//   - derangement: no one gives to themselves
//   - no 2-cycles: if S(p) = q then S(q) != p
//   - whitelist adherence: every forced edge is present
//   - blacklist adherence: no forbidden edge is present
//   - household adherence: no two members of a blacklist set are paired in
//     either direction
//
// History adherence depends on the configured window; assert it separately
// with RequireHistoryAdherence.
func RequireValidSolution(t *testing.T, plan *types.Plan, solution *types.Solution) {
	t.Helper()

	require.NotNil(t, solution)
	require.Equal(t, len(plan.People), solution.Len(), "solution must cover the whole roster")

	seenReceivers := make(map[string]struct{})
	for _, person := range plan.People {
		receiver, ok := solution.ReceiverOf(person.Name)
		require.True(t, ok, "person %q has no assignment", person.Name)
		require.NotEqual(t, person.Name, receiver, "person %q is their own secret santa", person.Name)

		_, dup := seenReceivers[receiver]
		require.False(t, dup, "person %q receives more than once", receiver)
		seenReceivers[receiver] = struct{}{}

		_, known := plan.Lookup(receiver)
		require.True(t, known, "receiver %q is not in the roster", receiver)

		back, ok := solution.ReceiverOf(receiver)
		require.True(t, ok)
		require.NotEqual(t, person.Name, back, "%q and %q form a 2-cycle", person.Name, receiver)
	}

	for _, forced := range plan.Whitelist {
		receiver, ok := solution.ReceiverOf(forced.Giver)
		require.True(t, ok)
		require.Equal(t, forced.Receiver, receiver, "whitelist pair %s not honored", forced)
	}

	for _, forbidden := range plan.Blacklist {
		receiver, ok := solution.ReceiverOf(forbidden.Giver)
		require.True(t, ok)
		require.NotEqual(t, forbidden.Receiver, receiver, "blacklist pair %s present", forbidden)
	}

	for _, set := range plan.BlacklistSets {
		for _, giver := range set {
			receiver, ok := solution.ReceiverOf(giver)
			require.True(t, ok)
			for _, member := range set {
				if member == giver {
					continue
				}
				require.NotEqual(t, member, receiver,
					"household members %q and %q are paired", giver, member)
			}
		}
	}
}

// RequireHistoryAdherence asserts that no active history pair appears in the
// solution. A record is active when ExcludePairs is true and its year falls
// within the window of most recent distinct years; window 0 keeps all.
func RequireHistoryAdherence(t *testing.T, plan *types.Plan, solution *types.Solution, window int) {
	t.Helper()

	years := make([]int, 0, len(plan.History))
	for _, rec := range plan.History {
		if rec.ExcludePairs {
			years = append(years, rec.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	active := make(map[int]struct{})
	for _, year := range years {
		if window > 0 && len(active) == window {
			if _, ok := active[year]; !ok {
				break
			}
		}
		active[year] = struct{}{}
	}

	for _, rec := range plan.History {
		if !rec.ExcludePairs {
			continue
		}
		if _, ok := active[rec.Year]; !ok {
			continue
		}
		for _, pair := range rec.Pairs {
			receiver, ok := solution.ReceiverOf(pair.Giver)
			require.True(t, ok)
			require.NotEqual(t, pair.Receiver, receiver,
				"history pair %s from %d repeated", pair, rec.Year)
		}
	}
}
