package rules

import (
	"fmt"
	"sort"

	"github.com/shanecelis/secret-santa/types"
)

// Source is a bitmask recording which constraint categories forbid an edge.
// Tracking the source per edge lets infeasibility reports name the dominant
// category instead of a generic "forbidden".
type Source uint8

const (
	// SourceSelf marks the diagonal: no one gives to themselves.
	SourceSelf Source = 1 << iota

	// SourceBlacklist marks explicit blacklist edges.
	SourceBlacklist

	// SourceHousehold marks edges forbidden by a blacklist set.
	SourceHousehold

	// SourceHistory marks edges forbidden by an active history record.
	SourceHistory
)

// Category maps the dominant bit of a source mask to the public constraint
// category named in InfeasibleError.
func (s Source) Category() string {
	switch {
	case s == 0:
		return ""
	case s&SourceBlacklist != 0 && s&(SourceHousehold|SourceHistory) != 0:
		return types.CategoryCombined
	case s&SourceHousehold != 0 && s&SourceHistory != 0:
		return types.CategoryCombined
	case s&SourceBlacklist != 0:
		return types.CategoryBlacklist
	case s&SourceHousehold != 0:
		return types.CategoryHousehold
	case s&SourceHistory != 0:
		return types.CategoryHistory
	default:
		return ""
	}
}

// Ruleset is the compiled, index-based constraint model for one roster.
//
// People are addressed by their index in the roster; names appear only at
// the boundary. A Ruleset is immutable after Compile and safe for concurrent
// use by multiple searches.
type Ruleset struct {
	names []string
	index map[string]int

	// forced[g] is the receiver index forced for giver g, or -1.
	forced []int

	// forcedBy[r] is the giver index forced onto receiver r, or -1.
	forcedBy []int

	// forbidden[g*n+r] is the source mask forbidding edge g->r, 0 if legal.
	forbidden []Source

	stats types.PlanStats
}

// Compile validates the plan and produces its Ruleset.
//
// historyWindow selects how many most recent exclude-pairs years contribute
// forbidden edges; 0 means every supplied record applies. Records are sorted
// by year descending before windowing.
//
// Returns:
//   - *Ruleset: Compiled constraint model
//   - error: *types.ValidationError describing the first conflict found
func Compile(plan *types.Plan, historyWindow int) (*Ruleset, error) {
	n := len(plan.People)
	if n == 0 {
		return nil, &types.ValidationError{
			Kind:   types.ConflictEmptyRoster,
			Detail: "plan names no people",
		}
	}

	rs := &Ruleset{
		names:     make([]string, n),
		index:     make(map[string]int, n),
		forced:    make([]int, n),
		forcedBy:  make([]int, n),
		forbidden: make([]Source, n*n),
	}

	for i, person := range plan.People {
		if _, dup := rs.index[person.Name]; dup {
			return nil, &types.ValidationError{
				Kind:   types.ConflictDuplicatePerson,
				Person: person.Name,
				Detail: fmt.Sprintf("person %q appears in the roster more than once", person.Name),
			}
		}
		rs.names[i] = person.Name
		rs.index[person.Name] = i
	}
	for i := range n {
		rs.forced[i] = -1
		rs.forcedBy[i] = -1
		rs.forbidden[i*n+i] |= SourceSelf
	}

	if err := rs.applyBlacklist(plan.Blacklist); err != nil {
		return nil, err
	}
	if err := rs.applySets(plan.BlacklistSets); err != nil {
		return nil, err
	}
	active, err := rs.applyHistory(plan.History, historyWindow)
	if err != nil {
		return nil, err
	}
	if err := rs.applyWhitelist(plan.Whitelist, plan.Blacklist); err != nil {
		return nil, err
	}

	rs.stats = types.PlanStats{
		People:             n,
		ForcedEdges:        len(plan.Whitelist),
		ForbiddenEdges:     rs.countForbidden(),
		ActiveHistoryYears: active,
	}

	return rs, nil
}

func (rs *Ruleset) applyBlacklist(blacklist []types.Pair) error {
	for _, pair := range blacklist {
		g, r, err := rs.resolve(pair, "blacklist")
		if err != nil {
			return err
		}
		rs.forbidden[g*len(rs.names)+r] |= SourceBlacklist
	}

	return nil
}

func (rs *Ruleset) applySets(sets [][]string) error {
	n := len(rs.names)
	for _, set := range sets {
		if len(set) < 2 {
			return &types.ValidationError{
				Kind:   types.ConflictSmallSet,
				Detail: fmt.Sprintf("blacklist set %v must name at least two people", set),
			}
		}
		members := make([]int, len(set))
		for i, name := range set {
			idx, ok := rs.index[name]
			if !ok {
				return unknownPerson(name, "blacklist set")
			}
			members[i] = idx
		}
		// Forbid every ordered pair within the set, both directions.
		for _, g := range members {
			for _, r := range members {
				if g == r {
					continue
				}
				rs.forbidden[g*n+r] |= SourceHousehold
			}
		}
	}

	return nil
}

// applyHistory merges active history pairs into the forbidden relation and
// returns how many records contributed.
func (rs *Ruleset) applyHistory(history []types.HistoryRecord, window int) (int, error) {
	records := make([]types.HistoryRecord, 0, len(history))
	for _, rec := range history {
		if rec.ExcludePairs {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Year > records[j].Year })

	// A window of N keeps the N most recent distinct years.
	if window > 0 {
		years := make(map[int]struct{})
		kept := records[:0]
		for _, rec := range records {
			if _, seen := years[rec.Year]; !seen {
				if len(years) == window {
					break
				}
				years[rec.Year] = struct{}{}
			}
			kept = append(kept, rec)
		}
		records = kept
	}

	n := len(rs.names)
	for _, rec := range records {
		for _, pair := range rec.Pairs {
			g, r, err := rs.resolve(pair, fmt.Sprintf("history %d", rec.Year))
			if err != nil {
				return 0, err
			}
			rs.forbidden[g*n+r] |= SourceHistory
		}
	}

	return len(records), nil
}

func (rs *Ruleset) applyWhitelist(whitelist, blacklist []types.Pair) error {
	for _, pair := range whitelist {
		g, r, err := rs.resolve(pair, "whitelist")
		if err != nil {
			return err
		}
		if g == r {
			return &types.ValidationError{
				Kind:   types.ConflictSelfPair,
				Person: pair.Giver,
				Pair:   pair,
				Detail: fmt.Sprintf("whitelist entry %s forces a self-pair", pair),
			}
		}
		for _, black := range blacklist {
			if black == pair {
				return &types.ValidationError{
					Kind:   types.ConflictWhitelistBlacklist,
					Pair:   pair,
					Detail: fmt.Sprintf("pair %s appears in both whitelist and blacklist", pair),
				}
			}
		}
		if rs.forced[g] != -1 {
			return &types.ValidationError{
				Kind:   types.ConflictDuplicateGiver,
				Person: pair.Giver,
				Pair:   pair,
				Detail: fmt.Sprintf("person %q is whitelisted as giver more than once", pair.Giver),
			}
		}
		if rs.forcedBy[r] != -1 {
			return &types.ValidationError{
				Kind:   types.ConflictDuplicateReceiver,
				Person: pair.Receiver,
				Pair:   pair,
				Detail: fmt.Sprintf("person %q is whitelisted as receiver more than once", pair.Receiver),
			}
		}
		// Rule 4 holds even for forced edges: a forced r->g plus this g->r
		// would be a 2-cycle.
		if rs.forced[r] == g {
			return &types.ValidationError{
				Kind:   types.ConflictWhitelistCycle,
				Pair:   pair,
				Detail: fmt.Sprintf("whitelist entries %s and %s form a 2-cycle", pair, pair.Reverse()),
			}
		}
		rs.forced[g] = r
		rs.forcedBy[r] = g
	}

	return nil
}

func (rs *Ruleset) resolve(pair types.Pair, context string) (int, int, error) {
	g, ok := rs.index[pair.Giver]
	if !ok {
		return 0, 0, unknownPerson(pair.Giver, context)
	}
	r, ok := rs.index[pair.Receiver]
	if !ok {
		return 0, 0, unknownPerson(pair.Receiver, context)
	}

	return g, r, nil
}

func unknownPerson(name, context string) *types.ValidationError {
	return &types.ValidationError{
		Kind:   types.ConflictUnknownPerson,
		Person: name,
		Detail: fmt.Sprintf("name %q referenced by %s is not in the roster", name, context),
	}
}

func (rs *Ruleset) countForbidden() int {
	count := 0
	for i, src := range rs.forbidden {
		n := len(rs.names)
		if src != 0 && i/n != i%n {
			count++
		}
	}

	return count
}

// Len returns the roster size.
func (rs *Ruleset) Len() int { return len(rs.names) }

// Name returns the roster name at index i.
func (rs *Ruleset) Name(i int) string { return rs.names[i] }

// Stats returns the summary handed to the OnValidated hook.
func (rs *Ruleset) Stats() types.PlanStats { return rs.stats }

// Forced returns the receiver forced for giver g, or -1.
func (rs *Ruleset) Forced(g int) int { return rs.forced[g] }

// ForcedBy returns the giver forced onto receiver r, or -1.
func (rs *Ruleset) ForcedBy(r int) int { return rs.forcedBy[r] }

// Allowed reports whether edge g->r is legal given the partial assignment.
//
// assign[i] is the receiver currently assigned to giver i, or -1. The check
// covers the forbidden relation (self, blacklist, household, history), the
// forced edges, and the incremental anti-2-cycle rule: if r already gives to
// g, adding g->r would close a 2-cycle.
func (rs *Ruleset) Allowed(g, r int, assign []int) bool {
	n := len(rs.names)
	if rs.forbidden[g*n+r] != 0 {
		return false
	}
	if forced := rs.forced[g]; forced != -1 && forced != r {
		return false
	}
	if forced := rs.forcedBy[r]; forced != -1 && forced != g {
		return false
	}
	if assign[r] == g {
		return false
	}
	// A forced edge r->g makes the 2-cycle inevitable even before r is
	// assigned.
	if rs.forced[r] == g {
		return false
	}

	return true
}

// ReceiverDegree returns how many receivers are legal for giver g ignoring
// any partial assignment. A degree of zero proves infeasibility.
func (rs *Ruleset) ReceiverDegree(g int) int {
	n := len(rs.names)
	degree := 0
	for r := range n {
		if rs.forbidden[g*n+r] == 0 {
			degree++
		}
	}

	return degree
}

// CheckFeasible runs the cheap infeasibility proofs that can name an
// over-constrained person: any giver with no legal receiver, any receiver
// with no legal giver, and any forced edge that lands on a forbidden one.
//
// Returns:
//   - error: *types.InfeasibleError, nil when no cheap proof applies
func (rs *Ruleset) CheckFeasible() error {
	n := len(rs.names)

	for g := range n {
		if forced := rs.forced[g]; forced != -1 {
			if src := rs.forbidden[g*n+forced]; src != 0 {
				return &types.InfeasibleError{
					Person:   rs.names[g],
					Category: src.Category(),
					Detail:   fmt.Sprintf("whitelist forces %s but the edge is forbidden", types.Pair{Giver: rs.names[g], Receiver: rs.names[forced]}),
				}
			}
			continue
		}
		var union Source
		legal := 0
		for r := range n {
			src := rs.forbidden[g*n+r]
			if src == 0 {
				legal++
			} else if r != g {
				union |= src
			}
		}
		if legal == 0 {
			return &types.InfeasibleError{
				Person:   rs.names[g],
				Category: union.Category(),
				Detail:   fmt.Sprintf("person %q has no legal receiver", rs.names[g]),
			}
		}
	}

	for r := range n {
		if rs.forcedBy[r] != -1 {
			continue
		}
		var union Source
		legal := 0
		for g := range n {
			src := rs.forbidden[g*n+r]
			if src == 0 {
				legal++
			} else if r != g {
				union |= src
			}
		}
		if legal == 0 {
			return &types.InfeasibleError{
				Person:   rs.names[r],
				Category: union.Category(),
				Detail:   fmt.Sprintf("person %q has no legal giver", rs.names[r]),
			}
		}
	}

	return nil
}
