package types

// HistoryRecord is one prior year's assignment as remembered by the caller.
//
// When ExcludePairs is true the record's pairs become forbidden edges for the
// current solve (subject to the configured history window). When false the
// record is informational only and imposes no constraint.
type HistoryRecord struct {
	Year         int    `json:"year" yaml:"year"`
	ExcludePairs bool   `json:"exclude_pairs" yaml:"exclude_pairs"`
	Pairs        []Pair `json:"pairs" yaml:"pairs"`
}

// Plan is the fully-resolved input to a solve.
//
// The upstream configuration loader is responsible for producing a Plan; the
// engine treats it as immutable for the duration of the solve. Every name
// referenced by Whitelist, Blacklist, BlacklistSets, or History must exist in
// People, otherwise the plan is invalid.
type Plan struct {
	// People is the roster: the universe over which the permutation is sought.
	People []Person `json:"people" yaml:"people"`

	// Whitelist contains forced edges that must appear in the solution.
	Whitelist []Pair `json:"whitelist" yaml:"whitelist"`

	// Blacklist contains forbidden edges that must not appear in the solution.
	Blacklist []Pair `json:"blacklist" yaml:"blacklist"`

	// BlacklistSets models households: no two members of a set may be paired
	// as giver/receiver in either direction. Each set must name at least two
	// people.
	BlacklistSets [][]string `json:"blacklist_sets" yaml:"blacklist_sets"`

	// History holds prior years' assignments, newest or oldest first; the
	// engine sorts records by year descending before applying the window.
	History []HistoryRecord `json:"history" yaml:"history"`
}

// Lookup returns the person with the given name, if present.
func (p *Plan) Lookup(name string) (Person, bool) {
	for _, person := range p.People {
		if person.Name == name {
			return person, true
		}
	}

	return Person{}, false
}

// Names returns the roster names in Plan order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.People))
	for i, person := range p.People {
		names[i] = person.Name
	}

	return names
}

// PlanStats summarizes a validated plan. It is handed to the OnValidated
// hook and logged at the start of each solve.
type PlanStats struct {
	// People is the roster size.
	People int

	// ForcedEdges is the number of whitelist edges.
	ForcedEdges int

	// ForbiddenEdges is the number of distinct forbidden giver/receiver
	// edges after normalization, self-pairs excluded.
	ForbiddenEdges int

	// ActiveHistoryYears is the number of history records contributing
	// exclusions under the configured window.
	ActiveHistoryYears int
}
