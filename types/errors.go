package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the secret-santa library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Solver errors - Public API errors returned by Solver.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPlanRequired is returned when Solve is called with a nil plan.
	ErrPlanRequired = errors.New("plan is required")

	// ErrStrategyRequired is returned when a nil search strategy is supplied.
	ErrStrategyRequired = errors.New("search strategy is required")

	// ErrInvalidPlan is returned when the plan fails validation. Errors
	// wrapping it carry the specific conflict as a *ValidationError.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrInfeasible is returned when the search proves that no assignment
	// satisfies the active constraints.
	ErrInfeasible = errors.New("no feasible assignment")

	// ErrSearchLimit is returned when the node budget is exhausted before
	// the search either found a solution or proved infeasibility.
	ErrSearchLimit = errors.New("search budget exceeded")
)

// Conflict kinds reported by ValidationError.
const (
	// ConflictEmptyRoster: the plan names no people.
	ConflictEmptyRoster = "empty_roster"

	// ConflictDuplicatePerson: two roster entries share a name.
	ConflictDuplicatePerson = "duplicate_person"

	// ConflictUnknownPerson: a constraint references a name missing from
	// the roster.
	ConflictUnknownPerson = "unknown_person"

	// ConflictSelfPair: a whitelist entry forces someone to give to
	// themselves.
	ConflictSelfPair = "self_pair"

	// ConflictWhitelistBlacklist: the same edge is both forced and
	// forbidden.
	ConflictWhitelistBlacklist = "whitelist_blacklist_overlap"

	// ConflictDuplicateGiver: one person is whitelisted as giver more than
	// once.
	ConflictDuplicateGiver = "duplicate_whitelist_giver"

	// ConflictDuplicateReceiver: one person is whitelisted as receiver more
	// than once.
	ConflictDuplicateReceiver = "duplicate_whitelist_receiver"

	// ConflictWhitelistCycle: two whitelist entries force a 2-cycle.
	ConflictWhitelistCycle = "whitelist_cycle"

	// ConflictSmallSet: a blacklist set names fewer than two people.
	ConflictSmallSet = "small_blacklist_set"
)

// ValidationError reports a plan inconsistency detected before any search
// effort is spent. It wraps ErrInvalidPlan for errors.Is checks.
type ValidationError struct {
	// Kind is one of the Conflict* constants.
	Kind string

	// Person names the offending participant when the conflict concerns a
	// single person.
	Person string

	// Pair is the offending edge when the conflict concerns one.
	Pair Pair

	// Detail is a human-readable description of the conflict.
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid plan (%s): %s", e.Kind, e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidPlan }

// Constraint categories reported by InfeasibleError when the dominant cause
// of over-constraint is determinable.
const (
	CategoryBlacklist = "blacklist"
	CategoryHousehold = "household"
	CategoryHistory   = "history"
	CategoryWhitelist = "whitelist"
	CategoryCombined  = "combined"
)

// InfeasibleError reports that no assignment satisfying the active
// constraints exists. It wraps ErrInfeasible for errors.Is checks.
//
// When the infeasibility is attributable to a single over-constrained person
// (someone with no legal receiver, or no legal giver), Person and Category
// identify them and the constraint category that dominates their exclusions.
// For infeasibility only provable by exhaustive search both fields are empty.
type InfeasibleError struct {
	// Person is the over-constrained participant, if determinable.
	Person string

	// Category is one of the Category* constants, if determinable.
	Category string

	// Detail is a human-readable description.
	Detail string
}

func (e *InfeasibleError) Error() string {
	if e.Person != "" {
		return fmt.Sprintf("no feasible assignment: %s (person %q, category %s)", e.Detail, e.Person, e.Category)
	}

	return "no feasible assignment: " + e.Detail
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// SearchLimitError reports that the search node budget was exhausted without
// finding a solution or proving infeasibility. It wraps ErrSearchLimit.
//
// This is distinct from InfeasibleError: the caller may retry the same plan
// with a larger budget.
type SearchLimitError struct {
	// Nodes is the budget that was exhausted.
	Nodes int64
}

func (e *SearchLimitError) Error() string {
	return fmt.Sprintf("search budget of %d nodes exceeded without proof of infeasibility", e.Nodes)
}

func (e *SearchLimitError) Unwrap() error { return ErrSearchLimit }
