package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// A Solver may be shared across goroutines, so all methods must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	SolveMetrics
	SearchMetrics
}

// Solve outcomes recorded by RecordSolveDuration.
const (
	OutcomeSolved      = "solved"
	OutcomeInvalidPlan = "invalid_plan"
	OutcomeInfeasible  = "infeasible"
	OutcomeSearchLimit = "search_limit"
	OutcomeCanceled    = "canceled"
)

// SolveMetrics defines metrics for solve-level operations.
type SolveMetrics interface {
	// RecordSolveDuration records the wall time of one Solve call.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - outcome: One of the Outcome* constants
	RecordSolveDuration(duration float64, outcome string)

	// RecordValidationFailure records a plan rejected before search.
	//
	// Parameters:
	//   - kind: The ValidationError conflict kind
	RecordValidationFailure(kind string)

	// RecordRulesetCacheLookup records a compiled-ruleset cache lookup.
	RecordRulesetCacheLookup(hit bool)
}

// SearchMetrics defines metrics for the backtracking search.
type SearchMetrics interface {
	// RecordSearchNodes records the number of search nodes visited by one
	// Solve call, summed across samples.
	RecordSearchNodes(nodes int64)

	// RecordBacktracks records the number of backtrack steps taken by one
	// Solve call, summed across samples.
	RecordBacktracks(count int64)

	// RecordSolutionsSampled records how many distinct solutions were
	// gathered before one was chosen.
	RecordSolutionsSampled(count int)
}
