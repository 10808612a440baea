package santa

import "github.com/shanecelis/secret-santa/types"

// Sentinel errors returned by the Solver.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPlanRequired is returned when Solve is called with a nil plan.
	ErrPlanRequired = types.ErrPlanRequired

	// ErrStrategyRequired is returned when a nil search strategy is supplied.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrInvalidPlan is returned when the plan fails validation; the
	// returned error carries a *ValidationError with the conflict detail.
	ErrInvalidPlan = types.ErrInvalidPlan

	// ErrInfeasible is returned when the search proves that no assignment
	// satisfies the active constraints.
	ErrInfeasible = types.ErrInfeasible

	// ErrSearchLimit is returned when the node budget is exhausted without
	// a proof of infeasibility.
	ErrSearchLimit = types.ErrSearchLimit
)
