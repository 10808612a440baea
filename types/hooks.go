package types

import "context"

// Hooks defines callbacks for solve lifecycle events.
//
// All hooks are optional and invoked synchronously inside Solve; the engine
// is single-threaded per call, so hooks observe a consistent view of the
// solve. Hook errors are logged and reported to OnError but never fail the
// solve.
//
// Best practices for hook implementation:
//   - Complete quickly; a slow hook slows the solve
//   - Respect context cancellation
//   - Don't mutate the Solution or PlanStats passed in
type Hooks struct {
	// OnValidated is called after the plan passed validation and the
	// feasibility pre-pass, before search begins.
	OnValidated func(ctx context.Context, stats PlanStats) error

	// OnSolutionSampled is called once per distinct solution gathered
	// during sampling, before one is chosen.
	OnSolutionSampled func(ctx context.Context, solution *Solution) error

	// OnError is called when a solve fails for any reason.
	OnError func(ctx context.Context, err error) error
}
