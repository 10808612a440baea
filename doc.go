// Package santa provides a constraint-satisfying assignment engine for
// secret santa gift exchanges.
//
// Given a roster of people and a set of constraints — forced pairs, forbidden
// pairs, household exclusions, and prior-year history — the engine searches
// for an assignment mapping each person to exactly one recipient such that:
//
//  1. No one is their own secret santa.
//  2. Each person is a secret santa for only one other person.
//  3. Each person is a recipient for only one other person.
//  4. If X gives to Y, then Y does not give to X (no 2-cycles; longer
//     cycles are fine).
//  5. Members of the same household are never paired in either direction.
//  6. Pairs recorded in recent years are not repeated, within a configured
//     lookback window.
//
// The engine is a pure library: reading configuration files, rendering
// output, and delivering notifications are left to the caller.
//
// # Quick Start
//
//	cfg := santa.DefaultConfig()
//	solver, err := santa.NewSolver(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan := &santa.Plan{
//	    People: []santa.Person{
//	        {Name: "John", Email: "john@email.com"},
//	        {Name: "Sean", Email: "sean@email.com"},
//	        {Name: "Shane", Email: "shane@email.com"},
//	        {Name: "Erin", Email: "erin@email.com"},
//	    },
//	    BlacklistSets: [][]string{{"John", "Sean"}},
//	}
//
//	solution, err := solver.Solve(context.Background(), plan)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pair := range solution.Pairs() {
//	    fmt.Println(pair)
//	}
//
// # Failure Modes
//
// Solve distinguishes three terminal failures, checkable with errors.Is and
// errors.As:
//
//   - ErrInvalidPlan (*ValidationError): the plan is internally
//     inconsistent; reported before any search effort is spent.
//   - ErrInfeasible (*InfeasibleError): no assignment satisfies the active
//     constraints. When one over-constrained person is responsible, the
//     error names them and the dominant constraint category.
//   - ErrSearchLimit (*SearchLimitError): the node budget ran out without a
//     proof either way; retry with a larger Config.MaxNodes.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    "github.com/shanecelis/secret-santa"
//	    "github.com/shanecelis/secret-santa/strategy"
//	)
//
//	hooks := &santa.Hooks{
//	    OnSolutionSampled: func(ctx context.Context, s *santa.Solution) error {
//	        log.Printf("candidate:\n%s", s)
//	        return nil
//	    },
//	}
//
//	solver, err := santa.NewSolver(&cfg,
//	    santa.WithStrategy(strategy.NewMostConstrained()),
//	    santa.WithHooks(hooks),
//	)
//
// Fixing Config.Seed makes repeated solves over the same plan reproducible;
// leaving it zero draws a fresh seed per solve for variety.
package santa
