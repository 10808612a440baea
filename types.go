package santa

import "github.com/shanecelis/secret-santa/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `santa`
// package, while still providing a convenient `santa.Plan`, `santa.Person`,
// etc. for users.
type (
	Person        = types.Person
	Pair          = types.Pair
	Plan          = types.Plan
	PlanStats     = types.PlanStats
	HistoryRecord = types.HistoryRecord
	Solution      = types.Solution
)

// Re-export interfaces from the types subpackage for convenience.
type (
	SearchStrategy   = types.SearchStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export typed errors from the types subpackage.
type (
	ValidationError  = types.ValidationError
	InfeasibleError  = types.InfeasibleError
	SearchLimitError = types.SearchLimitError
)
