// Package strategy provides built-in search strategy implementations.
//
// Search strategies determine the order in which the backtracking search
// attempts unassigned givers. The package includes two built-in strategies:
//
//   - Random: Uniformly random giver order (the default)
//   - MostConstrained: Fewest-legal-receivers-first ordering with random
//     tie-breaking
//
// # Strategy Selection Guide
//
// Random:
//   - Use when fairness across repeated runs matters most
//   - Every valid solution is reachable with equal treatment of givers
//   - Backtracks more on tightly constrained plans
//
// MostConstrained:
//   - Use for plans with dense exclusions (deep history, large households)
//   - Assigning the tightest givers first prunes dead branches early
//   - Still randomized among equally constrained givers, so variety and
//     seed determinism are preserved
//
// Custom strategies can be implemented by satisfying the
// types.SearchStrategy interface.
package strategy
