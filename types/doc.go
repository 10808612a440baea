// Package types provides core type definitions and interfaces for the
// secret-santa library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main santa package and its internal
// implementations.
//
// Key types:
//   - Person: A participant in the exchange
//   - Pair: A giver/receiver edge, either in a solution or in a constraint
//   - Plan: The fully-resolved engine input
//   - Solution: A complete assignment (derangement with no 2-cycles)
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - SearchStrategy: Pluggable giver-ordering heuristic
package types
