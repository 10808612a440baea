// Package testing provides test utilities for the secret-santa library.
//
// This package offers helpers for building plans fluently and for asserting
// the structural invariants every valid solution must satisfy. It follows
// Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewPlan: Fluent plan builder for tests
//   - RequireValidSolution: Asserts bijection, derangement, anti-2-cycle,
//     and constraint adherence in one call
//
// Example usage:
//
//	import (
//	    "testing"
//	    santatest "github.com/shanecelis/secret-santa/testing"
//	)
//
//	func TestMySolve(t *testing.T) {
//	    plan := santatest.NewPlan("John", "Sean", "Shane", "Erin").
//	        Household("John", "Sean").
//	        Build()
//	    // solve and assert
//	    santatest.RequireValidSolution(t, plan, solution)
//	}
package testing
