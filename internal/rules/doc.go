// Package rules compiles a Plan into an index-based Ruleset: a normalized
// forbidden relation, the forced edges, and the single Allowed check used at
// every branch point of the search.
//
// Compilation is a pure function of the plan and the history window; it
// performs all validation described by the constraint model (name
// resolution, whitelist consistency, whitelist/blacklist overlap) before any
// search effort is spent.
package rules
