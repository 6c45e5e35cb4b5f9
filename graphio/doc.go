// Package graphio moves contact graphs and simulation results across
// the process boundary: an edge-list reader on the way in, a CSV result
// writer on the way out.
//
// Edge-list format (whitespace-separated, one record per line):
//
//	# comment lines and blank lines are skipped
//	a b        → undirected edge {a,b}; endpoints are declared implicitly
//	c          → isolated vertex declaration
//
// Consistency is checked while loading: a repeated isolated-vertex
// declaration is ErrDuplicateVertex, a record with more than two fields
// is ErrBadLine, a self-loop surfaces core.ErrSelfLoop. All errors
// carry the offending line number.
//
// CSV output is one row per (seed configuration, trial): run metadata,
// final per-state counts, rounds executed, and one infected_NNN column
// per round (zero-padded, index 0 = initial state). Trials that stopped
// early repeat their terminal count in the remaining round columns, so
// every row has the same width. The column set and order are a stable
// contract for downstream analysis.
package graphio
