// Package vaccine selects the vertices to remove from a contact graph
// before any propagation trial runs.
//
// What:
//
//   - Select(g, measure, strategy, k) returns k distinct vertices of g,
//     ranked by a centrality measure under one of two strategies.
//   - Batch: one centrality computation on the full graph, take the top k.
//   - Recursive: k rounds, each recomputing centrality on the
//     already-reduced working copy and removing the single best vertex —
//     more expensive (k centrality recomputations), but it captures
//     cascading shifts: removing a hub changes who the next hub is.
//   - CountForPercent converts a percent-to-vaccinate into a vertex
//     count, clamped so at least one vertex always survives.
//
// Determinism:
//
//   - Ties are broken by vertex ID ascending, always. Two calls with the
//     same inputs return the same vertices in the same order.
//
// Side effects:
//
//   - None on the caller's graph: the recursive strategy works on a
//     Clone(), batch never mutates at all.
//
// Errors:
//
//   - ErrNilGraph: nil graph pointer.
//   - ErrBadCount: k outside [0, |V|].
//   - ErrUnknownStrategy: strategy outside {batch, recursive}.
//   - centrality.ErrUnknownMeasure passes through unchanged.
package vaccine
