// Package centrality computes vertex importance scores on a core.Graph.
//
// What:
//
//   - Five fixed measures: Degree, Closeness, Betweenness, Eigenvector,
//     Spread.
//   - Compute(g, measure) returns a total mapping vertex → score: every
//     vertex of g gets a value, with 0 for degenerate cases (isolated
//     vertices, edgeless graphs).
//   - Pure and deterministic: the graph is never mutated, no randomness,
//     identical inputs yield identical scores.
//
// Why:
//
//   - Vaccination selection ranks vertices by one of these measures;
//     the recursive strategy recomputes scores after every removal, so
//     Compute must be cheap to call repeatedly and side-effect free.
//
// Measures:
//
//   - Degree: number of incident edges.
//   - Closeness: reachable(v) / (n · Σ d(v,u)), BFS distances over the
//     component of v; 0 for isolated vertices.
//   - Betweenness: Brandes accumulation over unweighted shortest-path
//     DAGs; undirected totals halved.
//   - Eigenvector: principal eigenvector of the adjacency operator via
//     power iteration, L2-normalized, sign fixed deterministically.
//   - Spread: drop of the largest adjacency eigenvalue when the vertex
//     is removed, λmax(G) − λmax(G−v).
//
// Complexity:
//
//   - Degree: O(V). Closeness/Betweenness: O(V·(V+E)).
//   - Eigenvector: O(I·(V+E)) with I bounded by maxPowerIterations.
//   - Spread: O(V·I·(V+E)) — the expensive one, by construction.
//
// Errors:
//
//   - ErrNilGraph: nil graph pointer.
//   - ErrUnknownMeasure: measure name outside the fixed set.
package centrality
