// Package episim simulates epidemic spread over a fixed contact graph
// under configurable vaccination policies, producing per-trial outcome
// statistics.
//
// 🦠 What is episim?
//
//	A deterministic, seedable simulation engine built from small packages:
//		• core/       — undirected contact graph, induced-subgraph derivation
//		• centrality/ — degree, closeness, betweenness, eigenvector, spread
//		• vaccine/    — batch & recursive vaccination selection
//		• epidemic/   — SIR/SIS propagation, one stochastic trial at a time
//		• sim/        — trial orchestration, per-trial RNG sub-streams, workers
//		• graphio/    — edge-list loading, CSV result writing
//		• config/     — YAML scenarios with eager validation
//		• cmd/episim  — the CLI wiring it all together
//
// ✨ Guarantees
//
//   - Reproducible: identical graph, configuration and top-level seed
//     give byte-identical output, sequentially or on a worker pool.
//   - Immutable inputs: vaccination derives a fresh reduced graph, the
//     loaded graph is never mutated.
//   - Eager validation: every configuration error aborts before the
//     first trial; no partial CSV is ever valid output.
//
// Quick ASCII example, a 4-cycle with patient zero at v0 and pb = 1:
//
//	    v0───v1          round 1: v1, v3 infected
//	    │     │          round 2: v2 infected
//	    v3───v2          round 3: nothing left to infect
//
// Start with sim.Run for the full pipeline, or epidemic.RunTrial for a
// single trial.
package episim
