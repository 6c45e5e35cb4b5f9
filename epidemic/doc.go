// Package epidemic runs one stochastic propagation trial over a contact
// graph: discrete synchronous rounds of infection spread and recovery.
//
// What:
//
//   - RunTrial(g, seeds, rng, opts...) evolves per-vertex health state
//     (Susceptible → Infected → Recovered) until no vertex is Infected
//     or the round limit is reached, and reports final counts plus
//     round-by-round Infected totals.
//   - Two models: SIR (Recovered is terminal) and SIS (recovery returns
//     the vertex to Susceptible, reinfection possible).
//   - Vaccination never appears here: vaccinated vertices are absent
//     from the reduced graph handed in, not marked.
//
// Round semantics (synchronous, both phases observe the prior round):
//
//  1. Spread: every Infected vertex draws one Bernoulli(pb) per
//     Susceptible neighbor; a vertex with several infected neighbors is
//     infected by the OR of the individual draws, not a combined
//     probability.
//  2. Recovery: every Infected vertex draws Bernoulli(pd); on success
//     it leaves the Infected state for the next round. A vertex still
//     transmits in the round it recovers — recovery takes effect next
//     round. (The opposite, recover-before-spread, is an equally
//     plausible reading; this package fixes the spread-first policy.)
//
// Determinism:
//
//   - All randomness comes from the supplied *rand.Rand, drawn in a
//     fixed order: spread draws vertex-major/neighbor-minor over the
//     sorted vertex enumeration, then the recovery pass in the same
//     vertex order. Equal inputs and RNG state reproduce the trial
//     exactly.
//
// Errors:
//
//   - ErrNilGraph, ErrNilRand, ErrNoSeeds: missing inputs.
//   - ErrSeedNotFound: a seed vertex absent from the reduced graph
//     (unknown, or vaccinated away) — never silently ignored.
//   - ErrUnknownModel, ErrBadProbability, ErrBadRounds: invalid options.
//
// Complexity: O(R·(V+E)) time, O(V+E) space for R executed rounds.
package epidemic
