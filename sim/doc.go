// Package sim orchestrates propagation trials: it applies the
// vaccination plan, enumerates seed configurations, derives an
// independent random sub-stream per trial, and collects results in a
// canonical order.
//
// What:
//
//   - Run(ctx, g, plan, cfg) induces the reduced graph once, then runs
//     cfg.Trials trials per seed configuration.
//   - Seed configurations: cfg.SeedVertices when given, otherwise every
//     retained vertex (sorted) as its own singleton patient-zero set.
//   - Every (configuration, trial) pair gets its own rand.Rand seeded by
//     a splitmix64 mix of (cfg.Seed, configuration index, trial index),
//     so results are reproducible and independent of execution order.
//   - cfg.Workers > 1 runs trials on a goroutine pool; results land in a
//     position-indexed slice, so parallelism never changes the output,
//     only the wall clock. The first failure cancels remaining work —
//     a malformed configuration would fail every trial identically.
//
// Ordering contract:
//
//   - Results are ordered by seed configuration (enumeration order),
//     then by trial index ascending. Downstream CSV writing depends on
//     this being stable.
//
// Errors:
//
//   - ErrNilGraph, ErrEmptyGraph, ErrBadTrials, ErrBadWorkers here;
//     epidemic sentinels (ErrSeedNotFound, ErrBadProbability,
//     ErrBadRounds, ErrUnknownModel) pass through from eager validation.
//     Everything is checked before the first trial executes.
package sim
