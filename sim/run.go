package sim

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/epidemic"
)

// trialLogEvery is the progress-logging cadence within a configuration.
const trialLogEvery = 25

// Run executes the full trial matrix on g with the vaccination plan
// applied, returning one Result per (seed configuration, trial) pair in
// canonical order. The plan vertices are absent from every trial's
// graph; g itself is never mutated.
func Run(ctx context.Context, g *core.Graph, plan []string, cfg Config, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := runOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	reduced := g.InduceSlice(plan)
	if reduced.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	// eager seed check: a vaccinated or unknown patient zero fails the
	// whole run before any trial starts
	for _, s := range cfg.SeedVertices {
		if !reduced.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", epidemic.ErrSeedNotFound, s)
		}
	}

	configs := seedConfigs(reduced, cfg)
	trialOpts := []epidemic.Option{
		epidemic.WithModel(cfg.Model),
		epidemic.WithSpreadProb(cfg.SpreadProb),
		epidemic.WithRecoverProb(cfg.RecoverProb),
		epidemic.WithMaxRounds(cfg.Rounds),
	}

	runID := deriveRunID(cfg, plan)
	o.logger.Info("starting trials",
		zap.String("run_id", runID),
		zap.Int("seed_configs", len(configs)),
		zap.Int("trials_each", cfg.Trials),
		zap.Int("workers", cfg.Workers),
	)

	results := make([]Result, len(configs)*cfg.Trials)
	if err := dispatch(ctx, reduced, configs, cfg, trialOpts, runID, results, &o); err != nil {
		return nil, err
	}
	o.logger.Info("trials done", zap.String("run_id", runID), zap.Int("rows", len(results)))

	return results, nil
}

// validate performs the eager parameter checks shared by every trial.
func validate(cfg Config) error {
	if cfg.Trials <= 0 {
		return fmt.Errorf("%w: %d", ErrBadTrials, cfg.Trials)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	if cfg.Rounds <= 0 {
		return fmt.Errorf("%w: %d", epidemic.ErrBadRounds, cfg.Rounds)
	}
	if cfg.SpreadProb < 0 || cfg.SpreadProb > 1 {
		return fmt.Errorf("%w: pb=%v", epidemic.ErrBadProbability, cfg.SpreadProb)
	}
	if cfg.RecoverProb < 0 || cfg.RecoverProb > 1 {
		return fmt.Errorf("%w: pd=%v", epidemic.ErrBadProbability, cfg.RecoverProb)
	}
	if _, err := epidemic.ParseModel(string(cfg.Model)); err != nil {
		return err
	}

	return nil
}

// seedConfigs enumerates the seed-vertex sets: the explicit set when
// given, otherwise one singleton per retained vertex in sorted order.
func seedConfigs(reduced *core.Graph, cfg Config) [][]string {
	if len(cfg.SeedVertices) > 0 {
		return [][]string{cfg.SeedVertices}
	}
	ids := reduced.Vertices()
	configs := make([][]string, len(ids))
	for i, id := range ids {
		configs[i] = []string{id}
	}

	return configs
}

// job is one trial to execute: its position in the canonical order and
// its pre-derived RNG seed.
type job struct {
	pos     int
	cfgIx   int
	trial   int
	seeds   []string
	subSeed int64
}

// dispatch fans jobs out to cfg.Workers goroutines and writes results
// into their canonical positions. The first error cancels the rest.
func dispatch(ctx context.Context, reduced *core.Graph, configs [][]string, cfg Config,
	trialOpts []epidemic.Option, runID string, results []Result, o *runOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				rng := rand.New(rand.NewSource(j.subSeed))
				res, err := epidemic.RunTrial(reduced, j.seeds, rng, trialOpts...)
				if err != nil {
					fail(fmt.Errorf("sim: config %d trial %d: %w", j.cfgIx, j.trial, err))
					return
				}
				results[j.pos] = Result{
					TrialResult: *res,
					RunID:       runID,
					ConfigIndex: j.cfgIx,
					Trial:       j.trial,
				}
			}
		}()
	}

produce:
	for cfgIx, seeds := range configs {
		o.logger.Info("seed configuration", zap.Int("index", cfgIx), zap.Strings("seeds", seeds))
		for trial := 0; trial < cfg.Trials; trial++ {
			if trial%trialLogEvery == 0 {
				o.logger.Debug("trial progress", zap.Int("config", cfgIx), zap.Int("trial", trial))
			}
			j := job{
				pos:     cfgIx*cfg.Trials + trial,
				cfgIx:   cfgIx,
				trial:   trial,
				seeds:   seeds,
				subSeed: subSeed(cfg.Seed, cfgIx, trial),
			}
			select {
			case jobs <- j:
			case <-ctx.Done():
				break produce
			}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	return ctx.Err()
}

// deriveRunID builds a name-based (SHA1) UUID over the run parameters.
// Identical (plan, config) pairs therefore stamp identical IDs, which
// keeps full runs byte-reproducible while still making rows from
// different configurations distinguishable in concatenated CSVs.
func deriveRunID(cfg Config, plan []string) string {
	// Workers is deliberately excluded: parallelism must never change
	// observable output.
	ident := fmt.Sprintf("episim|seed=%d|trials=%d|rounds=%d|model=%s|pb=%g|pd=%g|plan=%s|seeds=%s",
		cfg.Seed, cfg.Trials, cfg.Rounds, cfg.Model, cfg.SpreadProb, cfg.RecoverProb,
		strings.Join(plan, ","), strings.Join(cfg.SeedVertices, ","))

	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(ident)).String()
}

// splitmix64 constants.
const (
	smGamma = 0x9E3779B97F4A7C15
	smMixA  = 0xBF58476D1CE4E5B9
	smMixB  = 0x94D049BB133111EB
)

// subSeed derives the RNG seed of one trial from the top-level seed and
// the trial's coordinates. The mix keeps sub-streams statistically
// independent while staying a pure function, so parallel execution and
// re-ordering cannot change any trial's outcome.
func subSeed(top int64, cfgIx, trial int) int64 {
	x := uint64(top)
	x ^= (uint64(cfgIx) + 1) * smGamma
	x ^= (uint64(trial) + 1) * smMixA
	// splitmix64 finalizer
	x ^= x >> 30
	x *= smMixA
	x ^= x >> 27
	x *= smMixB
	x ^= x >> 31

	return int64(x)
}
