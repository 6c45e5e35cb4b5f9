package sim

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/episim/epidemic"
)

// Sentinel errors for orchestration.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("sim: graph is nil")

	// ErrEmptyGraph is returned when vaccination removed every vertex.
	ErrEmptyGraph = errors.New("sim: reduced graph has no vertices")

	// ErrBadTrials is returned for a non-positive trial count.
	ErrBadTrials = errors.New("sim: trial count must be positive")

	// ErrBadWorkers is returned for a non-positive worker count.
	ErrBadWorkers = errors.New("sim: worker count must be positive")
)

// DefaultSeed is the top-level RNG seed used when none is configured.
const DefaultSeed = 42

// DefaultTrials is the per-configuration trial count.
const DefaultTrials = 100

// Config carries every parameter of one simulation run. Validation is
// eager: Run rejects a bad Config before any trial executes.
type Config struct {
	// Trials is the number of independent trials per seed configuration.
	Trials int

	// Rounds caps each trial's length.
	Rounds int

	// Model, SpreadProb (pb) and RecoverProb (pd) parameterize every trial.
	Model       epidemic.Model
	SpreadProb  float64
	RecoverProb float64

	// Seed is the top-level RNG seed; sub-streams derive from it.
	Seed int64

	// SeedVertices, when non-empty, is the explicit patient-zero set
	// shared by all trials. When empty, every non-vaccinated vertex runs
	// as its own singleton seed configuration.
	SeedVertices []string

	// Workers sizes the trial worker pool; 1 means sequential.
	Workers int
}

// DefaultConfig returns the stock run parameters.
func DefaultConfig() Config {
	return Config{
		Trials:      DefaultTrials,
		Rounds:      epidemic.DefaultMaxRounds,
		Model:       epidemic.SIR,
		SpreadProb:  epidemic.DefaultSpreadProb,
		RecoverProb: epidemic.DefaultRecoverProb,
		Seed:        DefaultSeed,
		Workers:     1,
	}
}

// Result is one output row: the trial outcome plus its position in the
// enumeration and the identity of the run that produced it.
type Result struct {
	epidemic.TrialResult

	// RunID tags every row of one Run call: a name-based UUID derived
	// from the run parameters, identical across reruns of the same setup.
	RunID string

	// ConfigIndex is the seed-configuration index in enumeration order.
	ConfigIndex int

	// Trial is the trial index within the configuration, ascending.
	Trial int
}

// Option configures Run behavior.
type Option func(*runOptions)

type runOptions struct {
	logger *zap.Logger
}

// WithLogger attaches a logger for progress reporting; the default is
// zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
