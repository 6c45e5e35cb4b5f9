package epidemic

import (
	"errors"
	"fmt"
)

// Sentinel errors for trial execution.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("epidemic: graph is nil")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("epidemic: random source is nil")

	// ErrNoSeeds is returned when the seed set is empty.
	ErrNoSeeds = errors.New("epidemic: no seed vertices")

	// ErrSeedNotFound is returned when a seed vertex is absent from the
	// reduced graph — either unknown or removed by vaccination.
	ErrSeedNotFound = errors.New("epidemic: seed vertex not in graph")

	// ErrUnknownModel is returned for a model outside the fixed set.
	ErrUnknownModel = errors.New("epidemic: unknown propagation model")

	// ErrBadProbability is returned for a probability outside [0,1].
	ErrBadProbability = errors.New("epidemic: probability out of [0,1]")

	// ErrBadRounds is returned for a non-positive round limit.
	ErrBadRounds = errors.New("epidemic: round limit must be positive")
)

// State is the health state of one vertex within one trial.
type State uint8

// Health states. Susceptible is the zero value: every non-seed vertex
// starts there at the top of each trial.
const (
	Susceptible State = iota
	Infected
	Recovered
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Model selects the recovery rule. The set is closed.
type Model string

// Supported models.
const (
	// SIR: a recovered vertex is terminal, no reinfection.
	SIR Model = "sir"

	// SIS: recovery returns the vertex to Susceptible.
	SIS Model = "sis"
)

// ParseModel maps a configuration string onto a Model.
// Returns ErrUnknownModel for anything outside the fixed set.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case SIR, SIS:
		return Model(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// String implements fmt.Stringer.
func (m Model) String() string { return string(m) }

// Defaults mirror the common simulation setup: mild per-contact spread,
// mild per-round recovery, a hundred rounds.
const (
	DefaultSpreadProb  = 0.05
	DefaultRecoverProb = 0.05
	DefaultMaxRounds   = 100
)

// Option configures trial behavior via functional arguments. An invalid
// value is recorded internally and surfaced as the matching sentinel
// when RunTrial is invoked.
type Option func(*TrialOptions)

// TrialOptions holds the propagation parameters of one trial.
type TrialOptions struct {
	// Model selects the recovery rule (SIR by default).
	Model Model

	// SpreadProb is pb: per-edge, per-round infection probability.
	SpreadProb float64

	// RecoverProb is pd: per-round recovery probability of an Infected vertex.
	RecoverProb float64

	// MaxRounds caps the number of executed rounds.
	MaxRounds int

	// internal error recorded during option parsing
	err error
}

// DefaultTrialOptions returns the SIR model with pb = pd = 0.05 and a
// 100-round cap.
func DefaultTrialOptions() TrialOptions {
	return TrialOptions{
		Model:       SIR,
		SpreadProb:  DefaultSpreadProb,
		RecoverProb: DefaultRecoverProb,
		MaxRounds:   DefaultMaxRounds,
	}
}

// WithModel selects the propagation model.
func WithModel(m Model) Option {
	return func(o *TrialOptions) {
		if m != SIR && m != SIS {
			o.err = fmt.Errorf("%w: %q", ErrUnknownModel, m)
			return
		}
		o.Model = m
	}
}

// WithSpreadProb sets pb; values outside [0,1] surface ErrBadProbability.
func WithSpreadProb(p float64) Option {
	return func(o *TrialOptions) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: pb=%v", ErrBadProbability, p)
			return
		}
		o.SpreadProb = p
	}
}

// WithRecoverProb sets pd; values outside [0,1] surface ErrBadProbability.
func WithRecoverProb(p float64) Option {
	return func(o *TrialOptions) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: pd=%v", ErrBadProbability, p)
			return
		}
		o.RecoverProb = p
	}
}

// WithMaxRounds caps the trial length; non-positive values surface
// ErrBadRounds.
func WithMaxRounds(r int) Option {
	return func(o *TrialOptions) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: rounds=%d", ErrBadRounds, r)
			return
		}
		o.MaxRounds = r
	}
}

// TrialResult is the immutable outcome of one trial.
type TrialResult struct {
	// Seeds is the seed-vertex set the trial started from.
	Seeds []string

	// Model is the propagation model that ran.
	Model Model

	// Rounds is the number of rounds actually executed (early stop when
	// no vertex is Infected).
	Rounds int

	// Final per-state counts.
	Susceptible int
	Infected    int
	Recovered   int

	// InfectedByRound holds the Infected total after each round;
	// index 0 is the initial state (the seed count).
	InfectedByRound []int

	// Final maps every vertex to its terminal state.
	Final map[string]State
}
