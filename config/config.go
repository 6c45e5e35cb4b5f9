// Package config loads and validates simulation scenarios.
//
// A scenario is a YAML file merged over built-in defaults; CLI flags
// may override individual fields afterwards. Validation runs once,
// eagerly, before anything touches the graph: a bad scenario aborts the
// whole run, partial output is never valid.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/episim/epidemic"
	"github.com/katalvlaran/episim/sim"
	"github.com/katalvlaran/episim/vaccine"
)

// ErrInvalid wraps every scenario validation failure.
var ErrInvalid = errors.New("config: invalid scenario")

// Scenario is the complete configuration surface of one simulation run.
type Scenario struct {
	// GraphPath is the edge-list input file.
	GraphPath string `yaml:"graph" validate:"required"`

	// OutputPath is the CSV destination.
	OutputPath string `yaml:"output" validate:"required"`

	// Patient0 optionally pins the seed vertex; empty means one run per
	// non-vaccinated vertex.
	Patient0 string `yaml:"patient0"`

	// Strategy and Centrality select vaccination; both empty disables it.
	// A strategy without a centrality measure is invalid.
	Strategy   string `yaml:"strategy" validate:"omitempty,oneof=batch recursive"`
	Centrality string `yaml:"centrality" validate:"required_with=Strategy,omitempty,oneof=degree closeness betweenness eigenvector spread"`

	// Percent of vertices to vaccinate.
	Percent int `yaml:"percent" validate:"min=1,max=99"`

	// Trials per seed configuration.
	Trials int `yaml:"trials" validate:"min=1"`

	// Model is the propagation model name.
	Model string `yaml:"model" validate:"oneof=sir sis"`

	// Rounds caps each trial.
	Rounds int `yaml:"rounds" validate:"min=1"`

	// SpreadProb (pb) and RecoverProb (pd).
	SpreadProb  float64 `yaml:"pb" validate:"min=0,max=1"`
	RecoverProb float64 `yaml:"pd" validate:"min=0,max=1"`

	// Seed is the top-level RNG seed.
	Seed int64 `yaml:"seed"`

	// Workers sizes the trial worker pool.
	Workers int `yaml:"workers" validate:"min=1"`
}

// Default returns the scenario defaults; GraphPath and OutputPath stay
// empty and must be provided.
func Default() Scenario {
	return Scenario{
		Percent:     50,
		Trials:      sim.DefaultTrials,
		Model:       string(epidemic.SIR),
		Rounds:      epidemic.DefaultMaxRounds,
		SpreadProb:  epidemic.DefaultSpreadProb,
		RecoverProb: epidemic.DefaultRecoverProb,
		Seed:        sim.DefaultSeed,
		Workers:     1,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field; failures wrap ErrInvalid with the
// validator's field report.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads a YAML scenario over the defaults and validates it.
func Load(path string) (Scenario, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// Vaccinates reports whether the scenario requests vaccination.
func (s Scenario) Vaccinates() bool { return s.Strategy != "" }

// SelectionStrategy parses the configured strategy.
func (s Scenario) SelectionStrategy() (vaccine.Strategy, error) {
	return vaccine.ParseStrategy(s.Strategy)
}

// SimConfig maps the scenario onto the orchestrator's Config.
func (s Scenario) SimConfig() sim.Config {
	cfg := sim.Config{
		Trials:      s.Trials,
		Rounds:      s.Rounds,
		Model:       epidemic.Model(s.Model),
		SpreadProb:  s.SpreadProb,
		RecoverProb: s.RecoverProb,
		Seed:        s.Seed,
		Workers:     s.Workers,
	}
	if s.Patient0 != "" {
		cfg.SeedVertices = []string{s.Patient0}
	}

	return cfg
}
