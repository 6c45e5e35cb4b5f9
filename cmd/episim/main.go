// Command episim runs epidemic propagation simulations over a contact
// graph: load the graph, optionally vaccinate the most central
// vertices, run the trial matrix, write one CSV row per trial.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/episim/centrality"
	"github.com/katalvlaran/episim/config"
	"github.com/katalvlaran/episim/graphio"
	"github.com/katalvlaran/episim/sim"
	"github.com/katalvlaran/episim/vaccine"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "episim:", err)
		os.Exit(1)
	}
}

// run holds the whole pipeline so tests and main share one entry point.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("episim", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `episim - epidemic propagation simulator over contact graphs.

Usage:
  episim [options]

Options:
`)
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "Path to a YAML scenario file; flags override its fields.")
		graphPath  = fs.String("graph", "", "Path to the edge-list graph file.")
		outPath    = fs.String("out", "", "Path of the output CSV file.")
		patient0   = fs.String("p0", "", "Patient-zero vertex; empty repeats for every vertex.")
		strategy   = fs.String("strategy", "", "Vaccination selection strategy: batch or recursive.")
		measure    = fs.String("centrality", "", "Centrality measure: degree, closeness, betweenness, eigenvector, spread.")
		percent    = fs.Int("percent", 50, "Percent of vertices to vaccinate (1-99).")
		trials     = fs.Int("trials", sim.DefaultTrials, "Number of trials per seed configuration.")
		model      = fs.String("model", "sir", "Propagation model: sir or sis.")
		rounds     = fs.Int("rounds", 100, "Maximum rounds per trial.")
		pb         = fs.Float64("pb", 0.05, "Propagation probability per contact per round.")
		pd         = fs.Float64("pd", 0.05, "Recovery probability per round.")
		seed       = fs.Int64("seed", sim.DefaultSeed, "Top-level random seed.")
		workers    = fs.Int("workers", 1, "Number of concurrent trial workers.")
		logLevel   = fs.String("log-level", "info", "Logging level: debug, info, warn, error.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	scenario := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		scenario = loaded
	}
	// flags set explicitly on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			scenario.GraphPath = *graphPath
		case "out":
			scenario.OutputPath = *outPath
		case "p0":
			scenario.Patient0 = *patient0
		case "strategy":
			scenario.Strategy = *strategy
		case "centrality":
			scenario.Centrality = *measure
		case "percent":
			scenario.Percent = *percent
		case "trials":
			scenario.Trials = *trials
		case "model":
			scenario.Model = *model
		case "rounds":
			scenario.Rounds = *rounds
		case "pb":
			scenario.SpreadProb = *pb
		case "pd":
			scenario.RecoverProb = *pd
		case "seed":
			scenario.Seed = *seed
		case "workers":
			scenario.Workers = *workers
		}
	})
	if err := scenario.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return simulate(ctx, scenario, logger)
}

// simulate executes a validated scenario end to end.
func simulate(ctx context.Context, scenario config.Scenario, logger *zap.Logger) error {
	g, err := graphio.LoadEdgeListFile(scenario.GraphPath)
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		zap.String("path", scenario.GraphPath),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	var plan []string
	if scenario.Vaccinates() {
		strat, err := scenario.SelectionStrategy()
		if err != nil {
			return err
		}
		m, err := centrality.ParseMeasure(scenario.Centrality)
		if err != nil {
			return err
		}
		k := vaccine.CountForPercent(scenario.Percent, g.VertexCount())
		logger.Info("selecting vertices to vaccinate",
			zap.Int("count", k),
			zap.String("strategy", string(strat)),
			zap.String("centrality", string(m)),
		)
		if plan, err = vaccine.Select(g, m, strat, k); err != nil {
			return err
		}
	}

	results, err := sim.Run(ctx, g, plan, scenario.SimConfig(), sim.WithLogger(logger))
	if err != nil {
		return err
	}

	f, err := os.Create(scenario.OutputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", scenario.OutputPath, err)
	}
	defer f.Close()

	meta := graphio.RunMeta{
		Graph:       filepath.Base(scenario.GraphPath),
		Strategy:    scenario.Strategy,
		Centrality:  scenario.Centrality,
		Model:       scenario.Model,
		SpreadProb:  scenario.SpreadProb,
		RecoverProb: scenario.RecoverProb,
		Seed:        scenario.Seed,
		Rounds:      scenario.Rounds,
	}
	if err = graphio.WriteCSV(f, meta, results); err != nil {
		return err
	}
	logger.Info("results written",
		zap.String("path", scenario.OutputPath),
		zap.Int("rows", len(results)),
	)

	return nil
}

// newLogger builds a console logger at the requested level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
