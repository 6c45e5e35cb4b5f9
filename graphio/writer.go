package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/episim/sim"
)

// seedJoiner separates vertex IDs inside a multi-seed patient0 cell.
const seedJoiner = "+"

// RunMeta is the run-level metadata echoed into every CSV row.
type RunMeta struct {
	// Graph names the input graph (typically its file name).
	Graph string

	// Strategy and Centrality describe the vaccination selection;
	// empty when no vaccination ran.
	Strategy   string
	Centrality string

	// Model, SpreadProb, RecoverProb, Seed echo the trial parameters.
	Model       string
	SpreadProb  float64
	RecoverProb float64
	Seed        int64

	// Rounds is the configured round cap, which fixes the number of
	// per-round columns.
	Rounds int
}

// WriteCSV emits one row per result, preceded by the header. Row order
// follows the input slice, which sim.Run hands over in canonical order.
func WriteCSV(w io.Writer, meta RunMeta, results []sim.Result) error {
	cw := csv.NewWriter(w)

	width := len(strconv.Itoa(meta.Rounds))
	header := []string{
		"run_id", "graph", "patient0", "trial",
		"strategy", "centrality", "model", "pb", "pd", "seed",
		"rounds_executed", "susceptible", "infected", "recovered",
	}
	for i := 0; i <= meta.Rounds; i++ {
		header = append(header, fmt.Sprintf("infected_%0*d", width, i))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}

	row := make([]string, 0, len(header))
	for _, res := range results {
		row = row[:0]
		row = append(row,
			res.RunID,
			meta.Graph,
			strings.Join(res.Seeds, seedJoiner),
			strconv.Itoa(res.Trial),
			meta.Strategy,
			meta.Centrality,
			meta.Model,
			formatProb(meta.SpreadProb),
			formatProb(meta.RecoverProb),
			strconv.FormatInt(meta.Seed, 10),
			strconv.Itoa(res.Rounds),
			strconv.Itoa(res.Susceptible),
			strconv.Itoa(res.Infected),
			strconv.Itoa(res.Recovered),
		)
		// early-stopped trials repeat their terminal count so every row
		// spans the full configured horizon
		last := 0
		for i := 0; i <= meta.Rounds; i++ {
			if i < len(res.InfectedByRound) {
				last = res.InfectedByRound[i]
			}
			row = append(row, strconv.Itoa(last))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("graphio: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
