package epidemic_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/epidemic"
)

// ExampleRunTrial traces a fully deterministic outbreak on a 4-cycle:
// with certain transmission and no recovery the infection sweeps the
// whole ring in three rounds.
func ExampleRunTrial() {
	// Build the ring: v0─v1─v2─v3─v0
	g := core.NewGraph()
	ids := []string{"v0", "v1", "v2", "v3"}
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	for i, id := range ids {
		if err := g.AddEdge(id, ids[(i+1)%len(ids)]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// With nobody recovering the trial only stops at the round cap, so
	// cap it right after the sweep completes.
	rng := rand.New(rand.NewSource(1))
	res, err := epidemic.RunTrial(g, []string{"v0"}, rng,
		epidemic.WithModel(epidemic.SIR),
		epidemic.WithSpreadProb(1.0),
		epidemic.WithRecoverProb(0.0),
		epidemic.WithMaxRounds(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("rounds:", res.Rounds)
	fmt.Println("infected by round:", res.InfectedByRound)
	// Output:
	// rounds: 3
	// infected by round: [1 3 4 4]
}

// ExampleRunTrial_sis shows the SIS model: recovered vertices return to
// the susceptible pool instead of leaving the process for good.
func ExampleRunTrial_sis() {
	g := core.NewGraph()
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	_ = g.AddEdge("a", "b")

	rng := rand.New(rand.NewSource(7))
	res, err := epidemic.RunTrial(g, []string{"a"}, rng,
		epidemic.WithModel(epidemic.SIS),
		epidemic.WithSpreadProb(0.0),
		epidemic.WithRecoverProb(1.0),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The sole infected vertex recovers straight back to susceptible.
	fmt.Println("final state of a:", res.Final["a"])
	fmt.Println("recovered:", res.Recovered)
	// Output:
	// final state of a: susceptible
	// recovered: 0
}
