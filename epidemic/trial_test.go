package epidemic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/epidemic"
)

// cycle4 builds v0-v1-v2-v3-v0.
func cycle4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"v0", "v1", "v2", "v3"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"v0", "v1"}, {"v1", "v2"}, {"v2", "v3"}, {"v3", "v0"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestRunTrial_Errors(t *testing.T) {
	g := cycle4(t)

	_, err := epidemic.RunTrial(nil, []string{"v0"}, newRand())
	assert.ErrorIs(t, err, epidemic.ErrNilGraph)

	_, err = epidemic.RunTrial(g, []string{"v0"}, nil)
	assert.ErrorIs(t, err, epidemic.ErrNilRand)

	_, err = epidemic.RunTrial(g, nil, newRand())
	assert.ErrorIs(t, err, epidemic.ErrNoSeeds)

	_, err = epidemic.RunTrial(g, []string{"ghost"}, newRand())
	assert.ErrorIs(t, err, epidemic.ErrSeedNotFound)

	_, err = epidemic.RunTrial(g, []string{"v0"}, newRand(), epidemic.WithSpreadProb(1.5))
	assert.ErrorIs(t, err, epidemic.ErrBadProbability)

	_, err = epidemic.RunTrial(g, []string{"v0"}, newRand(), epidemic.WithRecoverProb(-0.1))
	assert.ErrorIs(t, err, epidemic.ErrBadProbability)

	_, err = epidemic.RunTrial(g, []string{"v0"}, newRand(), epidemic.WithMaxRounds(0))
	assert.ErrorIs(t, err, epidemic.ErrBadRounds)

	_, err = epidemic.RunTrial(g, []string{"v0"}, newRand(), epidemic.WithModel("seir"))
	assert.ErrorIs(t, err, epidemic.ErrUnknownModel)
}

// TestRunTrial_VaccinatedSeed: a seed removed by vaccination is absent
// from the reduced graph and must fail, not be silently ignored.
func TestRunTrial_VaccinatedSeed(t *testing.T) {
	reduced := cycle4(t).InduceSlice([]string{"v0"})
	_, err := epidemic.RunTrial(reduced, []string{"v0"}, newRand())
	assert.ErrorIs(t, err, epidemic.ErrSeedNotFound)
}

// TestRunTrial_CycleFullSpread: pb=1, pd=0 on the
// 4-cycle from v0. Round 1 infects v1,v3; round 2 infects v2; round 3
// runs with nothing left to infect and no early stop (pd=0 keeps
// everyone Infected).
func TestRunTrial_CycleFullSpread(t *testing.T) {
	res, err := epidemic.RunTrial(cycle4(t), []string{"v0"}, newRand(),
		epidemic.WithSpreadProb(1),
		epidemic.WithRecoverProb(0),
		epidemic.WithMaxRounds(3),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 4, res.Infected)
	assert.Equal(t, 0, res.Recovered)
	assert.Equal(t, 0, res.Susceptible)
	assert.Equal(t, []int{1, 3, 4, 4}, res.InfectedByRound)
}

// TestRunTrial_CycleInstantRecovery: pb=0, pd=1.
// The seed recovers in round 1 without spreading; the trial stops early.
func TestRunTrial_CycleInstantRecovery(t *testing.T) {
	res, err := epidemic.RunTrial(cycle4(t), []string{"v0"}, newRand(),
		epidemic.WithSpreadProb(0),
		epidemic.WithRecoverProb(1),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 1, res.Recovered)
	assert.Equal(t, 3, res.Susceptible)
	assert.Equal(t, 0, res.Infected)
	assert.Equal(t, []int{1, 0}, res.InfectedByRound)
	assert.Equal(t, epidemic.Recovered, res.Final["v0"])
}

// TestRunTrial_NoSpreadMonotonicity: with pb=0 the infection never
// leaves the seed set, whatever pd does.
func TestRunTrial_NoSpreadMonotonicity(t *testing.T) {
	for _, pd := range []float64{0, 0.3, 1} {
		res, err := epidemic.RunTrial(cycle4(t), []string{"v0", "v2"}, newRand(),
			epidemic.WithSpreadProb(0),
			epidemic.WithRecoverProb(pd),
			epidemic.WithMaxRounds(50),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Infected+res.Recovered, "pd=%v", pd)
		assert.Equal(t, epidemic.Susceptible, res.Final["v1"], "pd=%v", pd)
		assert.Equal(t, epidemic.Susceptible, res.Final["v3"], "pd=%v", pd)
	}
}

// TestRunTrial_SIS: recovery returns the vertex to Susceptible instead
// of the terminal Recovered state.
func TestRunTrial_SIS(t *testing.T) {
	res, err := epidemic.RunTrial(cycle4(t), []string{"v0"}, newRand(),
		epidemic.WithModel(epidemic.SIS),
		epidemic.WithSpreadProb(0),
		epidemic.WithRecoverProb(1),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 4, res.Susceptible)
	assert.Equal(t, 0, res.Recovered)
	assert.Equal(t, epidemic.Susceptible, res.Final["v0"])
}

// TestRunTrial_SpreadBeforeRecovery: with pb=1 and pd=1 the seed both
// infects its neighbors and recovers in round 1 — transmission happens
// in the recovery round.
func TestRunTrial_SpreadBeforeRecovery(t *testing.T) {
	res, err := epidemic.RunTrial(cycle4(t), []string{"v0"}, newRand(),
		epidemic.WithSpreadProb(1),
		epidemic.WithRecoverProb(1),
		epidemic.WithMaxRounds(10),
	)
	require.NoError(t, err)

	// round 1: v1,v3 infected, v0 recovered; round 2: v2 infected,
	// v1,v3 recovered; round 3: v2 recovered, nothing left
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 4, res.Recovered)
	assert.Equal(t, []int{1, 2, 1, 0}, res.InfectedByRound)
}

// TestRunTrial_Deterministic: identical RNG state reproduces the trial.
func TestRunTrial_Deterministic(t *testing.T) {
	g := cycle4(t)
	opts := []epidemic.Option{
		epidemic.WithSpreadProb(0.4),
		epidemic.WithRecoverProb(0.2),
		epidemic.WithMaxRounds(30),
	}
	a, err := epidemic.RunTrial(g, []string{"v0"}, rand.New(rand.NewSource(7)), opts...)
	require.NoError(t, err)
	b, err := epidemic.RunTrial(g, []string{"v0"}, rand.New(rand.NewSource(7)), opts...)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestRunTrial_VaccinationIdempotence: on a reduced star, the removed
// hub can never be contacted — with pb=1 from a leaf nothing spreads,
// because the leaf has no neighbors left.
func TestRunTrial_VaccinationIdempotence(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"hub", "a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, leaf := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddEdge("hub", leaf))
	}
	reduced := g.InduceSlice([]string{"hub"})

	res, err := epidemic.RunTrial(reduced, []string{"a"}, newRand(),
		epidemic.WithSpreadProb(1),
		epidemic.WithRecoverProb(0),
		epidemic.WithMaxRounds(5),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Infected)
	assert.Equal(t, 2, res.Susceptible)
	assert.NotContains(t, res.Final, "hub")
}

func TestParseModel(t *testing.T) {
	for _, m := range []epidemic.Model{epidemic.SIR, epidemic.SIS} {
		got, err := epidemic.ParseModel(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := epidemic.ParseModel("seir")
	assert.ErrorIs(t, err, epidemic.ErrUnknownModel)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "susceptible", epidemic.Susceptible.String())
	assert.Equal(t, "infected", epidemic.Infected.String())
	assert.Equal(t, "recovered", epidemic.Recovered.String())
}
