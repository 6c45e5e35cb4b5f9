package epidemic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/episim/core"
)

// RunTrial executes one propagation trial on g, which must already be
// the reduced (post-vaccination) graph. Seed vertices start Infected,
// everything else Susceptible. Returns the trial outcome, or an error
// when a precondition or option is violated — there are no recoverable
// failures once the first round starts.
func RunTrial(g *core.Graph, seeds []string, rng *rand.Rand, opts ...Option) (*TrialResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	o := DefaultTrialOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	st, err := newTrialState(g, seeds)
	if err != nil {
		return nil, err
	}

	return st.run(&o, rng), nil
}

// trialState is the dense working form of one trial: vertex IDs in
// sorted order, neighbor lists as index slices, and the current state
// vector. The dense layout pins the draw order (vertex-major,
// neighbor-minor) to the sorted enumeration.
type trialState struct {
	ids   []string
	nbrs  [][]int
	state []State
	next  []State
	seeds []string
}

func newTrialState(g *core.Graph, seeds []string) (*trialState, error) {
	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	nbrs := make([][]int, len(ids))
	for i, id := range ids {
		ns, _ := g.NeighborIDs(id) // id came from Vertices, cannot be missing
		row := make([]int, len(ns))
		for j, n := range ns {
			row[j] = pos[n]
		}
		nbrs[i] = row
	}

	state := make([]State, len(ids))
	for _, s := range seeds {
		i, ok := pos[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSeedNotFound, s)
		}
		state[i] = Infected
	}

	return &trialState{
		ids:   ids,
		nbrs:  nbrs,
		state: state,
		next:  make([]State, len(ids)),
		seeds: append([]string(nil), seeds...),
	}, nil
}

// run executes rounds until no vertex is Infected or the cap is hit.
func (st *trialState) run(o *TrialOptions, rng *rand.Rand) *TrialResult {
	infected := st.countInfected()
	byRound := make([]int, 0, o.MaxRounds+1)
	byRound = append(byRound, infected)

	rounds := 0
	for rounds < o.MaxRounds && infected > 0 {
		st.step(o, rng)
		rounds++
		infected = st.countInfected()
		byRound = append(byRound, infected)
	}

	res := &TrialResult{
		Seeds:           st.seeds,
		Model:           o.Model,
		Rounds:          rounds,
		InfectedByRound: byRound,
		Final:           make(map[string]State, len(st.ids)),
	}
	for i, id := range st.ids {
		res.Final[id] = st.state[i]
		switch st.state[i] {
		case Susceptible:
			res.Susceptible++
		case Infected:
			res.Infected++
		case Recovered:
			res.Recovered++
		}
	}

	return res
}

// step performs one synchronous round transition. Both phases read the
// prior round's state; the new state becomes visible only at the end.
func (st *trialState) step(o *TrialOptions, rng *rand.Rand) {
	copy(st.next, st.state)

	// spread phase: one Bernoulli(pb) draw per (infected v, susceptible
	// u) edge, always consumed; infection is the OR of the draws
	for v := range st.state {
		if st.state[v] != Infected {
			continue
		}
		for _, u := range st.nbrs[v] {
			if st.state[u] != Susceptible {
				continue
			}
			if rng.Float64() < o.SpreadProb {
				st.next[u] = Infected
			}
		}
	}

	// recovery phase: prior-round Infected vertices only, so a vertex
	// still transmits in the round it recovers
	for v := range st.state {
		if st.state[v] != Infected {
			continue
		}
		if rng.Float64() < o.RecoverProb {
			if o.Model == SIS {
				st.next[v] = Susceptible
			} else {
				st.next[v] = Recovered
			}
		}
	}

	st.state, st.next = st.next, st.state
}

func (st *trialState) countInfected() int {
	n := 0
	for _, s := range st.state {
		if s == Infected {
			n++
		}
	}

	return n
}
