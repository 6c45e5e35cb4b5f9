package vaccine

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/episim/centrality"
	"github.com/katalvlaran/episim/core"
)

// Select returns the k vertices of g to vaccinate, ranked by measure m
// under strategy s. The result holds exactly k distinct vertex IDs in
// selection order; the caller's graph is never mutated.
//
// Complexity: Batch is one centrality pass plus an O(V log V) sort;
// Recursive is k centrality passes on shrinking clones.
func Select(g *core.Graph, m centrality.Measure, s Strategy, k int) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := centrality.ParseMeasure(string(m)); err != nil {
		return nil, err
	}
	if s != Batch && s != Recursive {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	if k < 0 || k > g.VertexCount() {
		return nil, fmt.Errorf("%w: k=%d with |V|=%d", ErrBadCount, k, g.VertexCount())
	}
	if k == 0 {
		return []string{}, nil
	}

	if s == Batch {
		return selectBatch(g, m, k)
	}

	return selectRecursive(g, m, k)
}

// selectBatch ranks all vertices by one static centrality computation:
// score descending, ties by vertex ID ascending.
func selectBatch(g *core.Graph, m centrality.Measure, k int) ([]string, error) {
	scores, err := centrality.Compute(g, m)
	if err != nil {
		return nil, err
	}
	ids := g.Vertices()
	sort.SliceStable(ids, func(i, j int) bool {
		// ids is pre-sorted ascending, so a stable sort on score alone
		// preserves the ID-ascending tie-break.
		return scores[ids[i]] > scores[ids[j]]
	})

	return ids[:k], nil
}

// selectRecursive removes the single best vertex k times, recomputing
// centrality on the reduced working copy after each removal. Scores are
// snapshot-specific, so nothing is cached across iterations.
func selectRecursive(g *core.Graph, m centrality.Measure, k int) ([]string, error) {
	work := g.Clone()
	out := make([]string, 0, k)
	for len(out) < k {
		scores, err := centrality.Compute(work, m)
		if err != nil {
			return nil, err
		}
		best := pickBest(work.Vertices(), scores)
		if err = work.RemoveVertex(best); err != nil {
			return nil, fmt.Errorf("vaccine: remove %q: %w", best, err)
		}
		out = append(out, best)
	}

	return out, nil
}

// pickBest returns the highest-scoring ID; ids arrive sorted ascending,
// so a strict comparison yields the ID-ascending tie-break for free.
// An edgeless remainder scores uniformly zero and degrades to plain
// ID order, exactly the documented fallback.
func pickBest(ids []string, scores map[string]float64) string {
	best := ids[0]
	for _, id := range ids[1:] {
		if scores[id] > scores[best] {
			best = id
		}
	}

	return best
}

// CountForPercent converts a percent-to-vaccinate into a vertex count:
// round(percent/100 · n), clamped to [0, n−1] so at least one vertex
// always remains.
func CountForPercent(percent, n int) int {
	if n == 0 {
		return 0
	}
	k := int(math.Round(float64(percent) / 100 * float64(n)))
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}

	return k
}
