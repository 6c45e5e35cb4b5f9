package centrality

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
)

// Compute returns the score of every vertex in g under measure m.
// The mapping is total: each vertex of g appears, with 0 where the
// measure degenerates. g is never mutated.
// Returns ErrNilGraph or ErrUnknownMeasure on invalid input.
func Compute(g *core.Graph, m Measure) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	idx := indexGraph(g)
	var scores []float64
	switch m {
	case Degree:
		scores = degreeScores(idx)
	case Closeness:
		scores = closenessScores(idx)
	case Betweenness:
		scores = betweennessScores(idx)
	case Eigenvector:
		scores = eigenvectorScores(idx)
	case Spread:
		scores = spreadScores(idx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasure, m)
	}

	out := make(map[string]float64, len(idx.ids))
	for i, id := range idx.ids {
		out[id] = scores[i]
	}

	return out, nil
}

// graphIndex is a dense snapshot of a core.Graph: ids in sorted order,
// neighbor lists as index slices. Every algorithm below iterates in
// index order, which pins determinism to the sorted vertex enumeration.
type graphIndex struct {
	ids  []string
	nbrs [][]int
}

func indexGraph(g *core.Graph) *graphIndex {
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

	return &graphIndex{ids: ids, nbrs: nbrs}
}

func degreeScores(idx *graphIndex) []float64 {
	scores := make([]float64, len(idx.ids))
	for i := range idx.nbrs {
		scores[i] = float64(len(idx.nbrs[i]))
	}

	return scores
}

// unreached marks a vertex not yet seen by the current BFS.
const unreached = -1

// bfsDistances fills dist with hop counts from src; unreached stays -1.
func bfsDistances(idx *graphIndex, src int, dist []int) {
	for i := range dist {
		dist[i] = unreached
	}
	dist[src] = 0
	queue := make([]int, 0, len(dist))
	queue = append(queue, src)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range idx.nbrs[v] {
			if dist[u] == unreached {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
}

// closenessScores computes reachable/(n·Σd) per vertex: the classic
// (n−1)/Σd closeness restricted to the component of v, scaled by 1/n.
// Isolated vertices score 0.
func closenessScores(idx *graphIndex) []float64 {
	n := len(idx.ids)
	scores := make([]float64, n)
	dist := make([]int, n)
	for v := 0; v < n; v++ {
		bfsDistances(idx, v, dist)
		sum, reachable := 0, 0
		for u := 0; u < n; u++ {
			if u == v || dist[u] == unreached {
				continue
			}
			sum += dist[u]
			reachable++
		}
		if sum > 0 {
			scores[v] = float64(reachable) / (float64(n) * float64(sum))
		}
	}

	return scores
}
