package centrality

import "math"

// Power-iteration bounds. The tolerance is on the infinity-norm change
// of the normalized iterate between rounds.
const (
	maxPowerIterations = 1000
	powerTolerance     = 1e-10
)

// powerShift is the diagonal shift applied during iteration: we iterate
// on A+cI instead of A. Adjacency matrices of bipartite graphs carry the
// eigenvalue pair ±λmax, which makes the raw iteration oscillate; the
// shift separates λmax+c from −λmax+c while keeping the eigenvector.
const powerShift = 1.0

// noSkip disables vertex masking in powerIteration.
const noSkip = -1

// powerIteration approximates the largest adjacency eigenvalue and the
// matching eigenvector, optionally masking out one vertex (skip) to
// evaluate the reduced graph G−v without rebuilding it.
//
// The start vector is uniform over active vertices, so the whole
// procedure is deterministic. An edgeless (sub)graph yields λ = 0 and a
// zero vector.
func powerIteration(idx *graphIndex, skip int) (float64, []float64) {
	n := len(idx.ids)
	vec := make([]float64, n)
	if !hasActiveEdge(idx, skip) {
		return 0, vec
	}

	active := n
	if skip != noSkip {
		active--
	}
	init := 1 / math.Sqrt(float64(active))
	for i := range vec {
		if i != skip {
			vec[i] = init
		}
	}

	next := make([]float64, n)
	var lambda float64
	for iter := 0; iter < maxPowerIterations; iter++ {
		for i := range next {
			next[i] = 0
		}
		for v := range idx.nbrs {
			if v == skip {
				continue
			}
			acc := powerShift * vec[v]
			for _, u := range idx.nbrs[v] {
				if u == skip {
					continue
				}
				acc += vec[u]
			}
			next[v] = acc
		}

		var norm float64
		for i := range next {
			norm += next[i] * next[i]
		}
		norm = math.Sqrt(norm)

		// Rayleigh quotient vecᵀ·(A+cI)·vec for unit vec, minus the shift.
		lambda = -powerShift
		for i := range next {
			lambda += vec[i] * next[i]
		}

		var diff float64
		for i := range next {
			next[i] /= norm
			if d := math.Abs(next[i] - vec[i]); d > diff {
				diff = d
			}
		}
		vec, next = next, vec
		if diff < powerTolerance {
			break
		}
	}

	return lambda, vec
}

// hasActiveEdge reports whether at least one edge survives the mask.
func hasActiveEdge(idx *graphIndex, skip int) bool {
	for v := range idx.nbrs {
		if v == skip {
			continue
		}
		for _, u := range idx.nbrs[v] {
			if u != skip {
				return true
			}
		}
	}

	return false
}

// eigenvectorScores returns the principal adjacency eigenvector,
// L2-normalized, with the sign fixed so the first nonzero component
// (in sorted vertex order) is positive.
func eigenvectorScores(idx *graphIndex) []float64 {
	_, vec := powerIteration(idx, noSkip)
	for _, x := range vec {
		if x == 0 {
			continue
		}
		if x < 0 {
			for i := range vec {
				vec[i] = -vec[i]
			}
		}
		break
	}

	return vec
}

// spreadScores returns λmax(G) − λmax(G−v) per vertex: how much removing
// the vertex shrinks the graph's capacity to sustain an outbreak.
func spreadScores(idx *graphIndex) []float64 {
	full, _ := powerIteration(idx, noSkip)
	scores := make([]float64, len(idx.ids))
	for v := range idx.ids {
		reduced, _ := powerIteration(idx, v)
		scores[v] = full - reduced
	}

	return scores
}
