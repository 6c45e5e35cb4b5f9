package centrality

// betweennessScores implements Brandes' algorithm for unweighted graphs:
// one BFS per source builds the shortest-path DAG (path counts sigma and
// predecessor lists), then dependencies are accumulated in reverse
// BFS order. Undirected totals are halved because every (s,t) pair is
// visited from both endpoints.
//
// Complexity: O(V·(V+E)) time, O(V+E) space.
func betweennessScores(idx *graphIndex) []float64 {
	n := len(idx.ids)
	scores := make([]float64, n)

	dist := make([]int, n)
	sigma := make([]float64, n)
	delta := make([]float64, n)
	preds := make([][]int, n)
	order := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			dist[i] = unreached
			sigma[i] = 0
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		order = order[:0]

		dist[s] = 0
		sigma[s] = 1
		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, u := range idx.nbrs[v] {
				if dist[u] == unreached {
					dist[u] = dist[v] + 1
					queue = append(queue, u)
				}
				if dist[u] == dist[v]+1 {
					sigma[u] += sigma[v]
					preds[u] = append(preds[u], v)
				}
			}
		}

		// accumulate dependencies in reverse visitation order
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	// each unordered pair was counted from both endpoints
	for i := range scores {
		scores[i] /= 2
	}

	return scores
}
