// Derivation methods: deep copies and induced subgraphs.
//
// Vaccination is expressed through Induce: the reduced graph is a fresh
// structure, never a view, so no trial can alias state back into the
// loaded graph.
package core

// Clone returns a deep copy of the graph.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for u, adj := range g.adjacency {
		for v := range adj {
			clone.adjacency[u][v] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Induce builds the subgraph induced on the vertices NOT listed in
// exclude. The receiver is left untouched; edges survive only when both
// endpoints are retained. Excluded IDs absent from the graph are ignored.
// Complexity: O(V + E)
func (g *Graph) Induce(exclude map[string]struct{}) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	sub := NewGraph()
	for id := range g.vertices {
		if _, out := exclude[id]; out {
			continue
		}
		sub.vertices[id] = struct{}{}
		sub.adjacency[id] = make(map[string]struct{})
	}
	for u, adj := range g.adjacency {
		if _, out := exclude[u]; out {
			continue
		}
		for v := range adj {
			if _, out := exclude[v]; out {
				continue
			}
			if _, ok := sub.adjacency[u][v]; ok {
				continue
			}
			sub.adjacency[u][v] = struct{}{}
			sub.adjacency[v][u] = struct{}{}
			sub.edgeCount++
		}
	}

	return sub
}

// InduceSlice is Induce with the exclusion set given as a slice,
// the shape produced by vaccine.Select.
// Complexity: O(V + E)
func (g *Graph) InduceSlice(exclude []string) *Graph {
	set := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		set[id] = struct{}{}
	}

	return g.Induce(set)
}
