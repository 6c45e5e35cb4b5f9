package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id is the empty string.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether id is present.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id and every incident edge.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(d) where d = degree of id.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge records the undirected edge {u,v}.
// Both endpoints must already exist (ErrVertexNotFound); self-loops are
// rejected (ErrSelfLoop). Re-adding an existing edge is a no-op.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u,v} is an edge.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// This is the stable enumeration surface: selection, seed enumeration
// and the propagation round all rely on it for reproducibility.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the sorted IDs adjacent to id.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	adj, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	nbrs := make([]string, 0, len(adj))
	for nbr := range adj {
		nbrs = append(nbrs, nbr)
	}
	g.mu.RUnlock()
	sort.Strings(nbrs)

	return nbrs, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound when id is absent.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// VertexCount returns |V|.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
