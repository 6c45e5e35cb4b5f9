// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor. Query and mutation methods live in methods.go;
// derivation (Clone, Induce) lives in derive.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an undirected, unweighted simple graph over string vertex IDs.
//
// The zero value is not usable; construct with NewGraph.
// mu guards vertices and adjacency together: the two structures must
// never be observed out of sync.
type Graph struct {
	mu sync.RWMutex

	// vertices is the vertex set (ID → presence).
	vertices map[string]struct{}

	// adjacency[u][v] exists iff {u,v} is an edge; kept symmetric.
	adjacency map[string]map[string]struct{}

	// edgeCount caches |E| so EdgeCount is O(1).
	edgeCount int
}

// NewGraph creates an empty contact graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
