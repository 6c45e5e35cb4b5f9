package centrality_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/episim/centrality"
	"github.com/katalvlaran/episim/core"
)

// randomGraph builds a seeded Erdős–Rényi style graph of n vertices
// where each candidate edge is kept with probability p.
func randomGraph(n int, p float64, seed int64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j))
			}
		}
	}
	return g
}

// BenchmarkCompute_Degree measures the cheapest measure on a sparse
// 1000-vertex graph; this is the selection baseline.
func BenchmarkCompute_Degree(b *testing.B) {
	g := randomGraph(1000, 0.01, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Degree)
	}
}

// BenchmarkCompute_Closeness runs one BFS per vertex, O(V·(V+E)).
func BenchmarkCompute_Closeness(b *testing.B) {
	g := randomGraph(500, 0.02, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Closeness)
	}
}

// BenchmarkCompute_Betweenness exercises the Brandes accumulation,
// the most expensive of the shortest-path measures.
func BenchmarkCompute_Betweenness(b *testing.B) {
	g := randomGraph(300, 0.03, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Betweenness)
	}
}

// BenchmarkCompute_Spread recomputes the dominant eigenvalue once per
// vertex, so it dominates any full-measure sweep.
func BenchmarkCompute_Spread(b *testing.B) {
	g := randomGraph(150, 0.05, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Compute(g, centrality.Spread)
	}
}
