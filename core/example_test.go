package core_test

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
)

// ExampleGraph_Induce shows vaccination as an induced-subgraph derivation:
// the removed vertex is absent from the result, together with its edges,
// while the source graph keeps its full shape.
func ExampleGraph_Induce() {
	g := core.NewGraph()
	for _, id := range []string{"hub", "x", "y", "z"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("hub", "x")
	_ = g.AddEdge("hub", "y")
	_ = g.AddEdge("hub", "z")

	reduced := g.InduceSlice([]string{"hub"})

	fmt.Println("original:", g.VertexCount(), "vertices,", g.EdgeCount(), "edges")
	fmt.Println("reduced: ", reduced.VertexCount(), "vertices,", reduced.EdgeCount(), "edges")
	// Output:
	// original: 4 vertices, 3 edges
	// reduced:  3 vertices, 0 edges
}
