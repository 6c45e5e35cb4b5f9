package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independent(t *testing.T) {
	g := buildPath(t)
	clone := g.Clone()

	require.Equal(t, g.Vertices(), clone.Vertices())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())

	// mutating the clone must not leak into the original
	require.NoError(t, clone.RemoveVertex("b"))
	assert.True(t, g.HasVertex("b"))
	assert.True(t, g.HasEdge("a", "b"))
}

func TestInduce(t *testing.T) {
	g := buildPath(t)
	sub := g.Induce(map[string]struct{}{"b": {}})

	assert.Equal(t, []string{"a", "c", "d"}, sub.Vertices())
	assert.False(t, sub.HasVertex("b"), "excluded vertex is absent, not marked")
	assert.False(t, sub.HasEdge("a", "b"))
	assert.True(t, sub.HasEdge("c", "d"))
	assert.Equal(t, 1, sub.EdgeCount())

	// original untouched
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestInduce_UnknownExcluded(t *testing.T) {
	g := buildPath(t)
	sub := g.Induce(map[string]struct{}{"zz": {}})
	assert.Equal(t, g.Vertices(), sub.Vertices())
	assert.Equal(t, g.EdgeCount(), sub.EdgeCount())
}

func TestInduceSlice(t *testing.T) {
	g := buildPath(t)
	sub := g.InduceSlice([]string{"a", "d"})
	assert.Equal(t, []string{"b", "c"}, sub.Vertices())
	assert.True(t, sub.HasEdge("b", "c"))
	assert.Equal(t, 1, sub.EdgeCount())
}

func TestInduce_EmptyExclusion(t *testing.T) {
	g := buildPath(t)
	sub := g.Induce(nil)
	require.Equal(t, g.Vertices(), sub.Vertices())
	require.Equal(t, g.EdgeCount(), sub.EdgeCount())
}
