package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphcolor/graph"
)

func TestBuildSymmetricAndDeduped(t *testing.T) {
	g, err := graph.Build([]graph.Edge{
		{U: 0, V: 1},
		{U: 1, V: 0}, // duplicate, reverse direction
		{U: 1, V: 2},
		{U: 2, V: 2}, // self-loop, dropped
	}, 3)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 2, g.M())

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{1}, n0)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{0, 2}, n1)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{1}, n2)
}

func TestNeighborsOutOfRange(t *testing.T) {
	g, err := graph.Build(nil, 3)
	require.NoError(t, err)

	_, err = g.Neighbors(-1)
	require.ErrorIs(t, err, graph.ErrOutOfRange)

	_, err = g.Neighbors(3)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
}

func TestBuildNegativeVertexCount(t *testing.T) {
	_, err := graph.Build(nil, -1)
	require.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestOptimizeSortsAscending(t *testing.T) {
	g, err := graph.Build([]graph.Edge{
		{U: 0, V: 3},
		{U: 0, V: 1},
		{U: 0, V: 2},
	}, 4)
	require.NoError(t, err)

	g.Optimize()
	require.True(t, g.Optimized())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, nbrs)

	// Idempotent: calling Optimize twice must not change the result or panic.
	g.Optimize()
	nbrs2, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, nbrs, nbrs2)
}

func TestDegreeOutOfRangeEdgesIgnored(t *testing.T) {
	g, err := graph.Build([]graph.Edge{
		{U: 0, V: 5}, // out-of-range endpoint, silently ignored by Build
		{U: 0, V: 1},
	}, 2)
	require.NoError(t, err)
	require.Equal(t, 1, g.M())

	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 1, d)
}
