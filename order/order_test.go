package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphcolor/graph"
	"graphcolor/order"
)

func star(n int) *graph.Graph {
	edges := make([]graph.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: 0, V: i})
	}
	g, _ := graph.Build(edges, n)
	return g
}

func TestBuildDescendingDegreeAscendingTieBreak(t *testing.T) {
	g := star(6)
	do := order.Build(g)

	require.Equal(t, int32(0), do.Order[0], "center has highest degree")
	// leaves 1..5 all have degree 1; tie-break is ascending index.
	require.Equal(t, []int32{1, 2, 3, 4, 5}, do.Order[1:])
}

func TestBuildMatchesDegreeArray(t *testing.T) {
	g := star(6)
	do := order.Build(g)

	require.Equal(t, int32(5), do.Degree[0])
	for i := 1; i < 6; i++ {
		require.Equal(t, int32(1), do.Degree[i])
	}
}

func TestCountingBinPathAgreesWithComparisonPath(t *testing.T) {
	// star(10) takes the comparison-sort path and star(10_001) the
	// counting-bin path (N > 10,000). Both must uphold the same
	// degree-ordering contract: center first (descending degree), then the
	// leaves in ascending index order (tie-break).
	for _, n := range []int{10, 10_001} {
		do := order.Build(star(n))
		require.Len(t, do.Order, n)
		require.Equal(t, int32(0), do.Order[0])
		for i := 1; i < n; i++ {
			require.Equal(t, int32(i), do.Order[i])
		}
	}
}
