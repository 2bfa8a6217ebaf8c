package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphcolor/graph"
)

func mustBuild(t *testing.T, pairs [][2]int, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{U: p[0], V: p[1]}
	}
	g, err := graph.Build(edges, n)
	require.NoError(t, err)
	return g
}

func TestCheckAcceptsProperColoring(t *testing.T) {
	g := mustBuild(t, [][2]int{{0, 1}, {1, 2}}, 3)
	err := Check(g, []int32{0, 1, 0})
	assert.NoError(t, err)
}

func TestCheckRejectsMonochromaticEdge(t *testing.T) {
	g := mustBuild(t, [][2]int{{0, 1}, {1, 2}}, 3)
	err := Check(g, []int32{0, 0, 1})
	require.Error(t, err)
	var conflict Conflict
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 0, conflict.U)
	assert.Equal(t, 1, conflict.V)
}

func TestCheckRejectsUncoloredVertex(t *testing.T) {
	g := mustBuild(t, [][2]int{{0, 1}}, 2)
	err := Check(g, []int32{0, -1})
	assert.Error(t, err)
}

func TestCheckRejectsWrongLength(t *testing.T) {
	g := mustBuild(t, nil, 3)
	err := Check(g, []int32{0, 1})
	assert.Error(t, err)
}

func TestCheckEmptyGraph(t *testing.T) {
	g := mustBuild(t, nil, 0)
	err := Check(g, nil)
	assert.NoError(t, err)
}
