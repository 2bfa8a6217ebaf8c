package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEdgeListWithComments(t *testing.T) {
	input := "# comment\n% also a comment\n0 1\n1 2\n0 2\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, result.Graph)
	assert.Equal(t, 3, result.Graph.N())
	assert.Equal(t, 3, result.Graph.M())
	assert.Empty(t, result.Warnings)
}

func TestLoadEdgeListRemapsArbitraryLabels(t *testing.T) {
	// Labels 100 and 250 appear before 5, so first-appearance order gives
	// them the lower dense indices.
	input := "100 250\n250 5\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Graph.N())
	deg0, _ := result.Graph.Degree(0)
	assert.Equal(t, 1, deg0)
}

func TestLoadEdgeListDropsSelfLoop(t *testing.T) {
	input := "0 0\n0 1\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Graph.M())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "self-loop")
}

func TestLoadEdgeListSkipsMalformedLine(t *testing.T) {
	input := "0 1\nnot-a-number 2\n1 2\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Graph.M())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "malformed")
}

func TestLoadHeaderPrefixedZeroIndexed(t *testing.T) {
	input := "4 3\n0 1\n1 2\n2 3\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Graph.N())
	assert.Equal(t, 3, result.Graph.M())
}

func TestLoadHeaderPrefixedOneIndexed(t *testing.T) {
	input := "3\n1 2\n2 3\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Graph.N())
	assert.Equal(t, 2, result.Graph.M())
}

func TestLoadHeaderPrefixedFailsValidationReturnsEmptyGraph(t *testing.T) {
	// Header declares N=2, but the body references vertex 9 under either
	// indexing convention; this must fall back to the lenient empty graph
	// rather than a hard failure.
	input := "2\n9 9\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Graph.N())
	require.Len(t, result.Warnings, 1)
}

func TestLoadAmbiguousTwoIntFirstLineFallsBackToEdgeList(t *testing.T) {
	// "4 3" parses fine as a candidate header (N=4, M=3), but the next
	// line references vertex 9, which fits neither indexing convention
	// for N=4: this must fall back to treating "4 3" itself as the first
	// edge (and "9 9" as a self-loop on that same edge-list path), not the
	// lenient header-failure empty graph reserved for genuinely
	// unambiguous ("N"-only) headers.
	input := "4 3\n9 9\n"
	result, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Graph.N())
	assert.Equal(t, 1, result.Graph.M())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "self-loop")
}

func TestLoadEmptyInput(t *testing.T) {
	result, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Graph.N())
}

func TestSaveColorsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := SaveColors(&buf, []int32{0, 1, 0, 2}, "run took 1.2s")
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# run took 1.2s\n"))
	assert.Contains(t, out, "0 0\n")
	assert.Contains(t, out, "3 2\n")
}
