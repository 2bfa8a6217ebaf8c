package graph

import "errors"

// Sentinel errors for the graph package. Callers should branch on these
// with errors.Is rather than string comparison.
var (
	// ErrOutOfRange indicates a vertex index outside [0, N) was requested.
	ErrOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNotOptimized indicates an operation that needs the sorted,
	// post-Optimize adjacency structure was attempted before Optimize ran.
	// Neighbors and Degree work both before and after Optimize and never
	// return it; no function in this package currently returns it.
	ErrNotOptimized = errors.New("graph: graph has not been optimized")

	// ErrNegativeVertexCount indicates Build was called with N < 0.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be >= 0")
)
