// Package order computes a priority ordering of a graph's vertices,
// highest degree first, with a stable ascending-index tie-break. This is
// the "prepareVertices" step of the speculative coloring pipeline: coloring
// the most-constrained vertices first both seeds MaxColor early and removes
// the worst speculation-conflict offenders from the parallel phase.
package order

import (
	"sort"

	"graphcolor/graph"
)

// largeGraphThreshold is the N above which counting-bin sort is used
// instead of a comparison sort, per spec.md §4.2.
const largeGraphThreshold = 10_000

// DegreeOrder is a permutation of [0,N) sorted by (-degree[v], v): descending
// degree, ascending index tie-break.
type DegreeOrder struct {
	Order  []int32 // Order[i] is the vertex with the i-th highest priority
	Degree []int32 // Degree[v] is the degree of vertex v
}

// Build computes the DegreeOrder for g. For N > 10,000 it bins vertices by
// degree into max_degree+1 buckets and emits them highest-bucket-first,
// giving O(N + max_degree) time; smaller graphs use a comparison sort for
// simplicity since the asymptotic difference is immaterial at that scale.
func Build(g *graph.Graph) *DegreeOrder {
	n := g.N()
	degree := make([]int32, n)
	maxDegree := int32(0)
	for v := 0; v < n; v++ {
		d, _ := g.Degree(v) // v is always in range here
		degree[v] = int32(d)
		if degree[v] > maxDegree {
			maxDegree = degree[v]
		}
	}

	var ord []int32
	if n > largeGraphThreshold {
		ord = countingBinOrder(degree, maxDegree)
	} else {
		ord = comparisonOrder(degree)
	}

	return &DegreeOrder{Order: ord, Degree: degree}
}

// countingBinOrder buckets each vertex by its degree, then walks the
// buckets from highest degree to lowest, preserving ascending-index order
// within a bucket (vertices are appended to their bucket in index order,
// so the walk naturally produces the required tie-break).
func countingBinOrder(degree []int32, maxDegree int32) []int32 {
	n := len(degree)
	bucketStart := make([]int32, maxDegree+2) // bucketStart[d] = count of vertices with degree d, then prefix-summed
	for _, d := range degree {
		bucketStart[d]++
	}
	// Prefix-sum from the top: bucketStart[d] becomes the starting offset
	// (in the final highest-degree-first order) of degree-d vertices.
	offset := int32(0)
	for d := maxDegree; d >= 0; d-- {
		cnt := bucketStart[d]
		bucketStart[d] = offset
		offset += cnt
	}

	ord := make([]int32, n)
	cursor := append([]int32(nil), bucketStart[:maxDegree+1]...)
	for v := 0; v < n; v++ {
		d := degree[v]
		ord[cursor[d]] = int32(v)
		cursor[d]++
	}
	return ord
}

// comparisonOrder sorts vertices by (-degree[v], v) using insertion into a
// pre-sized slice and the standard library's sort, acceptable for the
// smaller graphs that take this path (spec.md §4.2: O(N log N) is fine
// below the counting-bin threshold).
func comparisonOrder(degree []int32) []int32 {
	n := len(degree)
	ord := make([]int32, n)
	for v := range ord {
		ord[v] = int32(v)
	}
	sort.Slice(ord, func(i, j int) bool {
		vi, vj := ord[i], ord[j]
		if degree[vi] != degree[vj] {
			return degree[vi] > degree[vj]
		}
		return vi < vj
	})
	return ord
}
