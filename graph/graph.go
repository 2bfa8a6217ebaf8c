// Package graph implements the immutable compressed adjacency structure
// that every other coloring package operates on: for each vertex v, an
// ordered, duplicate-free sequence of neighbor indices.
//
// The representation is the CSR (compressed sparse row) layout the
// retrieved reference implementation builds via BuildAdjFromCSR /
// FlattenCSR — a flat []int32 edge array sliced per vertex by an
// []int32 offsets table — rather than a hash-keyed adjacency map. Once
// node labels have been remapped to a dense [0,N) range (the loader's
// job, not this package's), a flat array indexed by vertex id avoids the
// pointer-chasing and hashing overhead of a map-of-slices representation.
//
// A Graph is built once via Build, optionally frozen via Optimize (which
// sorts each neighbor list to improve cache locality during traversal),
// and is safe for unsynchronized concurrent reads by any number of
// goroutines thereafter — Optimize is the only operation in this package
// that mutates a Graph after Build.
package graph

import "sort"

// maxReservePerList caps the per-vertex neighbor-slice capacity reserved
// up front, per spec.md §4.1's estimator rule: min(1000, ceil(1.1*2M/N)).
const maxReservePerList = 1000

// Edge is an unordered pair of vertex indices, as produced by a loader
// after node-id remapping.
type Edge struct {
	U, V int
}

// Graph is an immutable undirected graph on vertices labeled 0..N-1.
// The zero value is not usable; construct with Build.
type Graph struct {
	n         int
	m         int // number of distinct undirected edges
	offsets   []int32
	neighbors []int32
	optimized bool
}

// Build constructs a Graph from a stream of (src, dst) pairs and a vertex
// count N. Per spec.md §4.1 / I4 / I5: endpoints are deduplicated, both
// directions of each edge are stored, and self-loops are silently dropped
// (the loader is responsible for surfacing a warning to the user; this
// package enforces the invariant unconditionally since callers other than
// the loader may also construct a Graph directly, e.g. in tests).
func Build(edges []Edge, n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	reserve := maxReservePerList
	if n > 0 {
		est := (11*len(edges)*2 + 10*n - 1) / (10 * n) // ceil(1.1 * 2M/N)
		if est < reserve {
			reserve = est
		}
		if reserve < 0 {
			reserve = 0
		}
	}

	// Temporary per-vertex dedup sets, discarded once the CSR arrays are
	// flattened below. Using a set here (rather than the reference
	// implementation's linear std::find scan) keeps duplicate-edge
	// insertion O(1) amortized instead of O(degree) per insert.
	seen := make([]map[int32]struct{}, n)
	lists := make([][]int32, n)
	for i := range lists {
		lists[i] = make([]int32, 0, reserve)
	}

	addDirected := func(u, v int32) {
		if seen[u] == nil {
			seen[u] = make(map[int32]struct{}, reserve)
		}
		if _, dup := seen[u][v]; dup {
			return
		}
		seen[u][v] = struct{}{}
		lists[u] = append(lists[u], v)
	}

	distinctEdges := 0
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			continue // out-of-range endpoints are the loader's problem to reject earlier
		}
		if e.U == e.V {
			continue // I5: self-loops dropped
		}
		u, v := int32(e.U), int32(e.V)
		before := len(lists[u])
		addDirected(u, v)
		addDirected(v, u)
		if len(lists[u]) != before {
			distinctEdges++
		}
	}

	g := &Graph{n: n, m: distinctEdges}
	g.offsets = make([]int32, n+1)
	total := 0
	for v := 0; v < n; v++ {
		g.offsets[v] = int32(total)
		total += len(lists[v])
	}
	g.offsets[n] = int32(total)

	g.neighbors = make([]int32, total)
	for v := 0; v < n; v++ {
		copy(g.neighbors[g.offsets[v]:g.offsets[v+1]], lists[v])
	}
	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of distinct undirected edges.
func (g *Graph) M() int { return g.m }

// Degree returns the number of neighbors of v. Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrOutOfRange
	}
	return int(g.offsets[v+1] - g.offsets[v]), nil
}

// Neighbors returns a read-only view of v's neighbor indices. The
// returned slice aliases internal storage and must not be mutated or
// retained past the Graph's lifetime if the Graph is later discarded.
// Complexity: O(1) to obtain the slice.
func (g *Graph) Neighbors(v int) ([]int32, error) {
	if v < 0 || v >= g.n {
		return nil, ErrOutOfRange
	}
	return g.neighbors[g.offsets[v]:g.offsets[v+1]], nil
}

// Optimize sorts each neighbor list in ascending order. It is a one-shot
// pre-freeze operation: call it once after Build and before handing the
// Graph to any reader. Neighbor order does not affect correctness, only
// cache behavior during sequential and parallel scans. Optimize is safe to
// call from a single goroutine only; it is not itself concurrency-safe,
// matching spec.md §4.1's "one-shot, pre-freeze" contract.
func (g *Graph) Optimize() {
	if g.optimized {
		return
	}
	for v := 0; v < g.n; v++ {
		lo, hi := g.offsets[v], g.offsets[v+1]
		nbrs := g.neighbors[lo:hi]
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
	}
	g.optimized = true
}

// Optimized reports whether Optimize has run.
func (g *Graph) Optimized() bool { return g.optimized }
