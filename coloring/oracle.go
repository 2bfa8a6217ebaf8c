package coloring

import "graphcolor/graph"

// Oracle computes the deterministic sequential greedy reference coloring
// of spec.md §4.7: visiting vertices 0..N-1 in index order, color[v] is
// the mex of its already-colored neighbors' colors. It shares no state
// with Color and takes no locks — a plain single-goroutine pass, in the
// style of the reference implementation's seq_bfs.go — used by this
// package's tests and by the CLI's -seq flag as a coloring that can be
// trusted without reasoning about concurrency at all.
func Oracle(g *graph.Graph) []int32 {
	n := g.N()
	colors := make([]int32, n)
	for i := range colors {
		colors[i] = uncolored
	}

	var forbidden []bool
	for v := 0; v < n; v++ {
		nbrs, _ := g.Neighbors(v) // v is always in range here

		limit := int32(0)
		for _, u := range nbrs {
			if c := colors[u]; c+1 > limit {
				limit = c + 1
			}
		}

		if int32(len(forbidden)) < limit {
			forbidden = make([]bool, limit)
		} else {
			forbidden = forbidden[:limit]
			for i := range forbidden {
				forbidden[i] = false
			}
		}
		for _, u := range nbrs {
			if c := colors[u]; c >= 0 && c < limit {
				forbidden[c] = true
			}
		}

		c := int32(0)
		for c < limit && forbidden[c] {
			c++
		}
		colors[v] = c
	}
	return colors
}
