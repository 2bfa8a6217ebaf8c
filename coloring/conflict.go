package coloring

import (
	"sync/atomic"

	"graphcolor/graph"
	"graphcolor/order"
	"graphcolor/workchunk"
)

// detectConflicts implements spec.md §4.5: scan every undirected edge
// exactly once (by requiring the neighbor index to exceed the vertex's
// own index) and, for each same-colored pair, mark exactly one endpoint
// via the (smaller-degree, larger-index-tie-break) rule so repair work is
// not duplicated for both sides of an edge. Returns whether any conflict
// was found.
func detectConflicts(g *graph.Graph, do *order.DegreeOrder, st *state, cfg config) bool {
	n := g.N()
	if n == 0 {
		return false
	}
	chunkSize := workchunk.Size(n, cfg.threads)
	var found int32

	workchunk.For(0, n, chunkSize, func(lo, hi int) {
		local := false
		for v := lo; v < hi; v++ {
			vv := int32(v)
			cv := st.loadColor(vv)
			nbrs, _ := g.Neighbors(v) // v is always in range here
			for _, u := range nbrs {
				if u <= vv {
					continue // each undirected edge processed once, from its lower-indexed endpoint
				}
				if st.loadColor(u) == cv {
					markConflict(st, do.Degree, vv, u)
					local = true
				}
			}
		}
		if local {
			atomic.StoreInt32(&found, 1)
		}
	})

	return atomic.LoadInt32(&found) == 1
}

// markConflict flags the endpoint of a conflicting edge that spec.md §4.5
// says must yield: the lower-degree endpoint, with ties broken toward the
// larger index.
func markConflict(st *state, degree []int32, a, b int32) {
	da, db := degree[a], degree[b]
	var loser int32
	switch {
	case da < db:
		loser = a
	case db < da:
		loser = b
	default:
		if a > b {
			loser = a
		} else {
			loser = b
		}
	}
	st.setConflict(loser)
}

// countConflicts returns the number of vertices currently flagged, used
// only for the per-round Stats.RepairRounds counter.
func countConflicts(st *state, n int) int {
	count := 0
	for v := 0; v < n; v++ {
		if st.isConflicted(int32(v)) {
			count++
		}
	}
	return count
}
