package coloring

import (
	"graphcolor/graph"
	"graphcolor/order"
)

// highDegreeThreshold implements spec.md §4.3's T = max(50, floor(N/100)).
func highDegreeThreshold(n int) int32 {
	t := n / 100
	if t < 50 {
		t = 50
	}
	return int32(t)
}

// precolor sequentially, greedily colors the high-degree tail: vertices at
// the front of do.Order whose degree exceeds highDegreeThreshold(n). It
// runs on a single goroutine with no contention, seeding MaxColor and
// removing the worst speculation-conflict offenders before the parallel
// phase starts. Returns the number of vertices colored (H in spec.md's
// notation).
func precolor(g *graph.Graph, do *order.DegreeOrder, st *state) int {
	n := g.N()
	threshold := highDegreeThreshold(n)
	sc := &scratch{}

	h := 0
	for h < n && do.Degree[do.Order[h]] > threshold {
		v := do.Order[h]
		current := st.loadMaxColor()
		c := sc.mex(g, st, v, current)
		if c >= current {
			current = c + 1
		}
		st.storeColor(v, c)
		st.bumpMaxColorAtLeast(current)
		h++
	}
	return h
}
