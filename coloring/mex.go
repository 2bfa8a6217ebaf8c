package coloring

import "graphcolor/graph"

// scratch is a per-worker reusable buffer for mex computation, avoiding a
// heap allocation on every commit attempt. This is the Go-idiomatic
// replacement for the reference implementation's stack/heap
// findMinAvailableColor buffer switch: one scratch buffer per goroutine,
// grown on demand, never shared across goroutines.
type scratch struct {
	forbidden []bool
}

func (s *scratch) ensure(size int) {
	if cap(s.forbidden) < size {
		s.forbidden = make([]bool, size)
		return
	}
	s.forbidden = s.forbidden[:size]
	for i := range s.forbidden {
		s.forbidden[i] = false
	}
}

// mex returns the smallest non-negative integer not used by any neighbor
// of v whose current color lies in [0, limit). limit is normally
// MaxColor+slack (spec.md §4.4 step 2); during the sequential pre-coloring
// pass it is simply the current MaxColor since no concurrent slack is
// needed. (Oracle does not use this helper; it runs its own greedy loop.)
func (s *scratch) mex(g *graph.Graph, st *state, v int32, limit int32) int32 {
	s.ensure(int(limit))
	nbrs, _ := g.Neighbors(int(v)) // v is always in range within this package
	for _, u := range nbrs {
		c := st.loadColor(u)
		if c >= 0 && c < limit {
			s.forbidden[c] = true
		}
	}
	for c := int32(0); c < limit; c++ {
		if !s.forbidden[c] {
			return c
		}
	}
	return limit
}
