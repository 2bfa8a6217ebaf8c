// Package verify implements spec.md §4.7's authoritative check: a run is
// reported successful only if the final coloring passes this scan. It is
// deliberately independent of the coloring package's internal state (it
// only reads graph.Graph and a plain []int32), so a bug in the commit
// primitive can never also corrupt the check that is supposed to catch it.
package verify

import (
	"fmt"

	"graphcolor/graph"
)

// Conflict describes the first offending edge found by Check, for spec.md
// §7's VerifyFail policy ("report first offending edge, exit 1").
type Conflict struct {
	U, V  int
	Color int32
}

func (c Conflict) Error() string {
	return fmt.Sprintf("verify: edge (%d,%d) both colored %d", c.U, c.V, c.Color)
}

// Check scans every edge of g and confirms invariant I3: no edge has both
// endpoints the same color. It returns nil on success, or the first
// offending Conflict found while scanning vertices in ascending index
// order and each vertex's neighbors in the order graph.Graph stores them.
//
// Check also rejects an incomplete coloring: any vertex still carrying a
// negative color fails the check, since a proper coloring names an actual
// color for every vertex.
func Check(g *graph.Graph, colors []int32) error {
	n := g.N()
	if len(colors) != n {
		return fmt.Errorf("verify: expected %d colors, got %d", n, len(colors))
	}

	for v := 0; v < n; v++ {
		if colors[v] < 0 {
			return fmt.Errorf("verify: vertex %d has no color assigned", v)
		}
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, u := range nbrs {
			if int(u) <= v {
				continue // each undirected edge checked once
			}
			if colors[v] == colors[int(u)] {
				return Conflict{U: v, V: int(u), Color: colors[v]}
			}
		}
	}
	return nil
}
