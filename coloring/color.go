// Package coloring is the core of graphcolor: it turns a graph.Graph into
// a proper vertex coloring using the pre-coloring, speculative-parallel,
// and bounded-repair pipeline of spec.md §4.3-§4.6, plus the sequential
// greedy Oracle of §4.7 used as a correctness reference by tests and by
// the -seq CLI flag.
//
// The pipeline carries the ColorState (the unexported state type: a
// MaxColor atomic counter, a per-vertex color array, and a packed
// ConflictFlag bitset) and the commit primitive that every phase after
// pre-coloring drives.
package coloring

import (
	"time"

	"graphcolor/graph"
	"graphcolor/order"
)

// Color runs the full pipeline over g and returns the resulting coloring
// plus run statistics. It returns ErrNilGraph if g is nil and
// ErrInvalidOption if any Option rejects its argument; otherwise every
// path through the pipeline terminates (spec.md §4.6's safety net
// guarantees a bounded number of repair rounds regardless of input).
func Color(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	do := order.Build(g)
	n := g.N()
	var maxDegree int32
	if n > 0 {
		maxDegree = do.Degree[do.Order[0]]
	}
	cfg.threads = adjustThreadCount(cfg.threads, n, maxDegree)

	st := newState(n)
	stats := &Stats{
		Vertices: n,
		Edges:    g.M(),
		Threads:  cfg.threads,
	}

	h := precolor(g, do, st)
	stats.PreColoredCount = h
	stats.PreColoredUsing = st.loadMaxColor()

	speculativePhase(g, do, st, cfg, h, stats)

	repairLoop(g, do, st, cfg, stats)

	stats.Elapsed = time.Since(start)

	k := st.loadMaxColor()
	stats.ColorHistogram = buildHistogram(st.colors, k)

	return &Result{
		Colors: append([]int32(nil), st.colors...),
		K:      k,
		Stats:  *stats,
	}, nil
}
