package coloring

import (
	"sync/atomic"

	"graphcolor/graph"
	"graphcolor/order"
	"graphcolor/workchunk"
)

// attemptCommit performs one non-locking commit attempt for vertex v, per
// spec.md §4.4's four-step primitive. It reads MaxColor once, computes mex
// over neighbor colors visible within [0, M+slack), and — if a fresh color
// is needed — attempts to advance MaxColor with a single CAS. A false
// return means a concurrent committer moved MaxColor first; the caller
// must retry the whole attempt (the mex computed against the stale M is
// no longer trustworthy).
func attemptCommit(g *graph.Graph, st *state, sc *scratch, v int32, slack int32) (committed bool, color int32) {
	m := st.loadMaxColor()
	c := sc.mex(g, st, v, m+slack)
	if c >= m {
		if !st.casMaxColor(m, c+1) {
			return false, 0
		}
	}
	st.storeColor(v, c)
	return true, c
}

// ownerCommit is the serialized owner path of spec.md §4.4: it takes the
// package-level lock, runs the commit primitive, and releases. The lock
// serializes owner-path commits against each other only; attemptCommit
// does not take it, so MaxColor may still move concurrently. ownerCommit
// therefore never aborts: it raises MaxColor to at least c+1 instead of
// verifying it, and any same-colored edge this leaves behind is caught by
// the conflict detector. Used for vertices above the contention-degree
// threshold and for vertices that exhausted their speculative retries.
func ownerCommit(g *graph.Graph, st *state, sc *scratch, v int32, slack int32) int32 {
	st.ownerMu.Lock()
	defer st.ownerMu.Unlock()
	m := st.loadMaxColor()
	c := sc.mex(g, st, v, m+slack)
	if c >= m {
		st.bumpMaxColorAtLeast(c + 1)
	}
	st.storeColor(v, c)
	return c
}

// backoff emulates the reference implementation's bounded _mm_pause spin
// (enhancedBackoff in the original source) with a tight CPU loop: Go
// exposes no portable pause intrinsic, and yielding to the scheduler via
// runtime.Gosched on every retry would turn a brief pause into a much
// longer one, so a plain bounded spin is the idiomatic substitute.
func backoff(retry int) {
	delay := retry * 10
	if delay > 1000 {
		delay = 1000
	}
	var x int64
	for i := 0; i < delay; i++ {
		x += int64(i)
	}
	_ = x
}

// speculativePhase runs spec.md §4.4 over the still-uncolored suffix of
// do.Order starting at startIdx. Workers consume that suffix in dynamic
// chunks sized by workchunk.Size so degree skew in the remaining vertices
// cannot starve idle workers once their own chunk is exhausted.
func speculativePhase(g *graph.Graph, do *order.DegreeOrder, st *state, cfg config, startIdx int, stats *Stats) {
	n := len(do.Order)
	if startIdx >= n {
		return
	}
	chunkSize := workchunk.Size(n-startIdx, cfg.threads)

	workchunk.For(startIdx, n, chunkSize, func(lo, hi int) {
		sc := &scratch{}
		var localCommits, localAborts int64
		for i := lo; i < hi; i++ {
			v := do.Order[i]
			if st.loadColor(v) != uncolored {
				continue
			}

			if do.Degree[v] > cfg.contentionDegree {
				ownerCommit(g, st, sc, v, cfg.slack)
				localCommits++
				continue
			}

			committed := false
			for retry := 0; retry < cfg.maxRetries; retry++ {
				if retry > 0 {
					backoff(retry)
				}
				ok, _ := attemptCommit(g, st, sc, v, cfg.slack)
				if ok {
					committed = true
					localCommits++
					break
				}
				localAborts++
			}
			if !committed {
				ownerCommit(g, st, sc, v, cfg.slack)
				localCommits++
			}
		}
		atomic.AddInt64(&stats.Commits, localCommits)
		atomic.AddInt64(&stats.Aborts, localAborts)
	})
}
