package coloring

import (
	"sync/atomic"

	"graphcolor/graph"
	"graphcolor/order"
	"graphcolor/workchunk"
)

// repairLoop implements spec.md §4.6: up to cfg.repairRounds rounds of
// detect-then-recolor. Each round is its own barrier (detectConflicts and
// recolorConflicted both return only once every worker has finished), so a
// round always sees the fully-settled output of the previous one. The loop
// exits early the first time a round finds no conflicts.
func repairLoop(g *graph.Graph, do *order.DegreeOrder, st *state, cfg config, stats *Stats) {
	for round := 1; round <= cfg.repairRounds; round++ {
		st.clearAllConflicts()
		if !detectConflicts(g, do, st, cfg) {
			return
		}

		conflictCount := countConflicts(st, g.N())
		stats.RepairRounds = append(stats.RepairRounds, RepairRoundStat{
			Round:         round,
			ConflictCount: conflictCount,
		})

		finalRound := round == cfg.repairRounds
		recolorConflicted(g, st, cfg, finalRound, stats)
	}
}

// recolorConflicted re-runs the commit primitive on every flagged vertex.
// In the final allowed round, per spec.md §4.6 step 4, flagged vertices
// instead receive a fresh, guaranteed-unique color with no neighbor check
// at all — the safety net that bounds the loop's worst case to exactly
// cfg.repairRounds rounds regardless of adversarial input.
func recolorConflicted(g *graph.Graph, st *state, cfg config, finalRound bool, stats *Stats) {
	n := g.N()
	if n == 0 {
		return
	}
	chunkSize := workchunk.Size(n, cfg.threads)

	workchunk.For(0, n, chunkSize, func(lo, hi int) {
		sc := &scratch{}
		var localCommits, localAborts, localSafety int64

		for v := lo; v < hi; v++ {
			vv := int32(v)
			if !st.isConflicted(vv) {
				continue
			}

			if finalRound {
				c := st.fetchAddMaxColor()
				st.storeColor(vv, c)
				localSafety++
				localCommits++
				continue
			}

			committed := false
			for retry := 0; retry < cfg.maxRetries; retry++ {
				if retry > 0 {
					backoff(retry)
				}
				ok, _ := attemptCommit(g, st, sc, vv, cfg.slack)
				if ok {
					committed = true
					localCommits++
					break
				}
				localAborts++
			}
			if !committed {
				ownerCommit(g, st, sc, vv, cfg.slack)
				localCommits++
			}
		}

		atomic.AddInt64(&stats.Commits, localCommits)
		atomic.AddInt64(&stats.Aborts, localAborts)
		atomic.AddInt64(&stats.SafetyNetAssignments, localSafety)
	})
}
