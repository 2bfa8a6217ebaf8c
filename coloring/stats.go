package coloring

import "time"

// RepairRoundStat records one repair round's conflict count, for callers
// that want the same round-by-round visibility the original source printed
// ("Iteration %d: Found %d conflicts").
type RepairRoundStat struct {
	Round         int
	ConflictCount int
}

// Stats surfaces the phase counters spec.md §6 requires the CLI to print,
// plus the transaction-style commit/abort counters the original source
// tracked in transaction_success_count / transaction_abort_count.
type Stats struct {
	Vertices int
	Edges    int
	Threads  int

	PreColoredCount int
	PreColoredUsing int32 // colors used by the pre-coloring pass

	Commits int64 // successful commits in the speculative phase and repair rounds (fast-path, serialized-owner, and safety-net assignments)
	Aborts  int64 // failed commit attempts that triggered a retry

	RepairRounds []RepairRoundStat
	SafetyNetAssignments int64 // vertices colored by the final-round unique-color fallback

	Elapsed time.Duration

	// ColorHistogram[c] is the number of vertices assigned color c, sized
	// to the final K. Populated by buildHistogram after the run completes.
	ColorHistogram []int
}

func buildHistogram(colors []int32, k int32) []int {
	hist := make([]int, k)
	for _, c := range colors {
		if c >= 0 && c < k {
			hist[c]++
		}
	}
	return hist
}
