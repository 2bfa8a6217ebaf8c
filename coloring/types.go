package coloring

import (
	"sync"
	"sync/atomic"

	"graphcolor/bitutils"
)

// uncolored marks a vertex that has not yet been assigned a color (I-range
// invariant: color[v] == -1 until committed).
const uncolored int32 = -1

// state is the mutable per-vertex coloring being produced, plus the shared
// MaxColor counter and the packed ConflictFlag bitset. It is shared-mutable
// for the duration of a Color run: the Graph and DegreeOrder it reads are
// shared-read-only, per spec.md §3's ownership rules.
type state struct {
	n int

	colors []int32 // color[v]; mutated via atomic.Load/StoreInt32
	maxColor int32 // one past the highest color currently assigned; mutated via CAS

	conflictWords []uint64 // packed ConflictFlag bitset, 64 vertices per word

	// ownerMu serializes the high-contention owner path of §4.4, matching
	// spec.md §9's "fine-grained lock per vertex plus a global lock on
	// MaxColor" strategy collapsed to a single global lock — acceptable
	// because that path is only taken for a small, bounded subset of
	// vertices (high-degree or retry-exhausted). The final-round safety net
	// of §4.6 does not take it; it reserves colors with fetchAddMaxColor.
	ownerMu sync.Mutex
}

func newState(n int) *state {
	colors := make([]int32, n)
	for i := range colors {
		colors[i] = uncolored
	}
	return &state{
		n:             n,
		colors:        colors,
		conflictWords: make([]uint64, (n+63)/64),
	}
}

func (s *state) loadColor(v int32) int32 {
	return atomic.LoadInt32(&s.colors[v])
}

func (s *state) storeColor(v int32, c int32) {
	atomic.StoreInt32(&s.colors[v], c)
}

func (s *state) loadMaxColor() int32 {
	return atomic.LoadInt32(&s.maxColor)
}

// casMaxColor attempts to move MaxColor from old to new, returning whether
// it succeeded. A false result means a concurrent committer already moved
// MaxColor and the caller must retry the commit from scratch (spec.md
// §4.4 step 3).
func (s *state) casMaxColor(old, new int32) bool {
	return atomic.CompareAndSwapInt32(&s.maxColor, old, new)
}

// bumpMaxColorAtLeast raises MaxColor to at least target, used by the
// sequential pre-coloring pass (§4.3) which owns MaxColor exclusively and
// by the serialized owner path which already holds ownerMu.
func (s *state) bumpMaxColorAtLeast(target int32) {
	for {
		cur := s.loadMaxColor()
		if cur >= target {
			return
		}
		if s.casMaxColor(cur, target) {
			return
		}
	}
}

// fetchAddMaxColor atomically reserves a fresh unique color and returns it
// (the pre-increment value), used by the repair loop's final-round safety
// net (§4.6 step 4).
func (s *state) fetchAddMaxColor() int32 {
	for {
		cur := s.loadMaxColor()
		if s.casMaxColor(cur, cur+1) {
			return cur
		}
	}
}

func (s *state) setConflict(v int32) {
	word, bit := v/64, uint(v%64)
	bitutils.FetchOr(&s.conflictWords[word], 1<<bit)
}

func (s *state) clearConflict(v int32) {
	word, bit := v/64, uint(v%64)
	bitutils.FetchAnd(&s.conflictWords[word], ^(uint64(1) << bit))
}

func (s *state) isConflicted(v int32) bool {
	word, bit := v/64, uint(v%64)
	return bitutils.TestBit(s.conflictWords[word], bit)
}

func (s *state) clearAllConflicts() {
	for i := range s.conflictWords {
		s.conflictWords[i] = 0
	}
}

// Result is the final outcome of a Color run.
type Result struct {
	Colors []int32 // Colors[v] is the final color of vertex v
	K      int32   // number of colors used: MaxColor at termination
	Stats  Stats
}
