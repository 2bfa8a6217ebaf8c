package workchunk

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeHonorsFloor(t *testing.T) {
	assert.Equal(t, 32, Size(10, 4))
}

func TestSizeScalesWithWorkers(t *testing.T) {
	small := Size(100_000, 1)
	large := Size(100_000, 16)
	assert.Greater(t, small, large)
}

func TestForCoversRangeExactlyOnce(t *testing.T) {
	const n = 10_000
	var counts [n]int32
	For(0, n, Size(n, 8), func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})
	for i, c := range counts {
		assert.Equalf(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestForEmptyRangeRunsNothing(t *testing.T) {
	called := false
	For(5, 5, 32, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestCompactFiltersAndPreservesOrder(t *testing.T) {
	got := Compact(50, 8, func(i int) bool { return i%3 == 0 })
	for i, v := range got {
		if i > 0 {
			assert.Less(t, got[i-1], v)
		}
		assert.Equal(t, 0, v%3)
	}
	assert.Equal(t, 17, len(got)) // 0,3,...,48
}
