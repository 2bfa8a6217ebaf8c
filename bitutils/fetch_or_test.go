package bitutils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchOrSetsBitWithoutClobberingSiblings(t *testing.T) {
	var word uint64
	FetchOr(&word, 1<<3)
	FetchOr(&word, 1<<5)
	assert.True(t, TestBit(word, 3))
	assert.True(t, TestBit(word, 5))
	assert.False(t, TestBit(word, 4))
}

func TestFetchAndClearsOnlyTargetBit(t *testing.T) {
	word := uint64(1<<3 | 1<<5)
	FetchAnd(&word, ^(uint64(1) << 3))
	assert.False(t, TestBit(word, 3))
	assert.True(t, TestBit(word, 5))
}

func TestFetchOrConcurrentSettersDontLoseBits(t *testing.T) {
	var word uint64
	var wg sync.WaitGroup
	for bit := uint(0); bit < 64; bit++ {
		wg.Add(1)
		go func(bit uint) {
			defer wg.Done()
			FetchOr(&word, 1<<bit)
		}(bit)
	}
	wg.Wait()
	assert.Equal(t, ^uint64(0), word)
}
