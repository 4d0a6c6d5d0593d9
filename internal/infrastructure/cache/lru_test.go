package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a") // a is now most recent
	require.True(t, ok)
	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Stats().Evictions)
}

func TestLRU_SetUpdatesExisting(t *testing.T) {
	c := NewLRU[string, int](1)
	c.Set("a", 1)
	c.Set("a", 2)

	v, ok := c.Get("a")

	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Zero(t, c.Stats().Evictions)
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := NewLRU[string, []int](4)
	calls := 0
	compute := func() []int {
		calls++
		return []int{calls}
	}

	first := c.GetOrCompute("k", compute)
	second := c.GetOrCompute("k", compute)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[int, string](0)
	c.Set(1, "one")
	c.Remove(1)
	c.Remove(42)
	assert.Zero(t, c.Len())

	c.Set(2, "two")
	c.Clear()
	_, ok := c.Get(2)
	assert.False(t, ok)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](16)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.GetOrCompute(i%8, func() int { return i % 8 })
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, c.Len())
	for i := range 8 {
		v, ok := c.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}
