// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package lru

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/DataDog/dlist-internal-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cache, err := New[int, int](16)
		require.NoError(t, err)
		require.NotNil(t, cache)
		assert.Equal(t, 16, cache.Capacity())
		assert.Zero(t, cache.Len())
	})

	for _, capacity := range []int{0, -1} {
		cache, err := New[int, int](capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity)
		assert.Nil(t, cache)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		t.Setenv(config.EnvCacheCapacity, "2")
		cache := NewFromEnv[string, int]()
		assert.Equal(t, 2, cache.Capacity())
	})

	t.Run("Default", func(t *testing.T) {
		t.Setenv(config.EnvCacheCapacity, "garbage")
		cache := NewFromEnv[string, int]()
		assert.Equal(t, config.DefaultCacheCapacity, cache.Capacity())
	})
}

func TestCache(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		t.Run("Miss", func(t *testing.T) {
			cache := newTestCache(t, 4)
			value, found := cache.Get(1337)
			assert.False(t, found)
			assert.Zero(t, value)
		})

		t.Run("Hit", func(t *testing.T) {
			cache := newTestCache(t, 4)
			cache.Set(1337, 42)

			value, found := cache.Get(1337)
			assert.True(t, found)
			assert.Equal(t, 42, value)
		})
	})

	t.Run("Set", func(t *testing.T) {
		cache := newTestCache(t, 4)
		assert.False(t, cache.Set(1337, 42))
		assertRecency(t, cache, 1337)

		t.Run("Overwrite", func(t *testing.T) {
			cache.Set(42, 0)
			assert.False(t, cache.Set(1337, -58008))
			value, found := cache.Peek(1337)
			require.True(t, found)
			assert.Equal(t, -58008, value)
			assert.Equal(t, 2, cache.Len())
			assertRecency(t, cache, 1337, 42)
		})
	})

	t.Run("Evict", func(t *testing.T) {
		cache := newTestCache(t, 3)
		for i := range 3 {
			assert.False(t, cache.Set(i, i))
		}
		assert.True(t, cache.Set(3, 3))
		assert.Equal(t, 3, cache.Len())

		_, found := cache.Peek(0)
		assert.False(t, found, "oldest entry should have been evicted")
		assertRecency(t, cache, 3, 2, 1)
		assert.Equal(t, uint64(1), cache.Stats().Evictions)
	})

	t.Run("GetPromotes", func(t *testing.T) {
		cache := newTestCache(t, 3)
		for i := range 3 {
			cache.Set(i, i)
		}

		// Keep the item 0 atop the recency list
		_, found := cache.Get(0)
		require.True(t, found)
		cache.Set(3, 3)

		_, found = cache.Peek(0)
		assert.True(t, found)
		_, found = cache.Peek(1)
		assert.False(t, found)
		assertRecency(t, cache, 3, 0, 2)
	})

	t.Run("PeekDoesNotPromote", func(t *testing.T) {
		cache := newTestCache(t, 2)
		cache.Set(0, 0)
		cache.Set(1, 1)

		_, found := cache.Peek(0)
		require.True(t, found)
		cache.Set(2, 2)

		_, found = cache.Peek(0)
		assert.False(t, found)
		assertRecency(t, cache, 2, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		cache := newTestCache(t, 4)
		for i := range 4 {
			cache.Set(i, i)
		}

		assert.True(t, cache.Delete(2))
		assert.False(t, cache.Delete(2))
		assert.False(t, cache.Delete(1337))
		assert.Equal(t, 3, cache.Len())
		assertRecency(t, cache, 3, 1, 0)

		// Room was made, so the next insertion does not evict.
		assert.False(t, cache.Set(4, 4))
		assertRecency(t, cache, 4, 3, 1, 0)
	})

	t.Run("Stats", func(t *testing.T) {
		cache := newTestCache(t, 1)
		assert.Zero(t, cache.Stats().HitRatio())

		cache.Set(1, 1)
		cache.Get(1)
		cache.Get(1)
		cache.Get(2)
		cache.Peek(3)
		cache.Set(2, 2)

		stats := cache.Stats()
		assert.Equal(t, Stats{Hits: 2, Misses: 1, Evictions: 1}, stats)
		assert.InDelta(t, 2./3, stats.HitRatio(), 1e-9)
	})

	t.Run("Concurrent", func(t *testing.T) {
		const capacity = 64
		cache := newTestCache(t, capacity)

		var (
			goroutineCount = runtime.GOMAXPROCS(0) * 4
			barrier        sync.WaitGroup
			wg             sync.WaitGroup
		)
		barrier.Add(goroutineCount)
		for range goroutineCount {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Synchronize the start of all the goroutines
				barrier.Done()
				barrier.Wait()

				for range 1_000 {
					key := rand.Intn(2 * capacity)
					switch rand.Intn(3) {
					case 0:
						_ = cache.Set(key, key)
					case 1:
						if value, found := cache.Get(key); found {
							assert.Equal(t, key, value)
						}
					case 2:
						_ = cache.Delete(key)
					}
				}
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, cache.Len(), capacity)
		assert.Equal(t, len(cache.lookup), cache.list.Len())
	})
}

func newTestCache(t *testing.T, capacity int) *Cache[int, int] {
	t.Helper()
	cache, err := New[int, int](capacity)
	require.NoError(t, err)
	return cache
}

// assertRecency checks that the cache holds exactly the provided keys, from
// most to least recently used, and that its index matches the recency list.
func assertRecency(t *testing.T, cache *Cache[int, int], keys ...int) {
	t.Helper()

	require.Equal(t, len(keys), cache.Len())
	require.Len(t, cache.lookup, len(keys))

	// Drain a copy of the recency order by repeatedly moving the tail to the
	// front; after Len() rotations the list is back to where it started.
	order := make([]int, 0, len(keys))
	for range cache.list.Len() {
		e, ok := cache.list.RemoveFromTail()
		require.True(t, ok)
		order = append(order, e.key)
		cache.lookup[e.key] = cache.list.AddToHead(e)
	}
	// order now lists keys from least to most recently used
	for i, key := range keys {
		assert.Equal(t, key, order[len(order)-1-i], "key at recency rank %d", i)
	}
}
