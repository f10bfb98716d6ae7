// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package lru provides a bounded cache that evicts its least recently used
// entries once full. Recency is tracked with a [dlist.List]: entries are
// inserted and promoted at the head of the list, and evicted from its tail.
package lru

import (
	"errors"
	"fmt"
	"sync"

	"github.com/DataDog/dlist-internal-go/dlist"
	"github.com/DataDog/dlist-internal-go/internal/config"
	"github.com/DataDog/dlist-internal-go/log"
)

// ErrInvalidCapacity is returned by [New] when the requested capacity cannot
// hold a single entry.
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

type (
	// Cache is a fixed-capacity key/value store with least recently used
	// eviction. It is safe for concurrent use.
	Cache[K comparable, V any] struct {
		mu       sync.Mutex
		lookup   map[K]*dlist.Node[*entry[K, V]] // Index into the recency list
		list     *dlist.List[*entry[K, V]]       // Recency list, most recently used first
		capacity int

		stats counters
	}

	// entry is the value held by nodes of the recency list.
	entry[K comparable, V any] struct {
		key   K
		value V
	}
)

// New creates a new, empty [Cache] that holds up to capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("lru: invalid capacity %d: %w", capacity, ErrInvalidCapacity)
	}
	return newCache[K, V](capacity), nil
}

// NewFromEnv creates a new, empty [Cache] sized according to the
// DD_LRU_CACHE_CAPACITY environment variable, or 4096 entries by default.
func NewFromEnv[K comparable, V any]() *Cache[K, V] {
	return newCache[K, V](config.CacheCapacityFromEnv())
}

func newCache[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		lookup:   make(map[K]*dlist.Node[*entry[K, V]]),
		list:     dlist.New[*entry[K, V]](),
		capacity: capacity,
	}
}

// Get returns the value associated with key, and whether it was found. A hit
// makes the entry the most recently used one.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, found := c.lookup[key]
	if !found {
		c.stats.misses.Inc()
		var zero V
		return zero, false
	}
	c.stats.hits.Inc()
	c.promote(node)
	return node.Value.value, true
}

// Peek returns the value associated with key, and whether it was found. Unlike
// [Cache.Get], it neither changes the entry's recency nor the [Stats].
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, found := c.lookup[key]
	if !found {
		var zero V
		return zero, false
	}
	return node.Value.value, true
}

// Set associates value with key, making it the most recently used entry. If
// this pushes the cache over capacity, the least recently used entry is
// dropped and true is returned.
func (c *Cache[K, V]) Set(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, found := c.lookup[key]; found {
		node.Value.value = value
		c.promote(node)
		return false
	}

	c.lookup[key] = c.list.AddToHead(&entry[K, V]{key: key, value: value})
	if c.list.Len() <= c.capacity {
		return false
	}

	oldest, _ := c.list.RemoveFromTail()
	delete(c.lookup, oldest.key)
	c.stats.evictions.Inc()
	return true
}

// Delete removes the entry associated with key, returning true if there was
// one.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, found := c.lookup[key]
	if !found {
		return false
	}
	delete(c.lookup, key)
	if err := c.list.Delete(node); err != nil {
		_ = log.Criticalf("lru: recency list is out of sync with the index: %w", err)
	}
	return true
}

// Len returns the number of entries currently held.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// Capacity returns the maximum number of entries the cache holds.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// promote moves node to the front of the recency list. The caller must hold
// [Cache.mu].
func (c *Cache[K, V]) promote(node *dlist.Node[*entry[K, V]]) {
	if err := c.list.MoveToFront(node); err != nil {
		_ = log.Criticalf("lru: recency list is out of sync with the index: %w", err)
	}
}
