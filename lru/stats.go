// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package lru

import "go.uber.org/atomic"

type (
	// Stats is a snapshot of the activity of a [Cache].
	Stats struct {
		Hits      uint64 // Calls to [Cache.Get] that found their key
		Misses    uint64 // Calls to [Cache.Get] that did not
		Evictions uint64 // Entries dropped to make room for new ones
	}

	counters struct {
		hits      atomic.Uint64
		misses    atomic.Uint64
		evictions atomic.Uint64
	}
)

// Stats returns the current activity counters of the cache. It does not block
// concurrent operations, so the individual counters may be slightly out of
// step with each other.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.stats.hits.Load(),
		Misses:    c.stats.misses.Load(),
		Evictions: c.stats.evictions.Load(),
	}
}

// HitRatio returns the proportion of lookups that were hits, or 0 if there
// were none.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
