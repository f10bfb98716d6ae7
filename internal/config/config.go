// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package config

import (
	"os"
	"strconv"

	"github.com/DataDog/dlist-internal-go/log"
)

// Configuration environment variables
const (
	EnvCacheCapacity = "DD_LRU_CACHE_CAPACITY"
)

// Configuration constants and default values
const (
	DefaultCacheCapacity = 4_096
)

// CacheCapacityFromEnv returns the maximum number of entries an LRU cache
// should hold, as configured by the environment. Unset, unparsable or
// non-positive values yield [DefaultCacheCapacity].
func CacheCapacityFromEnv() int {
	val, present := os.LookupEnv(EnvCacheCapacity)
	if !present {
		return DefaultCacheCapacity
	}
	capacity, err := strconv.Atoi(val)
	if err != nil {
		log.Debug("lru: could not parse %s=%q. Defaulting to %d", EnvCacheCapacity, val, DefaultCacheCapacity)
		return DefaultCacheCapacity
	}
	if capacity < 1 {
		log.Debug("lru: %s value must be a positive integer. Defaulting to %d", EnvCacheCapacity, DefaultCacheCapacity)
		return DefaultCacheCapacity
	}
	return capacity
}
