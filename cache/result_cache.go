// Package cache memoizes results of the pure numeric routines.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/numerics/math"
)

var (
	// Metrics.
	resultCacheMiss = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "result_cache_miss",
		Help: "The number of result requests that aren't present in the cache.",
	}, []string{"operation"})
	resultCacheHit = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "result_cache_hit",
		Help: "The number of result requests that are present in the cache.",
	}, []string{"operation"})
)

// ResultKey identifies one memoized call.
type ResultKey struct {
	Op    math.Operation
	Input int64
}

// ResultCache is a fixed size LRU of numeric results. It is safe for concurrent use.
type ResultCache struct {
	lru *lru.Cache[ResultKey, int64]
}

// NewResultCache creates a result cache holding at most size entries.
func NewResultCache(size int) (*ResultCache, error) {
	c, err := lru.New[ResultKey, int64](size)
	if err != nil {
		return nil, ErrCacheCannotBeNil
	}
	return &ResultCache{lru: c}, nil
}

// Get returns the cached result for op applied to input, or ErrNotFound.
func (c *ResultCache) Get(op math.Operation, input int64) (int64, error) {
	v, ok := c.lru.Get(ResultKey{Op: op, Input: input})
	if !ok {
		resultCacheMiss.WithLabelValues(string(op)).Inc()
		return 0, ErrNotFound
	}
	resultCacheHit.WithLabelValues(string(op)).Inc()
	return v, nil
}

// Add stores a result.
func (c *ResultCache) Add(op math.Operation, input, result int64) {
	c.lru.Add(ResultKey{Op: op, Input: input}, result)
}

// GetOrCompute returns the cached result, or runs compute and caches what it
// returns. Errors are never cached.
func (c *ResultCache) GetOrCompute(op math.Operation, input int64, compute func(int64) (int64, error)) (int64, error) {
	if v, err := c.Get(op, input); err == nil {
		return v, nil
	}
	v, err := compute(input)
	if err != nil {
		return 0, err
	}
	c.Add(op, input, v)
	return v, nil
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached result.
func (c *ResultCache) Purge() {
	c.lru.Purge()
}
