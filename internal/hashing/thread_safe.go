package hashing

import (
	"sync"
	"sync/atomic"
)

type scoreKey struct {
	hash  uint64
	depth int
}

// ScoreCache stores evaluation scores keyed by position hash and remaining
// depth. It is safe for concurrent use by several searches.
type ScoreCache struct {
	mu          sync.RWMutex
	scores      map[scoreKey]int
	maxCapacity int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewScoreCache creates a cache. maxCapacity of 0 means unlimited capacity;
// once a limited cache is full new entries are dropped.
func NewScoreCache(maxCapacity int) *ScoreCache {
	return &ScoreCache{
		scores:      make(map[scoreKey]int),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached score for a position, if any.
func (c *ScoreCache) Get(hash uint64, depth int) (int, bool) {
	c.mu.RLock()
	score, ok := c.scores[scoreKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return score, ok
}

// Put stores a score. It reports false when the cache is full.
func (c *ScoreCache) Put(hash uint64, depth int, score int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := scoreKey{hash, depth}
	if _, ok := c.scores[key]; !ok && c.maxCapacity > 0 && len(c.scores) >= c.maxCapacity {
		return false
	}
	c.scores[key] = score
	return true
}

// Len returns the number of cached scores.
func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *ScoreCache) IsFull() bool {
	if c.maxCapacity <= 0 {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores) >= c.maxCapacity
}

// Stats returns the number of cache hits and misses so far.
func (c *ScoreCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
