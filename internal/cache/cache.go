// Package cache provides a small sharded LRU cache for render-time lookup
// tables: Gaussian kernels keyed by sigma, font sources keyed by family.
//
// Sharding keeps lock contention low when layers are built concurrently;
// each shard holds its own map and recency list.
package cache

import (
	"container/list"
	"hash/maphash"
	"sync"
)

// shardCount must be a power of two so shard selection is a mask.
const shardCount = 8

// DefaultCapacity is the per-shard entry limit when the caller passes zero.
const DefaultCapacity = 64

var hashSeed = maphash.MakeSeed()

// Cache is a sharded LRU map. The zero value is not usable; construct with
// New. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	shards   [shardCount]shard[K, V]
	capacity int
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*list.Element
	order   *list.List // front is most recent; values are *pair[K, V]
}

type pair[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding up to capacity entries per shard.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*list.Element)
		c.shards[i].order = list.New()
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	h := maphash.Comparable(hashSeed, key)
	return &c.shards[h&(shardCount-1)]
}

// Get returns the cached value and whether it was present. A hit refreshes
// the entry's recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.order.MoveToFront(el)
	return el.Value.(*pair[K, V]).value, true
}

// GetOrCreate returns the cached value, building and storing it on a miss.
// The build function runs with the shard locked, so concurrent callers for
// the same key build at most once.
func (c *Cache[K, V]) GetOrCreate(key K, build func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.order.MoveToFront(el)
		return el.Value.(*pair[K, V]).value
	}

	value := build()
	for s.order.Len() >= c.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*pair[K, V]).key)
	}
	s.entries[key] = s.order.PushFront(&pair[K, V]{key, value})
	return value
}

// Set stores a value, replacing any existing entry for the key.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		el.Value.(*pair[K, V]).value = value
		s.order.MoveToFront(el)
		return
	}
	for s.order.Len() >= c.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*pair[K, V]).key)
	}
	s.entries[key] = s.order.PushFront(&pair[K, V]{key, value})
}

// Len reports the total entry count across shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		c.shards[i].mu.Lock()
		total += len(c.shards[i].entries)
		c.shards[i].mu.Unlock()
	}
	return total
}
