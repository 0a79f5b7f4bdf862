package services

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value    V
	storedAt time.Time
}

// ttlCache is a small in-process cache with per-cache TTL. Expired entries
// are dropped lazily on read; the working set is bounded by the number of
// active users so no background sweeper is needed.
type ttlCache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry[V]
}

func newTTLCache[V any](ttl time.Duration) *ttlCache[V] {
	return &ttlCache[V]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[V]),
	}
}

// Get returns the cached value and its storage time when present and fresh
func (c *ttlCache[V]) Get(key string) (V, time.Time, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Since(entry.storedAt) > c.ttl {
		if ok {
			c.Invalidate(key)
		}
		var zero V
		return zero, time.Time{}, false
	}
	return entry.value, entry.storedAt, true
}

func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = cacheEntry[V]{value: value, storedAt: time.Now()}
	c.mu.Unlock()
}

func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *ttlCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
