// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache holds recently computed results keyed by content hash.
package cache

import (
	"sync"
	"time"

	"github.com/jdfalk/iptc-organizer/internal/metrics"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
	storedAt  time.Time
}

// Cache is a generic TTL cache with a bounded number of entries, safe for
// concurrent use. When full, expired entries are dropped first and then
// the oldest one.
type Cache[T any] struct {
	name       string
	mu         sync.RWMutex
	items      map[string]entry[T]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache. name labels its hit and miss metrics; maxEntries
// <= 0 means unbounded.
func New[T any](name string, ttl time.Duration, maxEntries int) *Cache[T] {
	return &Cache[T]{
		name:       name,
		items:      make(map[string]entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get retrieves a value if it exists and hasn't expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		metrics.ObserveCacheLookup(c.name, false)
		var zero T
		return zero, false
	}
	metrics.ObserveCacheLookup(c.name, true)
	return e.value, true
}

// Set stores a value, evicting if the cache is full.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.items[key] = entry[T]{value: value, expiresAt: now.Add(c.ttl), storedAt: now}
}

func (c *Cache[T]) evictLocked(now time.Time) {
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
	if len(c.items) < c.maxEntries {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.items {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	delete(c.items, oldestKey)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
