package posters

import (
	"sync"
	"time"
)

type cacheEntry struct {
	location string
	expires  time.Time
}

// recentCache remembers mirrored poster locations for a TTL.
type recentCache struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	items map[string]cacheEntry
}

func newRecentCache(ttl time.Duration, now func() time.Time) *recentCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &recentCache{ttl: ttl, now: now, items: make(map[string]cacheEntry)}
}

// get returns the location of key once mirrored and still fresh.
func (c *recentCache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || entry.location == "" || !c.now().Before(entry.expires) {
		return "", false
	}
	return entry.location, true
}

// reserve claims key for mirroring. It fails when key is fresh or already reserved.
func (c *recentCache) reserve(key string) bool {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.items[key]; ok && now.Before(entry.expires) {
		return false
	}
	c.items[key] = cacheEntry{expires: now.Add(c.ttl)}
	c.evictLocked(now)
	return true
}

func (c *recentCache) put(key, location string) {
	c.mu.Lock()
	c.items[key] = cacheEntry{location: location, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *recentCache) forget(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *recentCache) evictLocked(now time.Time) {
	for key, entry := range c.items {
		if !now.Before(entry.expires) {
			delete(c.items, key)
		}
	}
}
