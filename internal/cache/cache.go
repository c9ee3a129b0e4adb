// Package cache is the client-side query cache. One instance is built
// in main and handed to every handler that needs it; mutating commands
// invalidate the keys they touch. Never a package-level global.
package cache

import (
	"fmt"
	"sync"
	"time"
)

const EventsKey = "events"

func EventKey(id int) string {
	return fmt.Sprintf("event:%d", id)
}

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

// New creates a cache whose entries live for ttl. A non-positive ttl
// disables caching entirely: Get never hits.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !time.Now().Before(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}
