// Package feedcache holds a short-lived snapshot of the first feed page and
// a background refresher that keeps it warm, so the hot path of the feed
// does not hit the database on every request.
package feedcache

import (
	"sync"
	"time"

	"krux_server/internal/domain"
)

type Cache struct {
	mu        sync.RWMutex
	page      domain.Page
	refreshed time.Time
	ttl       time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached first page and whether it is still fresh.
func (c *Cache) Get() (domain.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.refreshed.IsZero() || time.Since(c.refreshed) > c.ttl {
		return domain.Page{}, false
	}
	return c.page, true
}

func (c *Cache) Set(page domain.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	c.refreshed = time.Now()
}
