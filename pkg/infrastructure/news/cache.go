package news

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long fetched headlines stay fresh
const DefaultCacheTTL = time.Hour

// Entry is a cached set of headlines
type Entry struct {
	Items     []Item    `json:"items"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fresh reports whether the entry is younger than ttl at now
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}

// Cache stores headlines per (query, region)
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// CacheKey builds the cache key of a query
func CacheKey(query string, region Region) string {
	return fmt.Sprintf("news:%s:%s", strings.ToLower(string(region)), strings.ToLower(strings.TrimSpace(query)))
}

// MemoryCache is an in-process Cache
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return copyEntry(entry), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = copyEntry(entry)
	return nil
}

// Len returns the number of cached keys
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func copyEntry(e Entry) Entry {
	items := make([]Item, len(e.Items))
	copy(items, e.Items)
	return Entry{Items: items, FetchedAt: e.FetchedAt}
}
