package store

import (
	"context"
	"sync"
	"time"

	"github.com/tkadlec/conversions-backend/internal/dto"
)

type memoryEntry struct {
	recs    []dto.RawConversion
	expires time.Time
}

// MemoryCache is the in-process DayCache used when no Redis is configured.
// Expired entries are dropped on read.
type MemoryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, date string) ([]dto.RawConversion, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[date]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, date)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.recs, true, nil
}

func (c *MemoryCache) Set(_ context.Context, date string, recs []dto.RawConversion) error {
	c.mu.Lock()
	c.entries[date] = memoryEntry{recs: recs, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
