package cachesvc

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/trezcool/stockwise/core/market"
)

var NowFunc = time.Now // mockable

type memoryEntry struct {
	quote     market.Quote
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

var _ market.Cache = (*memoryCache)(nil) // interface compliance check

// NewMemoryCache is the quote cache used when no redis server is configured.
func NewMemoryCache() market.Cache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

func (c *memoryCache) GetQuote(_ context.Context, code string) (market.Quote, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToUpper(code)
	entry, ok := c.entries[key]
	if !ok {
		return market.Quote{}, false, nil
	}
	if NowFunc().After(entry.expiresAt) {
		delete(c.entries, key)
		return market.Quote{}, false, nil
	}
	return entry.quote, true, nil
}

func (c *memoryCache) SetQuote(_ context.Context, code string, q market.Quote, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[strings.ToUpper(code)] = memoryEntry{quote: q, expiresAt: NowFunc().Add(ttl)}
	return nil
}
