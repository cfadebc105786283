package market

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"
)

// CachedSource memoizes quote batches for a TTL. Caching sits outside
// the gateway contract; wiring it up is a deployment choice made in
// cmd, not something report assembly depends on.
type CachedSource struct {
	source Source
	rates  *quoteCache[[]Rate]
	prices *quoteCache[[]Price]
}

// NewCachedSource wraps a source with per-endpoint TTL caches. Keys
// are the joined symbol lists, so only identical batches hit the cache.
func NewCachedSource(source Source, maxEntries int, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		rates:  newQuoteCache[[]Rate](maxEntries, ttl),
		prices: newQuoteCache[[]Price](maxEntries, ttl),
	}
}

var _ Source = (*CachedSource)(nil)

func (c *CachedSource) FetchRates(ctx context.Context, currencies []string) []Rate {
	key := strings.Join(currencies, ",")
	if cached, ok := c.rates.get(key); ok {
		return cached
	}
	fresh := c.source.FetchRates(ctx, currencies)
	c.rates.set(key, fresh)
	return fresh
}

func (c *CachedSource) FetchPrices(ctx context.Context, stocks []string) []Price {
	key := strings.Join(stocks, ",")
	if cached, ok := c.prices.get(key); ok {
		return cached
	}
	fresh := c.source.FetchPrices(ctx, stocks)
	c.prices.set(key, fresh)
	return fresh
}

// quoteCache is a small LRU with TTL expiry.
type quoteCache[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type cacheItem[T any] struct {
	key       string
	data      T
	expiresAt time.Time
}

func newQuoteCache[T any](maxSize int, ttl time.Duration) *quoteCache[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &quoteCache[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *quoteCache[T]) get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, exists := c.items[key]
	if !exists {
		return zero, false
	}
	item := elem.Value.(*cacheItem[T])
	if time.Now().After(item.expiresAt) {
		c.lru.Remove(elem)
		delete(c.items, key)
		return zero, false
	}
	c.lru.MoveToFront(elem)
	return item.data, true
}

func (c *quoteCache[T]) set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		item := elem.Value.(*cacheItem[T])
		item.data = data
		item.expiresAt = time.Now().Add(c.ttl)
		c.lru.MoveToFront(elem)
		return
	}
	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheItem[T]).key)
	}
	elem := c.lru.PushFront(&cacheItem[T]{
		key:       key,
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.items[key] = elem
}
