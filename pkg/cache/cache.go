// Package cache holds the order read caches: an in-process LRU for a single
// replica and a Redis-backed one shared between replicas.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by backend and result",
	}, []string{"backend", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped by capacity or TTL",
	}, []string{"backend", "cause"})
)

func observeLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lookups.WithLabelValues(backend, result).Inc()
}

type lruItem struct {
	key     string
	value   []byte
	expires time.Time
}

// LRUCache keeps at most capacity entries, each for ttl after its last write.
type LRUCache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	recency  *list.List // front is most recently used
	capacity int
	ttl      time.Duration

	janitorInterval time.Duration
	now             func() time.Time
}

type LRUOption func(*LRUCache)

func WithJanitorInterval(d time.Duration) LRUOption {
	return func(c *LRUCache) { c.janitorInterval = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) LRUOption {
	return func(c *LRUCache) { c.now = now }
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...LRUOption) *LRUCache {
	c := &LRUCache{
		items:           make(map[string]*list.Element, capacity),
		recency:         list.New(),
		capacity:        capacity,
		ttl:             ttl,
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if ok && c.expired(el) {
		c.drop(el, "ttl")
		ok = false
	}
	observeLookup("lru", ok)
	if !ok {
		return nil, false
	}

	c.recency.MoveToFront(el)
	return el.Value.(*lruItem).value, true
}

// Set stores value and restarts its TTL.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		item := el.Value.(*lruItem)
		item.value, item.expires = value, expires
		c.recency.MoveToFront(el)
		return
	}

	c.items[key] = c.recency.PushFront(&lruItem{key: key, value: value, expires: expires})
	for c.capacity > 0 && c.recency.Len() > c.capacity {
		c.drop(c.recency.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.recency.Remove(el)
		delete(c.items, key)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Start sweeps expired entries every janitor interval until ctx is done. It
// does not block.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
	return nil
}

// sweep walks from the least recently used end and returns the number of
// entries removed.
func (c *LRUCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.recency.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el) {
			c.drop(el, "ttl")
			removed++
		}
		el = prev
	}
	return removed
}

func (c *LRUCache) expired(el *list.Element) bool {
	return !c.now().Before(el.Value.(*lruItem).expires)
}

func (c *LRUCache) drop(el *list.Element, cause string) {
	c.recency.Remove(el)
	delete(c.items, el.Value.(*lruItem).key)
	evictions.WithLabelValues("lru", cause).Inc()
}
