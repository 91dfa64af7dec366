package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a typed TTL cache keyed by string. Each cached concern (template
// set, answer catalog, per-order rows) gets its own Cache with its own TTL,
// so staleness windows are explicit data rather than a shared policy.
type Cache[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry[T]
}

func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
}

// GetOrPopulate returns the cached value for key if fresh; otherwise it calls
// populate and caches the result. populate runs outside the cache lock, so
// concurrent callers may refresh the same key twice; the refresh is
// idempotent and last write wins. Errors are never cached.
func (c *Cache[T]) GetOrPopulate(ctx context.Context, key string, populate func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err := populate(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}
