package query

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key names a cached entity collection.
type Key string

const (
	KeyProducts Key = "products"
	KeyOrders   Key = "orders"
)

// Cache is a read-through cache over the remote actor's list calls. A key
// holds the last successful snapshot until it is invalidated; concurrent
// misses on the same key collapse to a single fetch, so invalidating a key
// twice in quick succession still costs at most one re-fetch.
type Cache struct {
	mu        sync.Mutex
	snapshots map[Key]any
	gens      map[Key]uint64
	group     singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		snapshots: make(map[Key]any),
		gens:      make(map[Key]uint64),
	}
}

// Get returns the cached snapshot for key, fetching through fetch on a miss.
// A failed fetch is never cached: the error is returned and the next Get
// fetches again, so an error state stays distinguishable from an empty
// snapshot.
func (c *Cache) Get(ctx context.Context, key Key, fetch func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if snapshot, ok := c.snapshots[key]; ok {
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	// singleflight collapses concurrent misses into one actor call.
	snapshot, err, _ := c.group.Do(string(key), func() (any, error) {
		c.mu.Lock()
		if snapshot, ok := c.snapshots[key]; ok {
			c.mu.Unlock()
			return snapshot, nil
		}
		gen := c.gens[key]
		c.mu.Unlock()

		fresh, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// An invalidation that landed while the fetch was in flight wins:
		// the result is returned to the waiting callers but not cached, so
		// the next read re-fetches instead of seeing the pre-mutation
		// snapshot forever.
		if c.gens[key] == gen {
			c.snapshots[key] = fresh
		}
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Invalidate drops the snapshots for the given keys so the next read
// re-fetches. Bumping the key generation also outdates any fetch still in
// flight, which would otherwise re-install the snapshot it started from.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.snapshots, key)
		c.gens[key]++
	}
}

// Peek reports whether a valid snapshot exists for key, without fetching.
// Callers use it to show a loading indicator instead of treating absent data
// as an empty result.
func (c *Cache) Peek(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.snapshots[key]
	return ok
}
