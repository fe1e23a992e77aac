package cache

import "container/list"

// Cache is a generic LRU cache of owned values. Every value that leaves the
// cache, through eviction, Delete or Clear, is handed to the release callback
// exactly once.
//
// Cache is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	entries map[K]*list.Element
	order   *list.List // front is most recently used
	limit   int
	release func(K, V)

	hits, misses, evictions uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most limit entries. A limit of 0 means
// unlimited. release may be nil.
func New[K comparable, V any](limit int, release func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*list.Element),
		order:   list.New(),
		limit:   max(limit, 0),
		release: release,
	}
}

// Get retrieves a value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// GetOrCreate returns the cached value for key or stores the result of
// create. Storing may evict the least recently used entry.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: v})
	for c.limit > 0 && c.order.Len() > c.limit {
		c.drop(c.order.Back())
		c.evictions++
	}
	return v
}

// Delete removes and releases the entry for key.
// Returns true if the entry was found.
func (c *Cache[K, V]) Delete(key K) bool {
	el, ok := c.entries[key]
	if ok {
		c.drop(el)
	}
	return ok
}

// Clear releases every entry, least recently used first, and empties the
// cache.
func (c *Cache[K, V]) Clear() {
	for el := c.order.Back(); el != nil; el = c.order.Back() {
		c.drop(el)
	}
}

// drop unlinks el and releases its value.
func (c *Cache[K, V]) drop(el *list.Element) {
	e := c.order.Remove(el).(*entry[K, V])
	delete(c.entries, e.key)
	if c.release != nil {
		c.release(e.key, e.value)
	}
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the entry limit of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.limit
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the entry limit, 0 when unlimited.
	Capacity int
	// Hits is the number of Get hits.
	Hits uint64
	// Misses is the number of Get misses.
	Misses uint64
	// HitRate is the hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped for exceeding the limit.
	Evictions uint64
}
