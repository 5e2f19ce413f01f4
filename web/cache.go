package web

import "sync"

// fillFunc computes the encoded value for a missing cache key.
type fillFunc func(key string) ([]byte, error)

// cache is a bounded fill-on-miss byte cache. When the entry count reaches
// the limit the whole map is dropped rather than evicted piecemeal;
// identicons are cheap to regenerate and the reset keeps the bookkeeping
// trivial.
type cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	fill    fillFunc
	limit   int
}

func newCache(limit int, fill fillFunc) *cache {
	return &cache{
		entries: make(map[string][]byte),
		fill:    fill,
		limit:   limit,
	}
}

// get returns the cached bytes for key, filling on miss. Fill errors are
// not cached.
func (c *cache) get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.entries[key]; ok {
		return b, nil
	}
	b, err := c.fill(key)
	if err != nil {
		return nil, err
	}
	if len(c.entries) >= c.limit {
		c.entries = make(map[string][]byte)
	}
	c.entries[key] = b
	return b, nil
}

// len reports the current entry count.
func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
