package scanner

// outcome is a memoised parse result, error included.
type outcome[V any] struct {
	value V
	err   error
}

// Cache memoises parse outcomes by file name for a single scan pass.
// Not safe for concurrent use; a pass is single-threaded.
type Cache[V any] struct {
	entries map[string]outcome[V]
	hits    int
}

// NewCache creates an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]outcome[V])}
}

// Load returns the cached outcome for name, calling parse on first use.
// Failures are cached too, so a file is never parsed twice.
func (c *Cache[V]) Load(name string, parse func() (V, error)) (V, error) {
	if o, ok := c.entries[name]; ok {
		c.hits++
		return o.value, o.err
	}

	value, err := parse()
	c.entries[name] = outcome[V]{value: value, err: err}
	return value, err
}

// Len returns the number of distinct names parsed.
func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Hits returns how many lookups were served from the cache.
func (c *Cache[V]) Hits() int {
	return c.hits
}
