package catalog

import "sync"

// Cache loads the catalog exactly once per process lifetime. Every Get after
// the first returns the identical in-memory catalog (or the original load
// error) without touching the source again.
type Cache struct {
	src  Source
	once sync.Once
	cat  *Catalog
	err  error
}

// NewCache creates a load-once cache for the given source.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Get returns the cached catalog, loading it on first call.
func (c *Cache) Get() (*Catalog, error) {
	c.once.Do(func() {
		c.cat, c.err = Load(c.src)
	})
	return c.cat, c.err
}
