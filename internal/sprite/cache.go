package sprite

import (
	"sync"

	"rgba-canvas/internal/logging"
	"rgba-canvas/internal/raster"
)

// Resolver resolves a sprite name to a decoded buffer.
// Returned buffers are shared and must not be modified.
type Resolver interface {
	Resolve(name string) *raster.FrameBuffer
}

// Cache is a concurrency-safe sprite cache.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]*raster.FrameBuffer // nil for failed loads
	missing map[string]struct{}
	index   *Index
}

// NewCache creates a new sprite cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items:   make(map[string]*raster.FrameBuffer),
		missing: make(map[string]struct{}),
		index:   index,
	}
}

// Resolve loads and caches a sprite by name. Returns nil if not found or
// not decodable; each failing name or path is logged once.
func (c *Cache) Resolve(name string) *raster.FrameBuffer {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		c.mu.Lock()
		_, seen := c.missing[name]
		c.missing[name] = struct{}{}
		c.mu.Unlock()
		if !seen {
			logging.Logger().Warn("sprite not found", "name", name)
		}
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if fb, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return fb
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	fb, err := Load(path)
	if err != nil {
		logging.Logger().Warn("sprite load failed", "path", path, "err", err)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = fb
	logging.Logger().Debug("sprite loaded", "path", path)
	return fb
}

// Len returns the number of cached entries, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
