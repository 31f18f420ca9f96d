package texture

import (
	"image"
	"log/slog"
	"sync"
)

// Resolver resolves a texture name to a decoded RGBA image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache.
// Names missing from the index fall back to Procedural.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a new texture cache backed by the given index (may be nil).
func NewCache(index *Index) *Cache {
	if index == nil {
		index = &Index{entries: make(map[string]string)}
	}
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	if texName == "" {
		return nil
	}
	key := texName
	path, onDisk := c.index.ResolvePath(texName)
	if onDisk {
		key = path
	}

	// Fast path: read lock
	c.mu.RLock()
	if img, exists := c.items[key]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	// Slow path: load from disk or generate
	var img *image.NRGBA
	if onDisk {
		var err error
		img, err = LoadTexture(path)
		if err != nil {
			slog.Warn("texture load failed, using built-in", "name", texName, "err", err)
		}
	}
	if img == nil {
		img = Procedural(texName)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[key]; exists {
		return cached
	}
	c.items[key] = img
	return img
}
