// Package catalog loads and indexes the equipment catalog from its JSON
// source files. A catalog is write-once: after a successful Load the item
// set is immutable and safe for concurrent readers.
package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/equipment"
)

// LoadResult summarizes one load pass over the source files.
type LoadResult struct {
	ItemsLoaded int      `json:"items_loaded"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Catalog is the authoritative in-memory equipment store.
type Catalog struct {
	log *zap.Logger

	mu      sync.RWMutex
	loaded  bool
	byID    map[string]*equipment.Item
	ordered []*equipment.Item
	last    LoadResult

	sf singleflight.Group
}

// New returns an empty catalog. A nil logger is replaced with a no-op.
func New(log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		log:  log,
		byID: make(map[string]*equipment.Item),
	}
}

// Loaded reports whether a load pass has completed.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

// ByID returns the item with the given canonical ID, or nil.
func (c *Catalog) ByID(id string) *equipment.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[id]
}

// Items returns every item in load order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Items() []*equipment.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ordered
}

// EnsureLoaded loads the catalog from basePath if no load has completed
// yet. Concurrent callers collapse to a single in-flight load; once loaded
// it returns the last result without touching the filesystem again.
func (c *Catalog) EnsureLoaded(ctx context.Context, basePath string) (LoadResult, error) {
	c.mu.RLock()
	if c.loaded {
		res := c.last
		c.mu.RUnlock()
		return res, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sf.Do("load", func() (interface{}, error) {
		// Re-check after winning the flight; a concurrent caller may have
		// finished the load already.
		c.mu.RLock()
		if c.loaded {
			res := c.last
			c.mu.RUnlock()
			return res, nil
		}
		c.mu.RUnlock()
		return c.Load(ctx, basePath)
	})
	if err != nil {
		return LoadResult{}, err
	}
	return v.(LoadResult), nil
}
