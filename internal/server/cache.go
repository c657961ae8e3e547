package server

import (
	"sync"
	"time"

	"github.com/mj1618/winswitch/internal/model"
)

// SnapshotCache holds the last window snapshot for a TTL so that bursts of
// list calls do not re-enumerate the desktop.
type SnapshotCache struct {
	mu    sync.Mutex
	snap  *model.Snapshot
	taken time.Time
	ttl   time.Duration
	now   func() time.Time
}

// NewSnapshotCache creates a new cache. A ttl of 0 disables caching.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{ttl: ttl, now: time.Now}
}

// Get returns the cached snapshot if within TTL, otherwise builds a fresh one.
// A failed build leaves the previous snapshot in place.
// The caller must hold the provider mutex.
func (c *SnapshotCache) Get(build func() (*model.Snapshot, error)) (*model.Snapshot, error) {
	c.mu.Lock()
	if c.ttl > 0 && c.snap != nil && c.now().Sub(c.taken) < c.ttl {
		snap := c.snap
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	snap, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snap = snap
	c.taken = c.now()
	c.mu.Unlock()
	return snap, nil
}

// Last returns the most recent snapshot regardless of age, or nil.
func (c *SnapshotCache) Last() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Invalidate forces the next Get to rebuild.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.taken = time.Time{}
}
