package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/output"
)

// Inspector reports what commands would currently act on.
type Inspector interface {
	Targets(ctx context.Context) ([]model.WindowTarget, error)
	Monitors() ([]model.MonitorGeometry, error)
}

// TargetCache provides a TTL-based cache for target window listings.
type TargetCache struct {
	mu        sync.Mutex
	snapshot  *output.TargetsResult
	timestamp time.Time
	ttl       time.Duration
}

// NewTargetCache creates a new cache. A ttl of 0 disables caching.
func NewTargetCache(ttl time.Duration) *TargetCache {
	return &TargetCache{ttl: ttl}
}

// Snapshot returns the cached listing if within TTL, otherwise reads fresh.
func (c *TargetCache) Snapshot(ctx context.Context, in Inspector, tv int) (output.TargetsResult, error) {
	if c.ttl > 0 {
		c.mu.Lock()
		if c.snapshot != nil && time.Since(c.timestamp) < c.ttl {
			snap := *c.snapshot
			c.mu.Unlock()
			return snap, nil
		}
		c.mu.Unlock()
	}

	targets, err := in.Targets(ctx)
	if err != nil {
		return output.TargetsResult{}, fmt.Errorf("locate targets: %w", err)
	}
	monitors, err := in.Monitors()
	if err != nil {
		return output.TargetsResult{}, fmt.Errorf("enumerate monitors: %w", err)
	}
	snap := output.TargetsResult{
		TS:       time.Now().Unix(),
		Targets:  targets,
		Monitors: monitors,
		TV:       tv,
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.snapshot = &snap
		c.timestamp = time.Now()
		c.mu.Unlock()
	}
	return snap, nil
}

// Invalidate drops the cached listing. Every dispatched command calls it,
// since most of them move, restore or close windows.
func (c *TargetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
}
