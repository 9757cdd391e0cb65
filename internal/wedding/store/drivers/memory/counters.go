// Package memory holds process local store implementations.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
)

// Counters is an in-process store.Counters. Lapsed windows are dropped
// lazily and by Sweep.
type Counters struct {
	mu      sync.Mutex
	entries map[string]store.Counter
	now     func() time.Time
}

var _ store.Counters = (*Counters)(nil)

func NewCounters() *Counters {
	return NewCountersWithClock(time.Now)
}

func NewCountersWithClock(now func() time.Time) *Counters {
	return &Counters{
		entries: make(map[string]store.Counter),
		now:     now,
	}
}

func (c *Counters) Get(_ context.Context, key string) (store.Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.ResetAt) {
		delete(c.entries, key)
		return store.Counter{}, nil
	}
	return e, nil
}

func (c *Counters) Incr(_ context.Context, key string, window time.Duration) (store.Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok || !now.Before(e.ResetAt) {
		e = store.Counter{ResetAt: now.Add(window)}
	}
	e.Count++
	c.entries[key] = e
	return e, nil
}

func (c *Counters) Reset(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Sweep drops every lapsed window and returns how many were removed.
func (c *Counters) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.ResetAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}
