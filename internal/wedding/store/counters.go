package store

import (
	"context"
	"time"
)

// Counter is the state of one fixed window.
type Counter struct {
	Count   int
	ResetAt time.Time
}

// Counters keeps short lived attempt counters. Implementations must be
// safe for concurrent use; a shared backend lets several instances agree
// on the same counts.
type Counters interface {
	// Get returns the live counter for key. A missing or lapsed key
	// reports a zero Counter.
	Get(ctx context.Context, key string) (Counter, error)

	// Incr adds one to key. The first increment opens a window of the
	// given length; later ones leave ResetAt untouched.
	Incr(ctx context.Context, key string, window time.Duration) (Counter, error)

	Reset(ctx context.Context, key string) error
}
