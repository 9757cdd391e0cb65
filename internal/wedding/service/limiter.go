package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
)

const (
	DefaultLoginMaxAttempts = 5
	DefaultLoginWindow      = 15 * time.Minute
)

// LockoutError reports a refused login and when the window reopens. It
// matches ErrTooManyAttempts.
type LockoutError struct {
	RetryAfter time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("%s, retry in %s", ErrTooManyAttempts, e.RetryAfter.Round(time.Second))
}

func (e *LockoutError) Is(target error) bool { return target == ErrTooManyAttempts }

// LoginLimiter counts failed logins per key in fixed windows. The counts
// live in a store.Counters so instances can share them.
type LoginLimiter struct {
	Counters    store.Counters
	MaxAttempts int
	Window      time.Duration
	Clock       Clock
}

func (l *LoginLimiter) max() int {
	if l.MaxAttempts <= 0 {
		return DefaultLoginMaxAttempts
	}
	return l.MaxAttempts
}

func (l *LoginLimiter) window() time.Duration {
	if l.Window <= 0 {
		return DefaultLoginWindow
	}
	return l.Window
}

// Check returns a *LockoutError once key has used up its attempts.
func (l *LoginLimiter) Check(ctx context.Context, key string) error {
	c, err := l.Counters.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read login attempts: %w", err)
	}
	if c.Count < l.max() {
		return nil
	}

	retry := c.ResetAt.Sub(l.Clock.Now())
	if retry < time.Second {
		retry = time.Second
	}
	return &LockoutError{RetryAfter: retry}
}

// Record counts one failed attempt against key.
func (l *LoginLimiter) Record(ctx context.Context, key string) error {
	if _, err := l.Counters.Incr(ctx, key, l.window()); err != nil {
		return fmt.Errorf("record login attempt: %w", err)
	}
	return nil
}

// Reset forgets the attempts for key after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.Counters.Reset(ctx, key); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
