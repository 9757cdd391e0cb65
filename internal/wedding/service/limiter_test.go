package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestLoginLimiterFixedWindow(t *testing.T) {
	ctx := context.Background()
	now := testNow
	clock := func() time.Time { return now }

	l := &LoginLimiter{
		Counters:    memory.NewCountersWithClock(clock),
		MaxAttempts: 3,
		Window:      10 * time.Minute,
		Clock:       clock,
	}

	for range 3 {
		require.NoError(t, l.Check(ctx, "alex|10.0.0.1"))
		require.NoError(t, l.Record(ctx, "alex|10.0.0.1"))
	}

	now = now.Add(4 * time.Minute)
	err := l.Check(ctx, "alex|10.0.0.1")
	require.ErrorIs(t, err, ErrTooManyAttempts)

	var lockout *LockoutError
	require.ErrorAs(t, err, &lockout)
	require.Equal(t, 6*time.Minute, lockout.RetryAfter)

	require.NoError(t, l.Check(ctx, "alex|10.0.0.2"), "keys are independent")

	now = now.Add(6 * time.Minute)
	require.NoError(t, l.Check(ctx, "alex|10.0.0.1"), "window lapsed")
}

func TestLoginLimiterReset(t *testing.T) {
	ctx := context.Background()
	l := &LoginLimiter{Counters: memory.NewCounters(), MaxAttempts: 1}

	require.NoError(t, l.Record(ctx, "k"))
	require.ErrorIs(t, l.Check(ctx, "k"), ErrTooManyAttempts)

	require.NoError(t, l.Reset(ctx, "k"))
	require.NoError(t, l.Check(ctx, "k"))
}

func TestLoginLimiterDefaults(t *testing.T) {
	l := &LoginLimiter{}
	require.Equal(t, DefaultLoginMaxAttempts, l.max())
	require.Equal(t, DefaultLoginWindow, l.window())
}
