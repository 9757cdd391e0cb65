// Package redis backs short lived counters with Redis so several
// instances share one view of login attempts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/store"
	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "wedding:counter:"

type Counters struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

var _ store.Counters = (*Counters)(nil)

// NewCounters wraps an existing client.
func NewCounters(rdb *redis.Client, prefix string) *Counters {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Counters{rdb: rdb, prefix: prefix, now: time.Now}
}

// Open parses a redis:// URL, connects and pings the server.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (c *Counters) Get(ctx context.Context, key string) (store.Counter, error) {
	k := c.prefix + key

	var (
		get *redis.StringCmd
		ttl *redis.DurationCmd
	)
	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return store.Counter{}, fmt.Errorf("get counter: %w", err)
	}

	n, err := get.Int()
	if errors.Is(err, redis.Nil) {
		return store.Counter{}, nil
	}
	if err != nil {
		return store.Counter{}, fmt.Errorf("get counter: %w", err)
	}
	return c.counter(n, ttl.Val()), nil
}

func (c *Counters) Incr(ctx context.Context, key string, window time.Duration) (store.Counter, error) {
	k := c.prefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, window)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return store.Counter{}, fmt.Errorf("incr counter: %w", err)
	}
	return c.counter(int(incr.Val()), ttl.Val()), nil
}

func (c *Counters) Reset(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("reset counter: %w", err)
	}
	return nil
}

// counter turns a remaining TTL into an absolute reset time. Keys
// without an expiry report a reset time of now.
func (c *Counters) counter(n int, ttl time.Duration) store.Counter {
	if ttl < 0 {
		ttl = 0
	}
	return store.Counter{Count: n, ResetAt: c.now().Add(ttl)}
}

// Ping checks the connection for readiness probes.
func (c *Counters) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
