// Package redis throttles requests with counters shared through Redis, so
// every instance of the service enforces the same limit.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "luggage:ratelimit:"

// RateLimiter is a fixed-window counter. It satisfies echo's
// middleware.RateLimiterStore.
type RateLimiter struct {
	client goredis.UniversalClient
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows limit requests per identifier in each window.
func NewRateLimiter(client goredis.UniversalClient, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// NewClient connects to addr and checks the connection.
func NewClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Allow counts one request for identifier in the current window.
func (l *RateLimiter) Allow(identifier string) (bool, error) {
	return l.AllowContext(context.Background(), identifier)
}

func (l *RateLimiter) AllowContext(ctx context.Context, identifier string) (bool, error) {
	windowStart := l.now().Truncate(l.window).Unix()
	key := fmt.Sprintf("%s%s:%d", keyPrefix, identifier, windowStart)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, err
	}

	return incr.Val() <= l.limit, nil
}
