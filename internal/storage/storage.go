package storage

import (
	"context"
	"time"
)

type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// Backend is a rate limiter with a lifecycle, checked by /health.
type Backend interface {
	RateLimiter

	Close() error

	Ping(ctx context.Context) error
}
