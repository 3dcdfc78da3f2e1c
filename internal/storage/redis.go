package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Backend = (*RedisBackend)(nil)

const rateLimitKeyPrefix = "wellscore:ratelimit:"

type RedisConfig struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
}

// RedisBackend shares rate limit state across server instances.
type RedisBackend struct {
	client *redis.Client
	params rateLimitParams
}

func NewRedisBackend(cfg RedisConfig) (*RedisBackend, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.Limit)
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Second
	}

	return &RedisBackend{
		client: cfg.Client,
		params: rateLimitParams{
			window: window,
			limit:  cfg.Limit,
			ttl:    window + time.Second,
		},
	}, nil
}

func (r *RedisBackend) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	return runRateLimitScript(ctx, r.client, rateLimitKeyPrefix+key, r.params)
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
