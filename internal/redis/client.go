// Package redis opens the shared client behind the distributed rate limiter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

type Config struct {
	URL string
	// PoolSize overrides the pool size encoded in URL when positive.
	PoolSize int
	// ClientName is reported by CLIENT LIST.
	ClientName string
}

func (c Config) options() (*redis.Options, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}
	opt, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if c.PoolSize > 0 {
		opt.PoolSize = c.PoolSize
	}
	if c.ClientName != "" {
		opt.ClientName = c.ClientName
	}
	return opt, nil
}

// New connects and pings, closing the client again if the ping fails.
func New(ctx context.Context, cfg Config) (*redis.Client, error) {
	opt, err := cfg.options()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opt.Addr, err)
	}
	return client, nil
}
