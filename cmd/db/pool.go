package main

import (
	"context"
	"fmt"

	"github.com/garrettladley/wellscore/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	url := databaseURL
	if url == "" {
		cfg, err := config.ReadDatabase()
		if err != nil {
			return nil, fmt.Errorf("set DATABASE_URL or --database-url: %w", err)
		}
		url = cfg.URL
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
