// Package db opens the local SQLite database used for CLI assessment
// history.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garrettladley/wellscore/internal/migrations"
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Open opens the database at path, applies pragmas and pending migrations,
// and returns the pool along with the names of migrations it applied.
func Open(ctx context.Context, path string) (*sql.DB, []string, error) {
	sqlDB, err := sql.Open(driverName, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	applied, err := migrations.Apply(ctx, sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return sqlDB, applied, nil
}
