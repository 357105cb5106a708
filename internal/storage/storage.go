// Package storage opens the relational store and creates its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options describes how to reach the store.
type Options struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryDelay      time.Duration
}

// Open connects to the configured store, retrying the initial ping.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (*bun.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	retries := opts.ConnectRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		logger.Info("Attempting to connect to database",
			zap.String("driver", opts.Driver),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", retries))

		db, err := open(opts)
		if err != nil {
			return nil, err
		}

		if logger.Core().Enabled(zap.DebugLevel) {
			db.AddQueryHook(bundebug.NewQueryHook(
				bundebug.WithVerbose(true),
				bundebug.FromEnv("BUNDEBUG"),
			))
		}

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			logger.Info("Connected to database", zap.String("driver", opts.Driver), zap.Int("attempt", attempt))
			return db, nil
		}

		logger.Warn("Failed to connect to database", zap.Int("attempt", attempt), zap.Error(lastErr))
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database connection", zap.Error(err))
		}

		if attempt < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retries, lastErr)
}

func open(opts Options) (*bun.DB, error) {
	switch opts.Driver {
	case DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(opts.DSN)))
		configurePool(sqldb, opts)
		return bun.NewDB(sqldb, pgdialect.New()), nil

	case DriverSQLite:
		sqldb, err := sql.Open("sqlite", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite serialises writers; one connection also keeps in-memory data alive.
		sqldb.SetMaxOpenConns(1)
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
}

func configurePool(sqldb *sql.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqldb.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}
