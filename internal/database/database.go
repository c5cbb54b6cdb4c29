// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/logging"
)

// InMemoryPath opens a private in-memory store. Used by tests.
const InMemoryPath = ":memory:"

// Config configures a store connection.
type Config struct {
	Path      string
	MaxMemory string
	Threads   int // 0 = runtime.NumCPU()

	// BreakerThreshold is the number of consecutive connection failures that
	// opens the circuit breaker. 0 uses 5.
	BreakerThreshold uint32
	// BreakerTimeout is how long the breaker stays open. 0 uses 30s.
	BreakerTimeout time.Duration
}

// ConfigFrom derives the store settings from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Path:             cfg.Database.Path,
		MaxMemory:        cfg.Database.MaxMemory,
		Threads:          cfg.Database.Threads,
		BreakerThreshold: cfg.Breaker.FailureThreshold,
		BreakerTimeout:   cfg.Breaker.Timeout,
	}
}

// DB wraps a DuckDB connection pool.
type DB struct {
	conn     *sql.DB
	cfg      Config
	readOnly bool
	breaker  *gobreaker.CircuitBreaker[any]
}

// Open opens an existing store read-only. It fails with ErrStoreUnavailable
// when the file is absent, cannot be opened, or does not carry the schema.
func Open(cfg Config) (*DB, error) {
	if cfg.Path != InMemoryPath {
		info, err := os.Stat(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, cfg.Path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrStoreUnavailable, cfg.Path)
		}
	}

	db, err := open(cfg, cfg.Path != InMemoryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ok, err := db.HasSchema(ctx)
	if err != nil || !ok {
		closeQuietly(db.conn)
		if err == nil {
			err = fmt.Errorf("missing one of tables %v", Tables)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, cfg.Path, err)
	}

	logging.Info().Str("path", cfg.Path).Bool("read_only", db.readOnly).Msg("Opened trending store")
	return db, nil
}

// Create opens a new writable store. The file must not exist yet; the loader
// builds into a fresh temporary path and swaps it into place afterwards.
func Create(cfg Config) (*DB, error) {
	if cfg.Path != InMemoryPath {
		if _, err := os.Stat(cfg.Path); err == nil {
			return nil, fmt.Errorf("refusing to create store over existing file %s", cfg.Path)
		}
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}
	return open(cfg, false)
}

func open(cfg Config, readOnly bool) (*DB, error) {
	conn, err := sql.Open("duckdb", dsn(cfg, readOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg, readOnly: readOnly}
	db.configureConnectionPool()
	db.breaker = newBreaker(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func dsn(cfg Config, readOnly bool) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	params := url.Values{}
	if readOnly {
		params.Set("access_mode", "read_only")
	} else {
		params.Set("access_mode", "read_write")
	}
	params.Set("threads", strconv.Itoa(threads))
	if cfg.MaxMemory != "" {
		params.Set("max_memory", cfg.MaxMemory)
	}
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")

	path := cfg.Path
	if path == InMemoryPath {
		path = ""
	}
	return path + "?" + params.Encode()
}

// configureConnectionPool sets pool limits. Read-only stores can serve many
// readers; a writable store is only ever used by the loader.
func (db *DB) configureConnectionPool() {
	if db.readOnly {
		db.conn.SetMaxOpenConns(runtime.NumCPU())
	} else {
		db.conn.SetMaxOpenConns(1)
	}
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// ReadOnly reports whether the store was opened with access_mode=read_only.
func (db *DB) ReadOnly() bool {
	return db.readOnly
}

// Path returns the configured store path.
func (db *DB) Path() string {
	return db.cfg.Path
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks that the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("%w: connection is nil", ErrStoreUnavailable)
	}
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Checkpoint flushes the WAL into the database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, "CHECKPOINT")
	return err
}

// Close closes the pool. Writable stores are checkpointed first so that the
// file is complete on its own, without a WAL next to it.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if !db.readOnly {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Checkpoint(ctx); err != nil {
			logging.Warn().Err(err).Str("path", db.cfg.Path).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}
	return db.conn.Close()
}
