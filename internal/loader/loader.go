// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/metrics"
)

const (
	DefaultChunkSize     = 10000
	DefaultTopCategories = 5
)

var errLoadInProgress = errors.New("load already in progress")

// Config locates the sources and the target store.
type Config struct {
	DatabasePath     string
	CategoriesPath   string
	ChannelStatsPath string
	VideosPath       string

	ChunkSize     int
	TopCategories int

	// DuckDB settings for the build.
	MaxMemory string
	Threads   int
}

// ConfigFrom derives a loader Config from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		DatabasePath:     cfg.Database.Path,
		CategoriesPath:   cfg.Loader.CategoriesPath(),
		ChannelStatsPath: cfg.Loader.ChannelStatsPath(),
		VideosPath:       cfg.Loader.VideosPath(),
		ChunkSize:        cfg.Loader.ChunkSize,
		TopCategories:    cfg.Loader.TopCategories,
		MaxMemory:        cfg.Database.MaxMemory,
		Threads:          cfg.Database.Threads,
	}
}

// Loader rebuilds the store. A Loader runs one load at a time.
type Loader struct {
	cfg Config

	mu      sync.RWMutex
	running bool
	stats   *Stats
}

// New creates a Loader, filling in defaults for unset sizes.
func New(cfg Config) *Loader {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.TopCategories <= 0 {
		cfg.TopCategories = DefaultTopCategories
	}
	return &Loader{cfg: cfg}
}

// Run builds a fresh store from the sources and swaps it over the target.
// On error the previous store, if any, is left as it was.
func (l *Loader) Run(ctx context.Context) (*Report, error) {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return nil, errLoadInProgress
	}
	l.running = true
	l.stats = &Stats{StartTime: time.Now()}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.stats.EndTime = time.Now()
		l.mu.Unlock()
	}()

	logging.Info().
		Str("target", l.cfg.DatabasePath).
		Str("categories", l.cfg.CategoriesPath).
		Str("channel_stats", l.cfg.ChannelStatsPath).
		Str("videos", l.cfg.VideosPath).
		Int("chunk_size", l.cfg.ChunkSize).
		Msg("Starting store rebuild")

	report, err := l.run(ctx)
	metrics.RecordLoad(time.Since(l.stats.StartTime), failureReason(err))
	if err != nil {
		logging.Error().Err(err).Str("target", l.cfg.DatabasePath).Msg("Store rebuild aborted")
		return nil, err
	}

	logging.Info().
		Str("target", l.cfg.DatabasePath).
		Int64("categories", report.Categories).
		Int64("channel_stats", report.ChannelStats).
		Int64("videos", report.Videos).
		Dur("duration", report.Duration).
		Msg("Store rebuild completed")
	return report, nil
}

func (l *Loader) run(ctx context.Context) (report *Report, err error) {
	if err := l.checkSources(); err != nil {
		return nil, err
	}

	target := l.cfg.DatabasePath
	tmp := filepath.Join(filepath.Dir(target), filepath.Base(target)+".building-"+uuid.NewString())

	db, err := database.Create(database.Config{Path: tmp, MaxMemory: l.cfg.MaxMemory, Threads: l.cfg.Threads})
	if err != nil {
		return nil, fmt.Errorf("create build store: %w", err)
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			closeQuietly(db)
		}
		removeBuildFiles(tmp)
	}()

	if err = db.CreateSchema(ctx); err != nil {
		return nil, err
	}
	if err = l.loadCategories(ctx, db); err != nil {
		return nil, err
	}
	if err = l.loadChannelStats(ctx, db); err != nil {
		return nil, err
	}
	dropped, err := l.loadVideos(ctx, db)
	if err != nil {
		return nil, err
	}
	if err = db.CreateIndexes(ctx); err != nil {
		return nil, err
	}

	diag, err := db.ValidationReport(ctx, l.cfg.TopCategories)
	if err != nil {
		return nil, fmt.Errorf("validation report: %w", err)
	}

	closed = true
	if err = db.Close(); err != nil {
		return nil, fmt.Errorf("close build store: %w", err)
	}
	if err = swap(tmp, target); err != nil {
		return nil, err
	}

	stats := l.Stats()
	return &Report{
		LoadReport:          *diag,
		Path:                target,
		Duration:            stats.Duration(),
		Chunks:              stats.Chunks,
		CategoriesDropped:   stats.CategoriesDropped,
		ChannelStatsDropped: stats.ChannelStatsDropped,
		DroppedColumns:      dropped,
	}, nil
}

// checkSources fails fast before any store file is created.
func (l *Loader) checkSources() error {
	for _, p := range []string{l.cfg.CategoriesPath, l.cfg.ChannelStatsPath, l.cfg.VideosPath} {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMissingSource, p)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrMissingSource, p)
		}
	}
	return nil
}

func (l *Loader) loadCategories(ctx context.Context, db *database.DB) error {
	n, dropped, err := loadDimension(ctx, db, l.cfg.CategoriesPath, database.CategoriesTable, true)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.stats.Categories = int64(n)
	l.stats.CategoriesDropped = int64(dropped)
	l.mu.Unlock()
	l.progress().dimensionLoaded(database.CategoriesTable.Name, n, dropped)
	return nil
}

func (l *Loader) loadChannelStats(ctx context.Context, db *database.DB) error {
	n, dropped, err := loadDimension(ctx, db, l.cfg.ChannelStatsPath, database.ChannelStatsTable, false)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.stats.ChannelStats = int64(n)
	l.stats.ChannelStatsDropped = int64(dropped)
	l.mu.Unlock()
	l.progress().dimensionLoaded(database.ChannelStatsTable.Name, n, dropped)
	return nil
}

// loadDimension reads a small file whole, deduplicates it on its primary key
// and inserts it in one transaction.
func loadDimension(ctx context.Context, db *database.DB, path string, table database.TableSchema, keepLast bool) (inserted, dropped int, err error) {
	src, err := openSource(path, table)
	if err != nil {
		return 0, 0, err
	}
	defer closeQuietly(src)

	rows, err := src.readAll()
	if err != nil {
		return 0, 0, err
	}
	rows, dropped = dedupe(rows, 0, keepLast)

	if err := db.InsertRows(ctx, table.Name, table.ColumnNames(), rows); err != nil {
		return 0, 0, fmt.Errorf("load %s: %w", table.Name, err)
	}
	return len(rows), dropped, nil
}

// loadVideos streams the fact file in chunks, one transaction per chunk.
// It returns the source columns that were dropped.
func (l *Loader) loadVideos(ctx context.Context, db *database.DB) ([]string, error) {
	table := database.VideosTable
	src, err := openSource(l.cfg.VideosPath, table)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(src)

	cols := table.ColumnNames()
	chunk := make([][]interface{}, 0, l.cfg.ChunkSize)
	p := l.progress()

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := db.InsertRows(ctx, table.Name, cols, chunk); err != nil {
			if database.IsDuplicateKey(err) {
				return fmt.Errorf("%w: %s near line %d: %w", ErrDuplicateKey, src.name, src.line, err)
			}
			return fmt.Errorf("load %s: %w", table.Name, err)
		}
		l.mu.Lock()
		p.chunkCommitted(table.Name, len(chunk))
		l.mu.Unlock()
		chunk = chunk[:0]
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := src.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		chunk = append(chunk, row)
		if len(chunk) >= l.cfg.ChunkSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return src.dropped, nil
}

func (l *Loader) progress() *progress {
	return &progress{stats: l.stats}
}

// swap moves the finished build over target. The rename replaces target
// atomically; a stale WAL of the old store is removed first so that DuckDB
// does not replay it against the new file.
func swap(tmp, target string) error {
	if err := removeIfExists(target + ".wal"); err != nil {
		return fmt.Errorf("remove stale WAL: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("swap %s into place: %w", target, err)
	}
	return nil
}

func removeBuildFiles(tmp string) {
	for _, p := range []string{tmp, tmp + ".wal"} {
		if err := removeIfExists(p); err != nil {
			logging.Warn().Err(err).Str("path", p).Msg("Failed to remove build file")
		}
	}
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Stats returns a copy of the current or last load's counters.
func (l *Loader) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stats == nil {
		return Stats{}
	}
	return *l.stats
}

// IsRunning reports whether a load is in progress.
func (l *Loader) IsRunning() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}
