// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package testinfra

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/loader"
)

// StoreFile is the store file name inside the test directory.
const StoreFile = "trending.duckdb"

// storeSemaphore serializes DuckDB builds within a test binary.
var storeSemaphore = make(chan struct{}, 1)

// LoaderConfig returns a loader configuration for sources written to s.Dir.
func LoaderConfig(s Sources) loader.Config {
	return loader.Config{
		DatabasePath:     filepath.Join(s.Dir, StoreFile),
		CategoriesPath:   s.Categories,
		ChannelStatsPath: s.ChannelStats,
		VideosPath:       s.Videos,
		MaxMemory:        "256MB",
		Threads:          2,
	}
}

// BuildStore writes d to a temporary directory, runs the loader and returns
// the store path.
func BuildStore(t testing.TB, d Dataset) string {
	t.Helper()

	storeSemaphore <- struct{}{}
	defer func() { <-storeSemaphore }()

	src := d.Write(t, t.TempDir())
	cfg := LoaderConfig(src)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := loader.New(cfg).Run(ctx); err != nil {
		t.Fatalf("load test store: %v", err)
	}
	return cfg.DatabasePath
}

// OpenStore builds d and opens the result read-only. The store is closed
// when the test ends.
func OpenStore(t testing.TB, d Dataset) *database.DB {
	t.Helper()

	path := BuildStore(t, d)
	db, err := database.Open(database.Config{Path: path, MaxMemory: "256MB", Threads: 2})
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close test store: %v", err)
		}
	})
	return db
}

// Sample is a small multi-country dataset covering every catalog query.
//
// US has two videos with 100 and 200 views, CA one with 50. Category 22 has
// an apostrophe in its name and category 43 has no videos. Video "orphan"
// references a category id that does not exist.
func Sample() Dataset {
	return Dataset{
		Categories: [][]string{
			{"10", "Music"},
			{"22", "Kids' Content"},
			{"24", "Entertainment"},
			{"43", "Shows"},
		},
		Channels: [][]string{
			{"Channel us1", "1", "100", "100.0", "13.0"},
			{"Channel us2", "1", "200", "200.0", "9.5"},
			{"Channel ca1", "1", "50", "50.0", "4.0"},
		},
		Videos: []Row{
			Video("us1", "US", "views", "100", "category_id", "10", "engagement_rate", "13.0",
				"title_length", "10", "publish_day_of_week", "1", "publish_hour", "9", "days_to_trending", "1.0",
				"performance_class", "Standard Trending"),
			Video("us2", "US", "views", "200", "category_id", "22", "engagement_rate", "9.5",
				"title_length", "45", "publish_day_of_week", "4", "publish_hour", "18", "days_to_trending", "3.0",
				"likes", "150", "performance_class", "High-Performing"),
			Video("ca1", "CA", "views", "50", "category_id", "24", "engagement_rate", "4.0",
				"title_length", "80", "publish_day_of_week", "6", "publish_hour", "12", "days_to_trending", "45.0",
				"likes", "5", "performance_class", "Standard Trending"),
			Video("orphan", "GB", "views", "7", "category_id", "99", "channel_title", "",
				"title_length", "", "days_to_trending", "", "performance_class", "Explosive"),
		},
	}
}
