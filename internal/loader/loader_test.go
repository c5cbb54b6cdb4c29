// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/loader"
	"github.com/tomtom215/trendlens/internal/testinfra"
)

// load writes d into dir and runs the loader against dir/trending.duckdb.
func load(t *testing.T, dir string, d testinfra.Dataset, opts ...func(*loader.Config)) (*loader.Report, error) {
	t.Helper()
	cfg := testinfra.LoaderConfig(d.Write(t, dir))
	for _, o := range opts {
		o(&cfg)
	}
	return loader.New(cfg).Run(context.Background())
}

func openStore(t *testing.T, path string) *database.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: path, Threads: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// buildFiles lists leftover temporary build files in dir.
func buildFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.Contains(e.Name(), ".building-") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestRun_Sample(t *testing.T) {
	dir := t.TempDir()
	report, err := load(t, dir, testinfra.Sample())
	require.NoError(t, err)

	assert.EqualValues(t, 4, report.Categories)
	assert.EqualValues(t, 3, report.ChannelStats)
	assert.EqualValues(t, 4, report.Videos)
	assert.Equal(t, 1, report.Chunks)
	assert.ElementsMatch(t, []string{"category_name", "title_length_category"}, report.DroppedColumns)
	assert.Equal(t, filepath.Join(dir, testinfra.StoreFile), report.Path)

	require.NotEmpty(t, report.VideosByCountry)
	assert.Equal(t, "US", report.VideosByCountry[0].Value)
	assert.EqualValues(t, 2, report.VideosByCountry[0].Count)

	// The orphaned category id drops out of the inner join.
	var catTotal int64
	for _, c := range report.TopCategories {
		catTotal += c.Count
	}
	assert.EqualValues(t, 3, catTotal)

	require.NotNil(t, report.MinTrendingDate)
	assert.Equal(t, "17.14.11", *report.MinTrendingDate)
	assert.Empty(t, buildFiles(t, dir))

	db := openStore(t, report.Path)
	assert.True(t, db.ReadOnly())
	indexes, err := db.ListIndexes(context.Background())
	require.NoError(t, err)
	assert.Len(t, indexes, len(database.VideoIndexes))
}

func TestRun_DeduplicatesDimensions(t *testing.T) {
	d := testinfra.Sample()
	d.Categories = [][]string{
		{"1", "Film"},
		{"2", "Autos"},
		{"1", "Film & Animation"},
		{"10", "Music"},
		{"15", "Pets & Animals"},
	}
	d.Channels = [][]string{
		{"Channel us1", "1", "100", "100.0", "13.0"},
		{"Channel us1", "9", "900", "100.0", "1.0"},
		{"Channel ca1", "1", "50", "50.0", "4.0"},
	}

	report, err := load(t, t.TempDir(), d)
	require.NoError(t, err)
	assert.EqualValues(t, 4, report.Categories)
	assert.EqualValues(t, 1, report.CategoriesDropped)
	assert.EqualValues(t, 2, report.ChannelStats)
	assert.EqualValues(t, 1, report.ChannelStatsDropped)

	db := openStore(t, report.Path)
	ctx := context.Background()

	cats, err := db.GetCategoriesTable(ctx)
	require.NoError(t, err)
	names := map[int64]string{}
	for _, c := range cats {
		names[c.CategoryID] = c.CategoryName
	}
	assert.Equal(t, "Film & Animation", names[1], "last occurrence wins")

	channels, err := db.GetChannelStatsTable(ctx, 10)
	require.NoError(t, err)
	for _, c := range channels {
		if c.ChannelTitle == "Channel us1" {
			assert.EqualValues(t, 1, c.VideoCount, "first occurrence wins")
		}
	}
}

func TestRun_MissingColumnKeepsPreviousStore(t *testing.T) {
	dir := t.TempDir()
	first, err := load(t, dir, testinfra.Sample())
	require.NoError(t, err)
	before, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	broken := testinfra.Sample()
	broken.VideoHeader = testinfra.HeaderWithout("views", "tag_count")
	_, err = load(t, dir, broken)

	require.ErrorIs(t, err, loader.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "views")
	assert.Contains(t, err.Error(), "tag_count")
	assert.Empty(t, buildFiles(t, dir))

	after, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "previous store must be untouched")

	db := openStore(t, first.Path)
	n, err := db.GetVideosCount(context.Background(), "")
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestRun_ExtraColumnDropped(t *testing.T) {
	d := testinfra.Sample()
	d.VideoHeader = append(testinfra.VideoHeader(), "trending_rank")
	for _, v := range d.Videos {
		v["trending_rank"] = "3"
	}

	report, err := load(t, t.TempDir(), d)
	require.NoError(t, err)
	assert.Contains(t, report.DroppedColumns, "trending_rank")
	assert.EqualValues(t, 4, report.Videos)
}

func TestRun_DuplicateVideoKey(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
	}{
		{"same chunk", 100},
		{"across chunks", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testinfra.Sample()
			d.Videos = append(d.Videos, testinfra.Video("us1", "US", "views", "999"))

			dir := t.TempDir()
			_, err := load(t, dir, d, func(c *loader.Config) { c.ChunkSize = tt.chunkSize })
			require.ErrorIs(t, err, loader.ErrDuplicateKey)
			assert.Empty(t, buildFiles(t, dir))
			assert.NoFileExists(t, filepath.Join(dir, testinfra.StoreFile))
		})
	}
}

func TestRun_SameVideoOtherDateOrCountry(t *testing.T) {
	d := testinfra.Sample()
	d.Videos = append(d.Videos,
		testinfra.Video("us1", "US", "trending_date", "17.15.11"),
		testinfra.Video("us1", "CA"),
	)

	report, err := load(t, t.TempDir(), d)
	require.NoError(t, err)
	assert.EqualValues(t, 6, report.Videos)
}

func TestRun_MalformedCells(t *testing.T) {
	tests := []struct {
		name   string
		column string
		value  string
	}{
		{"fractional views", "views", "1.5"},
		{"text likes", "likes", "lots"},
		{"nan engagement", "engagement_rate", "NaN"},
		{"bad flag", "comments_disabled", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testinfra.Sample()
			d.Videos[1][tt.column] = tt.value

			_, err := load(t, t.TempDir(), d)
			require.ErrorIs(t, err, loader.ErrMalformedRow)

			var rowErr *loader.RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, testinfra.VideosFile, rowErr.File)
			assert.Equal(t, 3, rowErr.Line)
			assert.Equal(t, tt.column, rowErr.Column)
		})
	}
}

func TestRun_NullInRequiredColumn(t *testing.T) {
	d := testinfra.Sample()
	d.Videos[0]["country"] = ""

	_, err := load(t, t.TempDir(), d)
	require.Error(t, err)
	assert.NotErrorIs(t, err, loader.ErrDuplicateKey)
}

func TestRun_MissingSource(t *testing.T) {
	dir := t.TempDir()
	src := testinfra.Sample().Write(t, dir)
	require.NoError(t, os.Remove(src.ChannelStats))

	cfg := testinfra.LoaderConfig(src)
	_, err := loader.New(cfg).Run(context.Background())
	require.ErrorIs(t, err, loader.ErrMissingSource)
	assert.NoFileExists(t, cfg.DatabasePath)
	assert.Empty(t, buildFiles(t, dir))
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first, err := load(t, dir, testinfra.Sample())
	require.NoError(t, err)
	second, err := load(t, dir, testinfra.Sample())
	require.NoError(t, err)

	assert.Equal(t, first.LoadReport, second.LoadReport)
	assert.Empty(t, buildFiles(t, dir))
}

func TestRun_Chunking(t *testing.T) {
	d := testinfra.Sample()
	l := loader.New(func() loader.Config {
		cfg := testinfra.LoaderConfig(d.Write(t, t.TempDir()))
		cfg.ChunkSize = 3
		return cfg
	}())

	report, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Chunks)
	assert.False(t, l.IsRunning())

	stats := l.Stats()
	assert.EqualValues(t, 4, stats.Videos)
	assert.EqualValues(t, 11, stats.Rows())
	assert.False(t, stats.EndTime.IsZero())
}

func TestRun_FlagsStoredAsIntegers(t *testing.T) {
	d := testinfra.Sample()
	d.Videos[0]["comments_disabled"] = "True"
	d.Videos[1]["ratings_disabled"] = "1.0"

	report, err := load(t, t.TempDir(), d)
	require.NoError(t, err)

	db := openStore(t, report.Path)
	var comments, ratings int64
	err = db.Conn().QueryRowContext(context.Background(),
		"SELECT CAST(SUM(comments_disabled) AS BIGINT), CAST(SUM(ratings_disabled) AS BIGINT) FROM videos").Scan(&comments, &ratings)
	require.NoError(t, err)
	assert.EqualValues(t, 1, comments)
	assert.EqualValues(t, 1, ratings)
}

func TestRun_Canceled(t *testing.T) {
	dir := t.TempDir()
	cfg := testinfra.LoaderConfig(testinfra.Sample().Write(t, dir))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New(cfg).Run(ctx)
	require.Error(t, err)
	assert.NoFileExists(t, cfg.DatabasePath)
	assert.Empty(t, buildFiles(t, dir))
}
