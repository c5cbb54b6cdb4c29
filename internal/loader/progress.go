// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"github.com/dustin/go-humanize"

	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/metrics"
)

// progress reports chunked video ingestion.
type progress struct {
	stats *Stats
}

// chunkCommitted records a committed chunk of n rows and logs the running totals.
func (p *progress) chunkCommitted(table string, n int) {
	p.stats.Videos += int64(n)
	p.stats.Chunks++
	metrics.RecordLoaderRows(table, n)

	logging.Info().
		Str("table", table).
		Int("chunk", p.stats.Chunks).
		Int("chunk_rows", n).
		Int64("rows_loaded", p.stats.Videos).
		Str("rows_loaded_h", humanize.Comma(p.stats.Videos)).
		Float64("rows_per_second", p.stats.RowsPerSecond()).
		Msg("Load progress")
}

// dimensionLoaded records a fully inserted dimension table.
func (p *progress) dimensionLoaded(table string, inserted, dropped int) {
	metrics.RecordLoaderRows(table, inserted)
	metrics.RecordLoaderDropped(table, dropped)

	evt := logging.Info().Str("table", table).Int("rows", inserted)
	if dropped > 0 {
		evt = evt.Int("duplicates_dropped", dropped)
	}
	evt.Msg("Loaded dimension table")
}
