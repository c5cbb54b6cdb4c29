// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package loader rebuilds the trending store from the three cleaned CSV
// exports: categories, channel statistics and the per-country video fact rows.
//
// # Pipeline
//
//	categories.csv, channel_stats.csv, cleaned_videos.csv
//	       ↓  header check, cell coercion, deduplication
//	DuckDB file at <target>.building-<uuid>
//	       ↓  indexes, validation report, checkpoint
//	atomic rename over <target>
//
// The store is built from scratch on every run next to the target and renamed
// over it only once every step succeeded. An aborted run leaves the previous
// store untouched, so a reader process never sees a half-built file.
//
// # Source rules
//
//   - Every schema column must be present in the header; other columns are
//     dropped with a warning.
//   - Empty cells are NULL. Integer columns accept integral floats ("123.0").
//     Flag columns accept true/false/1/0 in any case.
//   - categories keep the last row per category_id, channel_stats keep the
//     first row per channel_title, videos must be unique per
//     (video_id, trending_date, country).
//
// # Example
//
//	l := loader.New(loader.ConfigFrom(cfg))
//	report, err := l.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Videos)
package loader
