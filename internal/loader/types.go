// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"time"

	"github.com/tomtom215/trendlens/internal/models"
)

// Stats holds counters for a load in progress or just finished.
type Stats struct {
	// StartTime is when the load started.
	StartTime time.Time

	// EndTime is when the load finished (zero while running).
	EndTime time.Time

	// Rows inserted per table.
	Categories   int64
	ChannelStats int64
	Videos       int64

	// Duplicates discarded from the dimension files.
	CategoriesDropped   int64
	ChannelStatsDropped int64

	// Chunks is the number of video chunks committed.
	Chunks int
}

// Duration returns the elapsed time of the load.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Rows returns the total number of inserted rows.
func (s *Stats) Rows() int64 {
	return s.Categories + s.ChannelStats + s.Videos
}

// RowsPerSecond returns the insert rate over all tables.
func (s *Stats) RowsPerSecond() float64 {
	d := s.Duration().Seconds()
	if d == 0 {
		return 0
	}
	return float64(s.Rows()) / d
}

// Report is returned by a successful load. The embedded LoadReport is read
// back from the finished store.
type Report struct {
	models.LoadReport

	Path                string        `json:"path"`
	Duration            time.Duration `json:"duration"`
	Chunks              int           `json:"chunks"`
	CategoriesDropped   int64         `json:"categories_deduplicated"`
	ChannelStatsDropped int64         `json:"channel_stats_deduplicated"`
	DroppedColumns      []string      `json:"dropped_columns,omitempty"` // videos source only
}
