// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/trendlens/internal/models"
)

// GetCountryStats returns per-country video counts and averages, largest
// video_count first. video_count counts distinct video ids, so a video that
// trended on several dates in one country counts once there.
func (db *DB) GetCountryStats(ctx context.Context, f VideoFilter) ([]models.CountryStat, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT
			country,
			COUNT(DISTINCT video_id) AS video_count,
			AVG(views) AS avg_views,
			AVG(engagement_rate) AS avg_engagement,
			AVG(days_to_trending) AS avg_days_to_trending
		FROM videos
		WHERE %s
		GROUP BY country
		ORDER BY video_count DESC, country`, where)

	return queryAndScan(ctx, db, "country_stats", q, args, func(rows *sql.Rows) (models.CountryStat, error) {
		var s models.CountryStat
		var avgViews, avgEng, avgDays sql.NullFloat64
		if err := rows.Scan(&s.Country, &s.VideoCount, &avgViews, &avgEng, &avgDays); err != nil {
			return s, err
		}
		s.AvgViews = floatPtr(avgViews)
		s.AvgEngagement = floatPtr(avgEng)
		s.AvgDaysToTrending = floatPtr(avgDays)
		return s, nil
	})
}

// GetOverallStats returns the single-row summary of the filtered videos.
// Over an empty selection the counts are zero and the averages nil.
func (db *DB) GetOverallStats(ctx context.Context, f VideoFilter) (models.OverallStats, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT
			COUNT(DISTINCT video_id) AS total_videos,
			COUNT(DISTINCT channel_title) AS unique_channels,
			COUNT(DISTINCT country) AS countries,
			AVG(views) AS avg_views,
			AVG(engagement_rate) AS avg_engagement,
			AVG(days_to_trending) AS avg_days_trending
		FROM videos
		WHERE %s`, where)

	return execute(ctx, db, "overall_stats", func(ctx context.Context) (models.OverallStats, error) {
		var s models.OverallStats
		var avgViews, avgEng, avgDays sql.NullFloat64
		err := db.conn.QueryRowContext(ctx, q, args...).Scan(
			&s.TotalVideos, &s.UniqueChannels, &s.Countries, &avgViews, &avgEng, &avgDays)
		if err != nil {
			return s, err
		}
		s.AvgViews = floatPtr(avgViews)
		s.AvgEngagement = floatPtr(avgEng)
		s.AvgDaysTrending = floatPtr(avgDays)
		return s, nil
	})
}
