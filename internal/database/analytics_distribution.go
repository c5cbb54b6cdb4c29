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

// Distribution bounds.
const (
	// DaysToTrendingMax excludes slower videos from the distribution as outliers.
	DaysToTrendingMax = 30
	// TagCountMax caps the tag-count analysis.
	TagCountMax = 50
	// TagGroupMinRows suppresses tag-count groups with fewer rows.
	TagGroupMinRows = 10
)

// GetCorrelationInputs returns the raw measures of every filtered video row.
// The correlation itself is computed by the caller.
func (db *DB) GetCorrelationInputs(ctx context.Context, f VideoFilter) ([]models.CorrelationInput, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT views, likes, dislikes, comment_count,
			engagement_rate, like_ratio, title_length, tag_count
		FROM videos
		WHERE %s`, where)

	return queryAndScan(ctx, db, "correlation_inputs", q, args, func(rows *sql.Rows) (models.CorrelationInput, error) {
		var views, likes, dislikes, comments, titleLen, tags sql.NullInt64
		var engagement, likeRatio sql.NullFloat64
		if err := rows.Scan(&views, &likes, &dislikes, &comments, &engagement, &likeRatio, &titleLen, &tags); err != nil {
			return models.CorrelationInput{}, err
		}
		return models.CorrelationInput{
			Views:          int64Ptr(views),
			Likes:          int64Ptr(likes),
			Dislikes:       int64Ptr(dislikes),
			CommentCount:   int64Ptr(comments),
			EngagementRate: floatPtr(engagement),
			LikeRatio:      floatPtr(likeRatio),
			TitleLength:    int64Ptr(titleLen),
			TagCount:       int64Ptr(tags),
		}, nil
	})
}

// GetPublishHeatmap returns average views per (day of week, hour) cell,
// ordered by day then hour. Cells with a missing day or hour come first.
func (db *DB) GetPublishHeatmap(ctx context.Context, f VideoFilter) ([]models.HeatmapCell, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT publish_day_of_week, publish_hour, AVG(views) AS avg_views
		FROM videos
		WHERE %s
		GROUP BY publish_day_of_week, publish_hour
		ORDER BY publish_day_of_week NULLS FIRST, publish_hour NULLS FIRST`, where)

	return queryAndScan(ctx, db, "publish_heatmap", q, args, func(rows *sql.Rows) (models.HeatmapCell, error) {
		var day, hour sql.NullInt64
		var avg sql.NullFloat64
		if err := rows.Scan(&day, &hour, &avg); err != nil {
			return models.HeatmapCell{}, err
		}
		return models.HeatmapCell{DayOfWeek: int64Ptr(day), Hour: int64Ptr(hour), AvgViews: floatPtr(avg)}, nil
	})
}

// GetDaysToTrending returns days_to_trending for filtered rows within
// [0, DaysToTrendingMax]. Values outside the range are excluded, not clamped.
func (db *DB) GetDaysToTrending(ctx context.Context, f VideoFilter) ([]float64, error) {
	wb := f.where("", false)
	wb.AddClause("days_to_trending BETWEEN ? AND ?", 0, DaysToTrendingMax)
	where, args := wb.Build()

	q := fmt.Sprintf("SELECT days_to_trending FROM videos WHERE %s", where)
	return queryAndScan(ctx, db, "days_to_trending", q, args, scanFloat)
}

// GetTitleLengthAnalysis buckets filtered rows by title length and returns
// the buckets in the fixed Short, Medium, Long order. Buckets without rows
// are absent. A NULL title_length lands in Long, the CASE fallthrough.
func (db *DB) GetTitleLengthAnalysis(ctx context.Context, f VideoFilter) ([]models.TitleLengthStat, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT title_category, AVG(views) AS avg_views, COUNT(*) AS video_count
		FROM (
			SELECT
				CASE
					WHEN title_length < 30 THEN '%[1]s'
					WHEN title_length < 60 THEN '%[2]s'
					ELSE '%[3]s'
				END AS title_category,
				views
			FROM videos
			WHERE %[4]s
		)
		GROUP BY title_category
		ORDER BY CASE title_category WHEN '%[1]s' THEN 0 WHEN '%[2]s' THEN 1 ELSE 2 END`,
		models.TitleBucketShort, models.TitleBucketMedium, models.TitleBucketLong, where)

	return queryAndScan(ctx, db, "title_length", q, args, func(rows *sql.Rows) (models.TitleLengthStat, error) {
		var s models.TitleLengthStat
		var avg sql.NullFloat64
		if err := rows.Scan(&s.Bucket, &avg, &s.VideoCount); err != nil {
			return s, err
		}
		s.AvgViews = floatPtr(avg)
		return s, nil
	})
}

// GetTagAnalysis groups filtered rows by tag_count up to TagCountMax and
// drops groups with fewer than TagGroupMinRows rows.
func (db *DB) GetTagAnalysis(ctx context.Context, f VideoFilter) ([]models.TagCountStat, error) {
	wb := f.where("", false)
	wb.AddClause("tag_count <= ?", TagCountMax)
	where, args := wb.Build()

	q := fmt.Sprintf(`
		SELECT
			tag_count,
			AVG(views) AS avg_views,
			AVG(engagement_rate) AS avg_engagement,
			COUNT(*) AS video_count
		FROM videos
		WHERE %s
		GROUP BY tag_count
		HAVING COUNT(*) >= ?
		ORDER BY tag_count`, where)

	return queryAndScan(ctx, db, "tag_analysis", q, append(args, TagGroupMinRows), func(rows *sql.Rows) (models.TagCountStat, error) {
		var s models.TagCountStat
		var avgViews, avgEng sql.NullFloat64
		if err := rows.Scan(&s.TagCount, &avgViews, &avgEng, &s.VideoCount); err != nil {
			return s, err
		}
		s.AvgViews = floatPtr(avgViews)
		s.AvgEngagement = floatPtr(avgEng)
		return s, nil
	})
}
