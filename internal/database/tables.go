// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/trendlens/internal/database/query"
	"github.com/tomtom215/trendlens/internal/models"
)

// AllCountries is the sentinel that disables the single-country filter.
const AllCountries = "All"

// NormalizeCountry returns "" for an empty or "All" (any case) selection.
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if strings.EqualFold(country, AllCountries) {
		return ""
	}
	return country
}

// GetCategoriesTable returns every category ordered by id.
func (db *DB) GetCategoriesTable(ctx context.Context) ([]models.Category, error) {
	return queryAndScan(ctx, db, "categories_table",
		"SELECT category_id, category_name FROM categories ORDER BY category_id",
		nil, scanCategory)
}

// GetChannelStatsTable returns up to limit channels by total views.
func (db *DB) GetChannelStatsTable(ctx context.Context, limit int) ([]models.ChannelStat, error) {
	return queryAndScan(ctx, db, "channel_stats_table", `
		SELECT channel_title, video_count, total_views, avg_views, avg_engagement
		FROM channel_stats
		ORDER BY total_views DESC, channel_title
		LIMIT ?`,
		[]interface{}{limit},
		func(rows *sql.Rows) (models.ChannelStat, error) {
			var s models.ChannelStat
			err := rows.Scan(&s.ChannelTitle, &s.VideoCount, &s.TotalViews, &s.AvgViews, &s.AvgEngagement)
			return s, err
		})
}

// GetChannelStatsCount returns the number of channel_stats rows.
func (db *DB) GetChannelStatsCount(ctx context.Context) (int64, error) {
	return queryInt64(ctx, db, "channel_stats_count", "SELECT COUNT(*) FROM channel_stats")
}

// GetVideosTable returns up to limit video rows by views, optionally
// restricted to one country.
func (db *DB) GetVideosTable(ctx context.Context, country string, limit int) ([]models.VideoRow, error) {
	where, args := query.NewWhereBuilder().AddEquals("country", NormalizeCountry(country)).Build()

	q := fmt.Sprintf(`
		SELECT video_id, title, channel_title, category_id, country,
			views, likes, dislikes, comment_count, engagement_rate,
			trending_date, publish_time, days_to_trending
		FROM videos
		WHERE %s
		ORDER BY views DESC NULLS LAST, video_id, trending_date, country
		LIMIT ?`, where)

	return queryAndScan(ctx, db, "videos_table", q, append(args, limit), scanVideoRow)
}

// GetVideosCount counts video rows, optionally restricted to one country.
func (db *DB) GetVideosCount(ctx context.Context, country string) (int64, error) {
	where, args := query.NewWhereBuilder().AddEquals("country", NormalizeCountry(country)).Build()
	return queryInt64(ctx, db, "videos_count", "SELECT COUNT(*) FROM videos WHERE "+where, args...)
}

func scanVideoRow(rows *sql.Rows) (models.VideoRow, error) {
	var v models.VideoRow
	var title, channel, publish sql.NullString
	var category, views, likes, dislikes, comments sql.NullInt64
	var rate, days sql.NullFloat64

	err := rows.Scan(&v.VideoID, &title, &channel, &category, &v.Country,
		&views, &likes, &dislikes, &comments, &rate,
		&v.TrendingDate, &publish, &days)
	if err != nil {
		return v, err
	}

	v.Title = stringPtr(title)
	v.ChannelTitle = stringPtr(channel)
	v.CategoryID = int64Ptr(category)
	v.Views = int64Ptr(views)
	v.Likes = int64Ptr(likes)
	v.Dislikes = int64Ptr(dislikes)
	v.CommentCount = int64Ptr(comments)
	v.EngagementRate = floatPtr(rate)
	v.PublishTime = stringPtr(publish)
	v.DaysToTrending = floatPtr(days)
	return v, nil
}
