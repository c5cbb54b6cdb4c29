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

const videosJoinCategories = "videos v JOIN categories c ON v.category_id = c.category_id"

// GetCategoryStats returns per-category averages over videos whose category
// resolves, highest average views first. Both country and category filters
// apply.
func (db *DB) GetCategoryStats(ctx context.Context, f VideoFilter) ([]models.CategoryStat, error) {
	where, args := f.where("v.", true).Build()

	q := fmt.Sprintf(`
		SELECT
			c.category_name,
			COUNT(v.video_id) AS video_count,
			AVG(v.views) AS avg_views,
			AVG(v.engagement_rate) AS avg_engagement,
			AVG(v.like_ratio) AS avg_like_ratio
		FROM %s
		WHERE %s
		GROUP BY c.category_name
		ORDER BY avg_views DESC NULLS LAST, c.category_name`, videosJoinCategories, where)

	return queryAndScan(ctx, db, "category_stats", q, args, func(rows *sql.Rows) (models.CategoryStat, error) {
		var s models.CategoryStat
		var avgViews, avgEng, avgLike sql.NullFloat64
		if err := rows.Scan(&s.CategoryName, &s.VideoCount, &avgViews, &avgEng, &avgLike); err != nil {
			return s, err
		}
		s.AvgViews = floatPtr(avgViews)
		s.AvgEngagement = floatPtr(avgEng)
		s.AvgLikeRatio = floatPtr(avgLike)
		return s, nil
	})
}

// GetTopCategories returns the names of the topN categories with the most
// video rows under the country filter. It is the first step of the
// engagement-by-category composition.
func (db *DB) GetTopCategories(ctx context.Context, countries []string, topN int) ([]string, error) {
	where, args := VideoFilter{Countries: countries}.where("v.", false).Build()

	q := fmt.Sprintf(`
		SELECT c.category_name
		FROM %s
		WHERE %s
		GROUP BY c.category_name
		ORDER BY COUNT(*) DESC, c.category_name
		LIMIT ?`, videosJoinCategories, where)

	return queryAndScan(ctx, db, "top_categories", q, append(args, topN), scanString)
}

// GetCategoryEngagement returns one (category_name, engagement_rate) row per
// video row whose category is in names, under the country filter. An empty
// names list matches nothing.
func (db *DB) GetCategoryEngagement(ctx context.Context, countries, names []string) ([]models.CategoryEngagement, error) {
	if len(names) == 0 {
		return []models.CategoryEngagement{}, nil
	}
	where, args := VideoFilter{Countries: countries, Categories: names}.where("v.", true).Build()

	q := fmt.Sprintf(`
		SELECT c.category_name, v.engagement_rate
		FROM %s
		WHERE %s`, videosJoinCategories, where)

	return queryAndScan(ctx, db, "category_engagement", q, args, func(rows *sql.Rows) (models.CategoryEngagement, error) {
		var e models.CategoryEngagement
		var rate sql.NullFloat64
		if err := rows.Scan(&e.CategoryName, &rate); err != nil {
			return e, err
		}
		e.EngagementRate = floatPtr(rate)
		return e, nil
	})
}
