// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/trendlens/internal/models"
)

// ValidationReport computes the post-load diagnostics: row counts, videos per
// country, the topCategories largest categories, the performance class
// distribution and the trending date range.
func (db *DB) ValidationReport(ctx context.Context, topCategories int) (*models.LoadReport, error) {
	r := &models.LoadReport{}
	var err error

	counts := []struct {
		table string
		dst   *int64
	}{
		{CategoriesTable.Name, &r.Categories},
		{ChannelStatsTable.Name, &r.ChannelStats},
		{VideosTable.Name, &r.Videos},
	}
	for _, c := range counts {
		// table names come from the fixed schema
		if *c.dst, err = queryInt64(ctx, db, "report_count_"+c.table, "SELECT COUNT(*) FROM "+c.table); err != nil {
			return nil, err
		}
	}

	if r.VideosByCountry, err = queryAndScan(ctx, db, "report_countries", `
		SELECT country, COUNT(*) AS n
		FROM videos
		GROUP BY country
		ORDER BY n DESC, country`, nil, scanCountedValue); err != nil {
		return nil, err
	}

	if r.TopCategories, err = queryAndScan(ctx, db, "report_categories", `
		SELECT c.category_name, COUNT(*) AS n
		FROM `+videosJoinCategories+`
		GROUP BY c.category_name
		ORDER BY n DESC, c.category_name
		LIMIT ?`, []interface{}{topCategories}, scanCountedValue); err != nil {
		return nil, err
	}

	if r.PerformanceClasses, err = queryAndScan(ctx, db, "report_performance", `
		SELECT COALESCE(performance_class, ''), COUNT(*) AS n
		FROM videos
		GROUP BY performance_class
		ORDER BY n DESC, performance_class`, nil, scanCountedValue); err != nil {
		return nil, err
	}

	_, err = execute(ctx, db, "report_date_range", func(ctx context.Context) (struct{}, error) {
		var minDate, maxDate sql.NullString
		err := db.conn.QueryRowContext(ctx, "SELECT MIN(trending_date), MAX(trending_date) FROM videos").Scan(&minDate, &maxDate)
		r.MinTrendingDate = stringPtr(minDate)
		r.MaxTrendingDate = stringPtr(maxDate)
		return struct{}{}, err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanCountedValue(rows *sql.Rows) (models.CountedValue, error) {
	var v models.CountedValue
	err := rows.Scan(&v.Value, &v.Count)
	return v, err
}
