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

// GetCountries returns the distinct country codes in alphabetical order.
func (db *DB) GetCountries(ctx context.Context) ([]string, error) {
	return queryAndScan(ctx, db, "countries",
		"SELECT DISTINCT country FROM videos ORDER BY country",
		nil, scanString)
}

// GetCategories returns all categories ordered by name.
func (db *DB) GetCategories(ctx context.Context) ([]models.Category, error) {
	return queryAndScan(ctx, db, "categories",
		"SELECT category_id, category_name FROM categories ORDER BY category_name",
		nil, scanCategory)
}

func scanCategory(rows *sql.Rows) (models.Category, error) {
	var c models.Category
	err := rows.Scan(&c.CategoryID, &c.CategoryName)
	return c, err
}
