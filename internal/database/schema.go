// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"fmt"
	"strings"
)

// ColumnType is the logical type of a stored column. The loader coerces CSV
// cells according to it.
type ColumnType int

const (
	ColumnText ColumnType = iota
	ColumnInteger
	ColumnReal
	ColumnFlag // boolean stored as 0/1
)

func (t ColumnType) sqlType() string {
	switch t {
	case ColumnInteger:
		return "BIGINT"
	case ColumnReal:
		return "DOUBLE"
	case ColumnFlag:
		return "INTEGER"
	default:
		return "VARCHAR"
	}
}

// String returns a short name used in error messages.
func (t ColumnType) String() string {
	switch t {
	case ColumnInteger:
		return "integer"
	case ColumnReal:
		return "real"
	case ColumnFlag:
		return "flag"
	default:
		return "text"
	}
}

// Column describes one stored column.
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool
}

// TableSchema describes one stored table.
type TableSchema struct {
	Name       string
	Columns    []Column
	PrimaryKey []string
	Unique     []string
}

// ColumnNames returns the column names in declaration order.
func (t TableSchema) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t TableSchema) ddl() string {
	defs := make([]string, 0, len(t.Columns)+1)
	singlePK := len(t.PrimaryKey) == 1
	for _, c := range t.Columns {
		def := c.Name + " " + c.Type.sqlType()
		switch {
		case singlePK && c.Name == t.PrimaryKey[0]:
			def += " PRIMARY KEY"
		case c.NotNull:
			def += " NOT NULL"
		}
		for _, u := range t.Unique {
			if u == c.Name {
				def += " UNIQUE"
			}
		}
		defs = append(defs, def)
	}
	if len(t.PrimaryKey) > 1 {
		defs = append(defs, "PRIMARY KEY ("+strings.Join(t.PrimaryKey, ", ")+")")
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", t.Name, strings.Join(defs, ",\n\t"))
}

// CategoriesTable stores one row per category id.
var CategoriesTable = TableSchema{
	Name: "categories",
	Columns: []Column{
		{Name: "category_id", Type: ColumnInteger, NotNull: true},
		{Name: "category_name", Type: ColumnText, NotNull: true},
	},
	PrimaryKey: []string{"category_id"},
	Unique:     []string{"category_name"},
}

// ChannelStatsTable stores the pre-aggregated channel dimension.
var ChannelStatsTable = TableSchema{
	Name: "channel_stats",
	Columns: []Column{
		{Name: "channel_title", Type: ColumnText, NotNull: true},
		{Name: "video_count", Type: ColumnInteger, NotNull: true},
		{Name: "total_views", Type: ColumnInteger, NotNull: true},
		{Name: "avg_views", Type: ColumnReal, NotNull: true},
		{Name: "avg_engagement", Type: ColumnReal, NotNull: true},
	},
	PrimaryKey: []string{"channel_title"},
}

// VideosTable is the fact table: one row per video per trending date per
// country. category_id refers to categories, but the reference is not
// declared as a FOREIGN KEY because DuckDB would reject orphaned ids, which
// the dataset is allowed to contain.
var VideosTable = TableSchema{
	Name: "videos",
	Columns: []Column{
		{Name: "video_id", Type: ColumnText, NotNull: true},
		{Name: "trending_date", Type: ColumnText, NotNull: true},
		{Name: "title", Type: ColumnText},
		{Name: "channel_title", Type: ColumnText},
		{Name: "category_id", Type: ColumnInteger},
		{Name: "publish_time", Type: ColumnText},
		{Name: "tags", Type: ColumnText},
		{Name: "views", Type: ColumnInteger},
		{Name: "likes", Type: ColumnInteger},
		{Name: "dislikes", Type: ColumnInteger},
		{Name: "comment_count", Type: ColumnInteger},
		{Name: "thumbnail_link", Type: ColumnText},
		{Name: "comments_disabled", Type: ColumnFlag},
		{Name: "ratings_disabled", Type: ColumnFlag},
		{Name: "video_error_or_removed", Type: ColumnFlag},
		{Name: "description", Type: ColumnText},
		{Name: "country", Type: ColumnText, NotNull: true},
		{Name: "engagement_rate", Type: ColumnReal},
		{Name: "like_ratio", Type: ColumnReal},
		{Name: "comment_rate", Type: ColumnReal},
		{Name: "dislike_ratio", Type: ColumnReal},
		{Name: "days_to_trending", Type: ColumnReal},
		{Name: "publish_hour", Type: ColumnInteger},
		{Name: "publish_day_of_week", Type: ColumnInteger},
		{Name: "publish_month", Type: ColumnInteger},
		{Name: "title_length", Type: ColumnInteger},
		{Name: "description_length", Type: ColumnInteger},
		{Name: "tag_count", Type: ColumnInteger},
		{Name: "performance_class", Type: ColumnText},
	},
	PrimaryKey: []string{"video_id", "trending_date", "country"},
}

// Tables lists the stored tables in creation order.
var Tables = []string{CategoriesTable.Name, ChannelStatsTable.Name, VideosTable.Name}

// Index is a single-column secondary index on videos.
type Index struct {
	Name   string
	Column string
}

// VideoIndexes are created after the bulk load.
var VideoIndexes = []Index{
	{"idx_videos_country", "country"},
	{"idx_videos_category", "category_id"},
	{"idx_videos_channel", "channel_title"},
	{"idx_videos_performance", "performance_class"},
	{"idx_videos_views", "views"},
	{"idx_videos_trending_date", "trending_date"},
	{"idx_videos_publish_time", "publish_time"},
	{"idx_videos_publish_hour", "publish_hour"},
	{"idx_videos_publish_day", "publish_day_of_week"},
}

// CreateSchema creates the three tables.
func (db *DB) CreateSchema(ctx context.Context) error {
	for _, t := range []TableSchema{CategoriesTable, ChannelStatsTable, VideosTable} {
		if _, err := db.conn.ExecContext(ctx, t.ddl()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// CreateIndexes creates the secondary indexes on videos.
func (db *DB) CreateIndexes(ctx context.Context) error {
	for _, idx := range VideoIndexes {
		stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.Name, VideosTable.Name, idx.Column)
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.Name, err)
		}
	}
	return nil
}

// HasSchema reports whether all three tables exist.
func (db *DB) HasSchema(ctx context.Context) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'main' AND table_name IN ("+placeholders(len(Tables))+")",
		stringArgs(Tables)...,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == len(Tables), nil
}

// ListIndexes returns the names of user-created indexes on videos.
func (db *DB) ListIndexes(ctx context.Context) ([]string, error) {
	return queryAndScan(ctx, db, "list_indexes",
		"SELECT index_name FROM duckdb_indexes() WHERE table_name = ? ORDER BY index_name",
		[]interface{}{VideosTable.Name},
		scanString)
}
