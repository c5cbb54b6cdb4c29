// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/trendlens/internal/database/query"
	"github.com/tomtom215/trendlens/internal/metrics"
)

// execute runs fn through the circuit breaker and records its duration
// under name. Errors come back classified (see classifyError).
func execute[T any](ctx context.Context, db *DB, name string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if db == nil || db.conn == nil {
		return zero, classifyError(name, ErrStoreUnavailable)
	}

	start := time.Now()
	out, err := db.breaker.Execute(func() (any, error) {
		return fn(ctx)
	})
	metrics.RecordDBQuery(name, time.Since(start), err)
	if err != nil {
		return zero, classifyError(name, err)
	}
	return out.(T), nil
}

// scanFunc scans a single row into a result type.
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan runs a query and scans every row. The result is never nil.
func queryAndScan[T any](ctx context.Context, db *DB, name, q string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	return execute(ctx, db, name, func(ctx context.Context) ([]T, error) {
		rows, err := db.conn.QueryContext(ctx, q, args...)
		if err != nil {
			return nil, err
		}
		defer closeWithLog(rows, "rows")

		results := make([]T, 0)
		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return nil, err
			}
			results = append(results, item)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return results, nil
	})
}

// queryInt64 runs a single-value integer query.
func queryInt64(ctx context.Context, db *DB, name, q string, args ...interface{}) (int64, error) {
	return execute(ctx, db, name, func(ctx context.Context) (int64, error) {
		var n int64
		err := db.conn.QueryRowContext(ctx, q, args...).Scan(&n)
		return n, err
	})
}

func scanString(rows *sql.Rows) (string, error) {
	var s string
	err := rows.Scan(&s)
	return s, err
}

func scanFloat(rows *sql.Rows) (float64, error) {
	var f float64
	err := rows.Scan(&f)
	return f, err
}

func placeholders(n int) string {
	return query.Placeholders(n)
}

func stringArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
