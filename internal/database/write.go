// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/trendlens/internal/logging"
)

// InsertRows inserts rows into table inside a single transaction using one
// prepared statement. Each row must hold one value per column, in the order
// of columns; nil becomes NULL. The whole batch is rolled back on any error.
func (db *DB) InsertRows(ctx context.Context, table string, columns []string, rows [][]interface{}) (err error) {
	if len(rows) == 0 {
		return nil
	}
	if db.readOnly {
		return fmt.Errorf("insert into %s: store is read-only", table)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Str("table", table).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders(len(columns))))
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), len(columns))
		}
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("insert into %s (batch row %d): %w", table, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert into %s: %w", table, err)
	}
	return nil
}

// IsConstraintViolation reports whether err came from a PRIMARY KEY, UNIQUE
// or NOT NULL violation.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Constraint Error") ||
		strings.Contains(msg, "violates primary key constraint") ||
		strings.Contains(msg, "violates unique constraint") ||
		strings.Contains(msg, "NOT NULL constraint failed")
}

// IsDuplicateKey reports whether err came from a PRIMARY KEY or UNIQUE
// violation, as opposed to a NOT NULL failure.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	// DuckDB says "Duplicate key" across transactions and
	// "constraint violation: duplicate key" within one.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "violates primary key constraint") ||
		strings.Contains(msg, "violates unique constraint")
}
