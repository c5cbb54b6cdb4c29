// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package query builds parameterized SQL WHERE clauses.
//
//	wb := query.NewWhereBuilder()
//	wb.AddIn("v.country", []string{"US", "CA"})
//	wb.AddIn("c.category_name", []string{"Kids' Content"})
//	where, args := wb.Build()
//	// where: "v.country IN (?, ?) AND c.category_name IN (?)"
//	// args:  ["US", "CA", "Kids' Content"]
//
// Values are only ever bound as arguments. Column names and fixed clauses are
// supplied by the database package, never by callers.
package query

import (
	"strings"
)

// WhereBuilder accumulates AND-joined conditions and their arguments.
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates an empty builder.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a fixed condition with its arguments, e.g.
// AddClause("days_to_trending BETWEEN ? AND ?", 0, 30).
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddIn adds "column IN (?, ...)" for values. An empty slice adds nothing,
// which means no restriction on column.
func (wb *WhereBuilder) AddIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	wb.clauses = append(wb.clauses, column+" IN ("+Placeholders(len(values))+")")
	for _, v := range values {
		wb.args = append(wb.args, v)
	}
	return wb
}

// AddEquals adds "column = ?" unless value is empty.
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// Build returns the AND-joined clause without the WHERE keyword, or "1=1"
// when nothing was added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix is Build with a leading "WHERE ".
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty reports whether no clause was added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// Placeholders returns n comma-separated "?" markers.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
