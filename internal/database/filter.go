// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"github.com/tomtom215/trendlens/internal/database/query"
)

// VideoFilter restricts catalog queries. Empty slices mean no restriction.
// Categories is only honoured by queries that join categories.
type VideoFilter struct {
	Countries  []string
	Categories []string
}

// where builds the predicate for a videos scan. prefix is the table alias
// ("v." or ""); the category predicate is only added when joined is true.
func (f VideoFilter) where(prefix string, joined bool) *query.WhereBuilder {
	wb := query.NewWhereBuilder()
	wb.AddIn(prefix+"country", f.Countries)
	if joined {
		wb.AddIn("c.category_name", f.Categories)
	}
	return wb
}
