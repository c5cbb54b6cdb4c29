// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package database provides DuckDB access for TrendLens.

A store is a single DuckDB file with three tables (categories, channel_stats,
videos) and nine secondary indexes on videos. The loader builds it with Create,
CreateSchema, InsertRows and CreateIndexes; every other process opens it
read-only with Open and runs the fixed query catalog.

Query Filters:

Country and category filters are bound parameters. A filter slice becomes
"col IN (?, ?, ...)" and an empty slice adds no predicate, so no caller value
ever reaches the SQL text.

Error Handling:

ErrStoreUnavailable is returned (wrapped) when the file is missing, cannot be
opened, lacks the schema, the connection is gone, or the circuit breaker is
open. Callers check it with errors.Is. Empty result sets are empty slices,
never errors.

Numeric Semantics:

Aggregates follow SQL NULL handling. Averages are returned as *float64 and are
nil when no non-NULL input contributed. SUM is cast to BIGINT because DuckDB
widens SUM(BIGINT) to HUGEINT.
*/
package database
