// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package analytics serves the query catalog with memoization.
//
// Service wraps a Store (the read-only trending store) and a cache.Cacher.
// Every catalog method normalizes its parameters, derives a cache key from
// the query name and those parameters, and only reaches the store on a miss.
// Normalization trims, deduplicates and sorts filter values, so
// ["US","CA"] and ["CA","US"," US"] share one entry.
//
// Beyond the catalog the package computes the figures the dashboard derives
// from query results: a pairwise-complete Pearson correlation matrix and a
// compact Insights summary.
package analytics
