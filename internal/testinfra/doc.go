// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package testinfra builds real trending stores for tests.
//
// Tests describe a small dataset in terms of CSV cells, exactly as the
// cleaned exports would contain them, and get back a DuckDB file produced by
// the real loader. No store is ever mocked:
//
//	func TestCountryFilter(t *testing.T) {
//	    db := testinfra.OpenStore(t, testinfra.Dataset{
//	        Categories: [][]string{{"10", "Music"}},
//	        Videos: []testinfra.Row{
//	            testinfra.Video("a", "US", "views", "100"),
//	            testinfra.Video("b", "CA", "views", "50"),
//	        },
//	    })
//	    // query db ...
//	}
//
// Stores are built in t.TempDir() and closed through t.Cleanup.
package testinfra
