// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package cli implements trendctl, the operator command for the trending
// store:
//
//	trendctl load [--data-dir DIR] [--db PATH] [--chunk-size N] [--json]
//	trendctl report [--db PATH] [--top-categories N] [--json]
//	trendctl version
//
// Reports go to stdout, logs to stderr.
package cli
