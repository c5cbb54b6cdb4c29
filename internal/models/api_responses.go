// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package models

import "time"

// APIResponse is the envelope used by every HTTP endpoint.
//
//	{
//	  "status": "success",
//	  "data": [...],
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError carries a machine readable code and a message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	StoreReady    bool    `json:"store_ready"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// CacheStats reports memoization effectiveness.
type CacheStats struct {
	Enabled bool    `json:"enabled"`
	Entries int     `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}
