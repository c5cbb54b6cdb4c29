// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package middleware provides HTTP middleware shared by the API router.
//
// Both middlewares use chi's func(http.Handler) http.Handler shape:
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.Use(middleware.PrometheusMetrics)
//
// RequestID stores the ID where logging.Ctx finds it, so every log line
// written while serving a request carries request_id. PrometheusMetrics labels
// requests by route pattern ("/api/v1/tables/videos"), never by raw path.
package middleware
