// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package api provides the HTTP JSON API for TrendLens.

Every endpoint is a GET (except cache clearing) that returns the standard
envelope:

	{
	  "status": "success",
	  "data": ...,
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true}
	}

Errors use the same envelope with status "error" and an error object:

	400 VALIDATION_ERROR   bad or out-of-range parameters
	503 STORE_UNAVAILABLE  the trending store is missing or the breaker is open
	500 DATABASE_ERROR     any other query failure

Filter parameters:

	countries   comma-separated (?countries=US,CA) or repeated (?countries=US&countries=CA);
	            a repeated value is taken literally, commas included
	categories  same, used by /analytics/categories only
	top_n       1..100
	sample_size 1..100000
	limit       1..10000
	country     single value for /tables/videos; "All" means no filter

Routes:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/countries
	GET  /api/v1/categories
	GET  /api/v1/analytics/overview
	GET  /api/v1/analytics/countries
	GET  /api/v1/analytics/categories
	GET  /api/v1/analytics/correlation-inputs
	GET  /api/v1/analytics/correlation
	GET  /api/v1/analytics/publish-heatmap
	GET  /api/v1/analytics/engagement-by-category
	GET  /api/v1/analytics/views-engagement-sample
	GET  /api/v1/analytics/likes-dislikes-sample
	GET  /api/v1/analytics/top-channels
	GET  /api/v1/analytics/days-to-trending
	GET  /api/v1/analytics/title-length
	GET  /api/v1/analytics/tag-count
	GET  /api/v1/insights
	GET  /api/v1/tables/categories
	GET  /api/v1/tables/channel-stats
	GET  /api/v1/tables/channel-stats/count
	GET  /api/v1/tables/videos
	GET  /api/v1/tables/videos/count
	GET  /api/v1/cache/stats
	POST /api/v1/cache/clear
	GET  /metrics

Usage:

	svc := analytics.NewService(db, cache.NewCacher(cacheCfg))
	handler := api.NewHandler(svc, version)
	router := api.NewRouter(handler, &cfg.Security)
	srv := &http.Server{Addr: ":8080", Handler: router.Setup()}
*/
package api
