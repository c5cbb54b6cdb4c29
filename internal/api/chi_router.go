// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/middleware"
)

// Router wires the handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. sec may be nil for defaults.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(sec)),
	}
}

// Setup returns the root handler with every route registered.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(AccessLog())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil, nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		h := router.handler

		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)

		r.Get("/countries", h.Countries)
		r.Get("/categories", h.Categories)
		r.Get("/insights", h.Insights)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", h.AnalyticsOverview)
			r.Get("/countries", h.AnalyticsCountries)
			r.Get("/categories", h.AnalyticsCategories)
			r.Get("/correlation-inputs", h.AnalyticsCorrelationInputs)
			r.Get("/correlation", h.AnalyticsCorrelation)
			r.Get("/publish-heatmap", h.AnalyticsPublishHeatmap)
			r.Get("/engagement-by-category", h.AnalyticsEngagementByCategory)
			r.Get("/views-engagement-sample", h.AnalyticsViewsEngagementSample)
			r.Get("/likes-dislikes-sample", h.AnalyticsLikesDislikesSample)
			r.Get("/top-channels", h.AnalyticsTopChannels)
			r.Get("/days-to-trending", h.AnalyticsDaysToTrending)
			r.Get("/title-length", h.AnalyticsTitleLength)
			r.Get("/tag-count", h.AnalyticsTagCount)
		})

		r.Route("/tables", func(r chi.Router) {
			r.Get("/categories", h.TablesCategories)
			r.Get("/channel-stats", h.TablesChannelStats)
			r.Get("/channel-stats/count", h.TablesChannelStatsCount)
			r.Get("/videos", h.TablesVideos)
			r.Get("/videos/count", h.TablesVideosCount)
		})

		r.Route("/cache", func(r chi.Router) {
			r.Get("/stats", h.CacheStats)
			r.Post("/clear", h.CacheClear)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
