// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/trendlens/internal/analytics"
	"github.com/tomtom215/trendlens/internal/models"
)

// TablesCategories returns the categories table ordered by id.
func (h *Handler) TablesCategories(w http.ResponseWriter, r *http.Request) {
	serveRows(w, r, "categories_table", nil, h.svc.CategoriesTable)
}

// TablesChannelStats returns the top channel_stats rows by total views.
func (h *Handler) TablesChannelStats(w http.ResponseWriter, r *http.Request) {
	req := limitRequest{Limit: analytics.DefaultChannelRowsLimit}
	serveRows(w, r, "channel_stats_table", &req, func(ctx context.Context) (analytics.Result[[]models.ChannelStat], error) {
		return h.svc.ChannelStatsTable(ctx, req.Limit)
	})
}

// TablesChannelStatsCount returns the channel_stats row count.
func (h *Handler) TablesChannelStatsCount(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "channel_stats_count", nil, h.svc.ChannelStatsCount)
}

// TablesVideos returns the most viewed video rows, optionally for one country.
func (h *Handler) TablesVideos(w http.ResponseWriter, r *http.Request) {
	req := videosRequest{Limit: analytics.DefaultVideoRowsLimit}
	serveRows(w, r, "videos_table", &req, func(ctx context.Context) (analytics.Result[[]models.VideoRow], error) {
		return h.svc.VideosTable(ctx, req.Country, req.Limit)
	})
}

// TablesVideosCount returns the video row count, optionally for one country.
func (h *Handler) TablesVideosCount(w http.ResponseWriter, r *http.Request) {
	var req countryRequest
	serve(w, r, "videos_count", &req, func(ctx context.Context) (analytics.Result[int64], error) {
		return h.svc.VideosCount(ctx, req.Country)
	})
}
