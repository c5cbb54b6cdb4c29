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

// Countries lists the distinct countries in the store.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	serveRows(w, r, "countries", nil, h.svc.Countries)
}

// Categories lists the categories by name.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	serveRows(w, r, "categories", nil, h.svc.Categories)
}

// AnalyticsOverview returns the single-row dataset summary.
func (h *Handler) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serve(w, r, "overall_stats", &req, func(ctx context.Context) (analytics.Result[models.OverallStats], error) {
		return h.svc.OverallStats(ctx, req.filter())
	})
}

// AnalyticsCountries returns per-country statistics.
func (h *Handler) AnalyticsCountries(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "country_stats", &req, func(ctx context.Context) (analytics.Result[[]models.CountryStat], error) {
		return h.svc.CountryStats(ctx, req.filter())
	})
}

// AnalyticsCategories returns per-category statistics. This is the one
// endpoint where the categories filter applies.
func (h *Handler) AnalyticsCategories(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "category_stats", &req, func(ctx context.Context) (analytics.Result[[]models.CategoryStat], error) {
		return h.svc.CategoryStats(ctx, req.filter())
	})
}

// AnalyticsCorrelationInputs returns the raw measures behind the correlation matrix.
func (h *Handler) AnalyticsCorrelationInputs(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "correlation_inputs", &req, func(ctx context.Context) (analytics.Result[[]models.CorrelationInput], error) {
		return h.svc.CorrelationInputs(ctx, req.filter())
	})
}

// AnalyticsCorrelation returns the Pearson matrix over the correlation inputs.
func (h *Handler) AnalyticsCorrelation(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serve(w, r, "correlation", &req, func(ctx context.Context) (analytics.Result[models.CorrelationMatrix], error) {
		return h.svc.Correlation(ctx, req.filter())
	})
}

// AnalyticsPublishHeatmap returns average views per publish day and hour.
func (h *Handler) AnalyticsPublishHeatmap(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "publish_heatmap", &req, func(ctx context.Context) (analytics.Result[[]models.HeatmapCell], error) {
		return h.svc.PublishHeatmap(ctx, req.filter())
	})
}

// AnalyticsEngagementByCategory returns engagement rows for the top_n
// categories by video count.
func (h *Handler) AnalyticsEngagementByCategory(w http.ResponseWriter, r *http.Request) {
	req := topNRequest{TopN: analytics.DefaultTopCategories}
	serve(w, r, "engagement_by_category", &req, func(ctx context.Context) (analytics.Result[models.EngagementByCategory], error) {
		return h.svc.EngagementByCategory(ctx, req.filter(), req.TopN)
	})
}

// AnalyticsViewsEngagementSample returns a random views/engagement sample.
func (h *Handler) AnalyticsViewsEngagementSample(w http.ResponseWriter, r *http.Request) {
	req := sampleRequest{SampleSize: analytics.DefaultViewsSampleSize}
	serveRows(w, r, "views_engagement_sample", &req, func(ctx context.Context) (analytics.Result[[]models.ViewsEngagementPoint], error) {
		return h.svc.ViewsEngagementSample(ctx, req.filter(), req.SampleSize)
	})
}

// AnalyticsLikesDislikesSample returns a random likes/dislikes sample.
func (h *Handler) AnalyticsLikesDislikesSample(w http.ResponseWriter, r *http.Request) {
	req := sampleRequest{SampleSize: analytics.DefaultLikesSampleSize}
	serveRows(w, r, "likes_dislikes_sample", &req, func(ctx context.Context) (analytics.Result[[]models.LikesDislikesPoint], error) {
		return h.svc.LikesDislikesSample(ctx, req.filter(), req.SampleSize)
	})
}

// AnalyticsTopChannels ranks channels by summed views.
func (h *Handler) AnalyticsTopChannels(w http.ResponseWriter, r *http.Request) {
	req := topNRequest{TopN: analytics.DefaultTopChannels}
	serveRows(w, r, "top_channels", &req, func(ctx context.Context) (analytics.Result[[]models.ChannelViews], error) {
		return h.svc.TopChannels(ctx, req.filter(), req.TopN)
	})
}

// AnalyticsDaysToTrending returns the days_to_trending values within bounds.
func (h *Handler) AnalyticsDaysToTrending(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "days_to_trending", &req, func(ctx context.Context) (analytics.Result[[]float64], error) {
		return h.svc.DaysToTrending(ctx, req.filter())
	})
}

// AnalyticsTitleLength returns the title length buckets.
func (h *Handler) AnalyticsTitleLength(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "title_length", &req, func(ctx context.Context) (analytics.Result[[]models.TitleLengthStat], error) {
		return h.svc.TitleLength(ctx, req.filter())
	})
}

// AnalyticsTagCount returns statistics per tag count.
func (h *Handler) AnalyticsTagCount(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serveRows(w, r, "tag_analysis", &req, func(ctx context.Context) (analytics.Result[[]models.TagCountStat], error) {
		return h.svc.TagAnalysis(ctx, req.filter())
	})
}

// Insights returns the derived summary for the selected countries.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	serve(w, r, "insights", &req, func(ctx context.Context) (analytics.Result[models.Insights], error) {
		return h.svc.Insights(ctx, req.filter())
	})
}
