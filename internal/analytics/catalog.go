// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/models"
)

// Countries lists the distinct countries in the store.
func (s *Service) Countries(ctx context.Context) (Result[[]string], error) {
	return memoize(ctx, s, "countries", params{}, s.store.GetCountries)
}

// Categories lists every category by name.
func (s *Service) Categories(ctx context.Context) (Result[[]models.Category], error) {
	return memoize(ctx, s, "categories", params{}, s.store.GetCategories)
}

// CountryStats aggregates videos per country.
func (s *Service) CountryStats(ctx context.Context, f Filter) (Result[[]models.CountryStat], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "country_stats", p, func(ctx context.Context) ([]models.CountryStat, error) {
		return s.store.GetCountryStats(ctx, vf)
	})
}

// CategoryStats aggregates videos per category. This is the only query that
// honours the category filter.
func (s *Service) CategoryStats(ctx context.Context, f Filter) (Result[[]models.CategoryStat], error) {
	countries, categories := normalize(f.Countries), normalize(f.Categories)
	p := params{Countries: countries, Categories: categories}
	return memoize(ctx, s, "category_stats", p, func(ctx context.Context) ([]models.CategoryStat, error) {
		return s.store.GetCategoryStats(ctx, database.VideoFilter{Countries: countries, Categories: categories})
	})
}

// CorrelationInputs returns the raw numeric columns for correlation.
func (s *Service) CorrelationInputs(ctx context.Context, f Filter) (Result[[]models.CorrelationInput], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "correlation_inputs", p, func(ctx context.Context) ([]models.CorrelationInput, error) {
		return s.store.GetCorrelationInputs(ctx, vf)
	})
}

// PublishHeatmap returns average views per (day of week, hour).
func (s *Service) PublishHeatmap(ctx context.Context, f Filter) (Result[[]models.HeatmapCell], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "publish_heatmap", p, func(ctx context.Context) ([]models.HeatmapCell, error) {
		return s.store.GetPublishHeatmap(ctx, vf)
	})
}

// TopCategories returns the topN category names by video count.
func (s *Service) TopCategories(ctx context.Context, f Filter, topN int) (Result[[]string], error) {
	countries := normalize(f.Countries)
	n := orDefault(topN, DefaultTopCategories)
	return memoize(ctx, s, "top_categories", params{Countries: countries, N: n}, func(ctx context.Context) ([]string, error) {
		return s.store.GetTopCategories(ctx, countries, n)
	})
}

// CategoryEngagement returns per-video engagement rows for the named categories.
// names are used as given after normalization; no names means no rows.
func (s *Service) CategoryEngagement(ctx context.Context, f Filter, names []string) (Result[[]models.CategoryEngagement], error) {
	countries, names := normalize(f.Countries), normalize(names)
	p := params{Countries: countries, Names: names}
	return memoize(ctx, s, "category_engagement", p, func(ctx context.Context) ([]models.CategoryEngagement, error) {
		return s.store.GetCategoryEngagement(ctx, countries, names)
	})
}

// EngagementByCategory runs the two-step query: the topN categories for the
// filter, then the engagement rows of exactly those categories. When step one
// finds nothing, step two is skipped.
func (s *Service) EngagementByCategory(ctx context.Context, f Filter, topN int) (Result[models.EngagementByCategory], error) {
	top, err := s.TopCategories(ctx, f, topN)
	if err != nil {
		return Result[models.EngagementByCategory]{}, err
	}

	out := Result[models.EngagementByCategory]{
		Data:    models.EngagementByCategory{Categories: top.Data, Rows: []models.CategoryEngagement{}},
		Cached:  top.Cached,
		Elapsed: top.Elapsed,
	}
	if len(top.Data) == 0 {
		return out, nil
	}

	rows, err := s.CategoryEngagement(ctx, f, top.Data)
	if err != nil {
		return Result[models.EngagementByCategory]{}, err
	}
	out.Data.Rows = rows.Data
	out.Cached = out.Cached && rows.Cached
	out.Elapsed += rows.Elapsed
	return out, nil
}

// ViewsEngagementSample returns a random sample of at most n rows.
func (s *Service) ViewsEngagementSample(ctx context.Context, f Filter, n int) (Result[[]models.ViewsEngagementPoint], error) {
	p, vf := countriesOnly(f)
	p.N = orDefault(n, DefaultViewsSampleSize)
	return memoize(ctx, s, "views_engagement_sample", p, func(ctx context.Context) ([]models.ViewsEngagementPoint, error) {
		return s.store.GetViewsEngagementSample(ctx, vf, p.N)
	})
}

// LikesDislikesSample returns a random sample of at most n rows.
func (s *Service) LikesDislikesSample(ctx context.Context, f Filter, n int) (Result[[]models.LikesDislikesPoint], error) {
	p, vf := countriesOnly(f)
	p.N = orDefault(n, DefaultLikesSampleSize)
	return memoize(ctx, s, "likes_dislikes_sample", p, func(ctx context.Context) ([]models.LikesDislikesPoint, error) {
		return s.store.GetLikesDislikesSample(ctx, vf, p.N)
	})
}

// TopChannels returns the topN channels by total views.
func (s *Service) TopChannels(ctx context.Context, f Filter, topN int) (Result[[]models.ChannelViews], error) {
	p, vf := countriesOnly(f)
	p.N = orDefault(topN, DefaultTopChannels)
	return memoize(ctx, s, "top_channels", p, func(ctx context.Context) ([]models.ChannelViews, error) {
		return s.store.GetTopChannels(ctx, vf, p.N)
	})
}

// DaysToTrending returns days_to_trending values between 0 and 30.
func (s *Service) DaysToTrending(ctx context.Context, f Filter) (Result[[]float64], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "days_to_trending", p, func(ctx context.Context) ([]float64, error) {
		return s.store.GetDaysToTrending(ctx, vf)
	})
}

// TitleLength returns the title-length buckets.
func (s *Service) TitleLength(ctx context.Context, f Filter) (Result[[]models.TitleLengthStat], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "title_length", p, func(ctx context.Context) ([]models.TitleLengthStat, error) {
		return s.store.GetTitleLengthAnalysis(ctx, vf)
	})
}

// TagAnalysis returns per-tag-count aggregates.
func (s *Service) TagAnalysis(ctx context.Context, f Filter) (Result[[]models.TagCountStat], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "tag_analysis", p, func(ctx context.Context) ([]models.TagCountStat, error) {
		return s.store.GetTagAnalysis(ctx, vf)
	})
}

// OverallStats returns the headline figures.
func (s *Service) OverallStats(ctx context.Context, f Filter) (Result[models.OverallStats], error) {
	p, vf := countriesOnly(f)
	return memoize(ctx, s, "overall_stats", p, func(ctx context.Context) (models.OverallStats, error) {
		return s.store.GetOverallStats(ctx, vf)
	})
}

// CategoriesTable returns the categories table ordered by id.
func (s *Service) CategoriesTable(ctx context.Context) (Result[[]models.Category], error) {
	return memoize(ctx, s, "categories_table", params{}, s.store.GetCategoriesTable)
}

// ChannelStatsTable returns up to limit channel rows.
func (s *Service) ChannelStatsTable(ctx context.Context, limit int) (Result[[]models.ChannelStat], error) {
	n := orDefault(limit, DefaultChannelRowsLimit)
	return memoize(ctx, s, "channel_stats_table", params{N: n}, func(ctx context.Context) ([]models.ChannelStat, error) {
		return s.store.GetChannelStatsTable(ctx, n)
	})
}

// ChannelStatsCount returns the channel_stats row count.
func (s *Service) ChannelStatsCount(ctx context.Context) (Result[int64], error) {
	return memoize(ctx, s, "channel_stats_count", params{}, s.store.GetChannelStatsCount)
}

// VideosTable returns up to limit video rows for country ("" or "All" for every country).
func (s *Service) VideosTable(ctx context.Context, country string, limit int) (Result[[]models.VideoRow], error) {
	c := database.NormalizeCountry(country)
	n := orDefault(limit, DefaultVideoRowsLimit)
	return memoize(ctx, s, "videos_table", params{Country: c, N: n}, func(ctx context.Context) ([]models.VideoRow, error) {
		return s.store.GetVideosTable(ctx, c, n)
	})
}

// VideosCount counts video rows for country ("" or "All" for every country).
func (s *Service) VideosCount(ctx context.Context, country string) (Result[int64], error) {
	c := database.NormalizeCountry(country)
	return memoize(ctx, s, "videos_count", params{Country: c}, func(ctx context.Context) (int64, error) {
		return s.store.GetVideosCount(ctx, c)
	})
}
