// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/models"
)

// UnavailableStore returns a Store whose every call fails with cause. It
// lets the server start before the store has been loaded. cause is wrapped
// with database.ErrStoreUnavailable if it does not already carry it.
func UnavailableStore(cause error) Store {
	switch {
	case cause == nil:
		cause = database.ErrStoreUnavailable
	case !errors.Is(cause, database.ErrStoreUnavailable):
		cause = fmt.Errorf("%w: %w", database.ErrStoreUnavailable, cause)
	}
	return unavailableStore{err: cause}
}

type unavailableStore struct{ err error }

func (u unavailableStore) Ping(context.Context) error { return u.err }

func (u unavailableStore) GetCountries(context.Context) ([]string, error) { return nil, u.err }

func (u unavailableStore) GetCategories(context.Context) ([]models.Category, error) {
	return nil, u.err
}

func (u unavailableStore) GetCountryStats(context.Context, database.VideoFilter) ([]models.CountryStat, error) {
	return nil, u.err
}

func (u unavailableStore) GetCategoryStats(context.Context, database.VideoFilter) ([]models.CategoryStat, error) {
	return nil, u.err
}

func (u unavailableStore) GetCorrelationInputs(context.Context, database.VideoFilter) ([]models.CorrelationInput, error) {
	return nil, u.err
}

func (u unavailableStore) GetPublishHeatmap(context.Context, database.VideoFilter) ([]models.HeatmapCell, error) {
	return nil, u.err
}

func (u unavailableStore) GetTopCategories(context.Context, []string, int) ([]string, error) {
	return nil, u.err
}

func (u unavailableStore) GetCategoryEngagement(context.Context, []string, []string) ([]models.CategoryEngagement, error) {
	return nil, u.err
}

func (u unavailableStore) GetViewsEngagementSample(context.Context, database.VideoFilter, int) ([]models.ViewsEngagementPoint, error) {
	return nil, u.err
}

func (u unavailableStore) GetLikesDislikesSample(context.Context, database.VideoFilter, int) ([]models.LikesDislikesPoint, error) {
	return nil, u.err
}

func (u unavailableStore) GetTopChannels(context.Context, database.VideoFilter, int) ([]models.ChannelViews, error) {
	return nil, u.err
}

func (u unavailableStore) GetDaysToTrending(context.Context, database.VideoFilter) ([]float64, error) {
	return nil, u.err
}

func (u unavailableStore) GetTitleLengthAnalysis(context.Context, database.VideoFilter) ([]models.TitleLengthStat, error) {
	return nil, u.err
}

func (u unavailableStore) GetTagAnalysis(context.Context, database.VideoFilter) ([]models.TagCountStat, error) {
	return nil, u.err
}

func (u unavailableStore) GetOverallStats(context.Context, database.VideoFilter) (models.OverallStats, error) {
	return models.OverallStats{}, u.err
}

func (u unavailableStore) GetCategoriesTable(context.Context) ([]models.Category, error) {
	return nil, u.err
}

func (u unavailableStore) GetChannelStatsTable(context.Context, int) ([]models.ChannelStat, error) {
	return nil, u.err
}

func (u unavailableStore) GetChannelStatsCount(context.Context) (int64, error) { return 0, u.err }

func (u unavailableStore) GetVideosTable(context.Context, string, int) ([]models.VideoRow, error) {
	return nil, u.err
}

func (u unavailableStore) GetVideosCount(context.Context, string) (int64, error) { return 0, u.err }
