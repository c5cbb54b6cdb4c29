// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/trendlens/internal/cache"
	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/models"
)

// Defaults applied when a caller passes zero or a negative size.
const (
	DefaultTopCategories    = 10
	DefaultTopChannels      = 20
	DefaultViewsSampleSize  = 4000
	DefaultLikesSampleSize  = 3000
	DefaultChannelRowsLimit = 50
	DefaultVideoRowsLimit   = 100
)

// Store is the read side of the trending store. *database.DB implements it.
type Store interface {
	Ping(ctx context.Context) error

	GetCountries(ctx context.Context) ([]string, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCountryStats(ctx context.Context, f database.VideoFilter) ([]models.CountryStat, error)
	GetCategoryStats(ctx context.Context, f database.VideoFilter) ([]models.CategoryStat, error)
	GetCorrelationInputs(ctx context.Context, f database.VideoFilter) ([]models.CorrelationInput, error)
	GetPublishHeatmap(ctx context.Context, f database.VideoFilter) ([]models.HeatmapCell, error)
	GetTopCategories(ctx context.Context, countries []string, topN int) ([]string, error)
	GetCategoryEngagement(ctx context.Context, countries, names []string) ([]models.CategoryEngagement, error)
	GetViewsEngagementSample(ctx context.Context, f database.VideoFilter, n int) ([]models.ViewsEngagementPoint, error)
	GetLikesDislikesSample(ctx context.Context, f database.VideoFilter, n int) ([]models.LikesDislikesPoint, error)
	GetTopChannels(ctx context.Context, f database.VideoFilter, topN int) ([]models.ChannelViews, error)
	GetDaysToTrending(ctx context.Context, f database.VideoFilter) ([]float64, error)
	GetTitleLengthAnalysis(ctx context.Context, f database.VideoFilter) ([]models.TitleLengthStat, error)
	GetTagAnalysis(ctx context.Context, f database.VideoFilter) ([]models.TagCountStat, error)
	GetOverallStats(ctx context.Context, f database.VideoFilter) (models.OverallStats, error)
	GetCategoriesTable(ctx context.Context) ([]models.Category, error)
	GetChannelStatsTable(ctx context.Context, limit int) ([]models.ChannelStat, error)
	GetChannelStatsCount(ctx context.Context) (int64, error)
	GetVideosTable(ctx context.Context, country string, limit int) ([]models.VideoRow, error)
	GetVideosCount(ctx context.Context, country string) (int64, error)
}

var _ Store = (*database.DB)(nil)

// Filter selects countries and, for category-aware queries, categories.
// Empty means no restriction.
type Filter struct {
	Countries  []string
	Categories []string
}

// Result carries a query result and whether it came from the cache.
type Result[T any] struct {
	Data    T
	Cached  bool
	Elapsed time.Duration
}

// Service is the memoized query catalog.
type Service struct {
	store Store
	cache cache.Cacher
}

// NewService creates a Service. A nil cacher disables memoization.
func NewService(store Store, c cache.Cacher) *Service {
	if c == nil {
		c = cache.NewNoop("analytics")
	}
	return &Service{store: store, cache: c}
}

// params is the normalized identity of a call. Unused fields stay zero and
// are omitted from the key.
type params struct {
	Countries  []string `json:"countries,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Names      []string `json:"names,omitempty"`
	Country    string   `json:"country,omitempty"`
	N          int      `json:"n,omitempty"`
}

// memoize returns the cached value for (name, p) or runs fn and caches its
// result. Errors are never cached.
func memoize[T any](ctx context.Context, s *Service, name string, p params, fn func(context.Context) (T, error)) (Result[T], error) {
	start := time.Now()
	key := cache.GenerateKey(name, p)

	if v, ok := s.cache.Get(key); ok {
		if data, ok := v.(T); ok {
			return Result[T]{Data: data, Cached: true, Elapsed: time.Since(start)}, nil
		}
	}

	data, err := fn(ctx)
	if err != nil {
		return Result[T]{}, err
	}
	s.cache.Set(key, data)
	return Result[T]{Data: data, Elapsed: time.Since(start)}, nil
}

// normalize trims, drops empties, sorts and deduplicates. Empty input yields nil.
func normalize(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// countriesOnly is the filter for queries that do not join categories.
func countriesOnly(f Filter) (params, database.VideoFilter) {
	c := normalize(f.Countries)
	return params{Countries: c}, database.VideoFilter{Countries: c}
}

// Ping checks the store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// CacheStats reports the memoization counters.
func (s *Service) CacheStats() models.CacheStats {
	st := s.cache.GetStats()
	return models.CacheStats{
		Enabled: s.cache.Enabled(),
		Entries: int(st.Entries),
		Hits:    st.Hits,
		Misses:  st.Misses,
		HitRate: s.cache.HitRate(),
	}
}

// ClearCache drops every memoized result.
func (s *Service) ClearCache() {
	s.cache.Clear()
}
