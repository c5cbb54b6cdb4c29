// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/trendlens/internal/analytics"
	"github.com/tomtom215/trendlens/internal/cache"
	"github.com/tomtom215/trendlens/internal/config"
	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/models"
	"github.com/tomtom215/trendlens/internal/testinfra"
)

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func newTestRouter(t *testing.T, sec *config.SecurityConfig) (http.Handler, *database.DB) {
	t.Helper()
	db := testinfra.OpenStore(t, testinfra.Sample())
	svc := analytics.NewService(db, cache.New("api-test", time.Hour))
	return NewRouter(NewHandler(svc, "test"), sec).Setup(), db
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return do(t, h, http.MethodGet, target)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealth(t *testing.T) {
	h, db := newTestRouter(t, nil)

	rec, env := get(t, h, "/api/v1/health/live")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", decodeData[models.HealthStatus](t, env).Status)

	rec, env = get(t, h, "/api/v1/health/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decodeData[models.HealthStatus](t, env)
	assert.True(t, ready.StoreReady)
	assert.Equal(t, "test", ready.Version)

	require.NoError(t, db.Close())

	rec, env = get(t, h, "/api/v1/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeStoreUnavailable, env.Error.Code)

	rec, _ = get(t, h, "/api/v1/health/live")
	assert.Equal(t, http.StatusOK, rec.Code, "liveness does not depend on the store")
}

func TestStoreUnavailable(t *testing.T) {
	h, db := newTestRouter(t, nil)
	require.NoError(t, db.Close())

	rec, env := get(t, h, "/api/v1/analytics/overview")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "error", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeStoreUnavailable, env.Error.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestCountryFilter(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec, env := get(t, h, "/api/v1/analytics/countries?countries=US")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)

	stats := decodeData[[]models.CountryStat](t, env)
	require.Len(t, stats, 1)
	assert.Equal(t, "US", stats[0].Country)
	require.NotNil(t, stats[0].AvgViews)
	assert.InDelta(t, 150.0, *stats[0].AvgViews, 1e-9)
	require.NotNil(t, env.Metadata.Count)
	assert.Equal(t, 1, *env.Metadata.Count)
}

func TestFilterForms_ShareCacheEntry(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	_, first := get(t, h, "/api/v1/analytics/overview?countries=US&countries=CA")
	assert.False(t, first.Metadata.Cached)

	_, second := get(t, h, "/api/v1/analytics/overview?countries=CA,US")
	assert.True(t, second.Metadata.Cached)
	assert.Zero(t, second.Metadata.QueryTimeMS)
	assert.JSONEq(t, string(first.Data), string(second.Data))

	overview := decodeData[models.OverallStats](t, second)
	assert.EqualValues(t, 3, overview.TotalVideos)
	assert.EqualValues(t, 2, overview.Countries)
}

func TestCategoryApostrophe(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	_, env := get(t, h, "/api/v1/categories")
	var names []string
	for _, c := range decodeData[[]models.Category](t, env) {
		names = append(names, c.CategoryName)
	}
	require.Contains(t, names, "Kids' Content")

	rec, env := get(t, h, "/api/v1/analytics/categories?categories="+url.QueryEscape("Kids' Content"))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeData[[]models.CategoryStat](t, env)
	require.Len(t, stats, 1)
	assert.Equal(t, "Kids' Content", stats[0].CategoryName)
}

func TestRepeatedCategoriesAreLiteral(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec, env := get(t, h, "/api/v1/analytics/categories?categories="+url.QueryEscape("Kids' Content")+"&categories=Music")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.CategoryStat](t, env), 2)

	// with a repeated key, "Music,Entertainment" is one name and matches nothing
	rec, env = get(t, h, "/api/v1/analytics/categories?categories=Music,Entertainment&categories=Shows")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]models.CategoryStat](t, env))
}

func TestTitleLengthOrder(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	_, env := get(t, h, "/api/v1/analytics/title-length?countries=US,CA")
	buckets := decodeData[[]models.TitleLengthStat](t, env)
	require.Len(t, buckets, 3)
	for i, want := range models.TitleLengthBuckets {
		assert.Equal(t, want, buckets[i].Bucket)
	}
}

func TestEngagementByCategory_Empty(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec, env := get(t, h, "/api/v1/analytics/engagement-by-category?countries=ZZ")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[],"rows":[]}`, string(env.Data))
}

func TestSampleBound(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	_, env := get(t, h, "/api/v1/analytics/views-engagement-sample?sample_size=2")
	assert.Len(t, decodeData[[]models.ViewsEngagementPoint](t, env), 2)

	_, env = get(t, h, "/api/v1/analytics/likes-dislikes-sample")
	assert.Len(t, decodeData[[]models.LikesDislikesPoint](t, env), 4)
}

func TestTables(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	tests := []struct {
		target string
		want   int64
	}{
		{"/api/v1/tables/videos/count", 4},
		{"/api/v1/tables/videos/count?country=All", 4},
		{"/api/v1/tables/videos/count?country=all", 4},
		{"/api/v1/tables/videos/count?country=US", 2},
		{"/api/v1/tables/channel-stats/count", 3},
	}
	for _, tt := range tests {
		rec, env := get(t, h, tt.target)
		require.Equal(t, http.StatusOK, rec.Code, tt.target)
		assert.Equal(t, tt.want, decodeData[int64](t, env), tt.target)
	}

	_, env := get(t, h, "/api/v1/tables/videos?country=US&limit=1")
	rows := decodeData[[]models.VideoRow](t, env)
	require.Len(t, rows, 1)
	assert.Equal(t, "us2", rows[0].VideoID)

	_, env = get(t, h, "/api/v1/tables/categories")
	cats := decodeData[[]models.Category](t, env)
	require.Len(t, cats, 4)
	assert.EqualValues(t, 10, cats[0].CategoryID)
}

func TestValidation(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	many := make([]string, 51)
	for i := range many {
		many[i] = "US"
	}

	tests := []struct {
		name   string
		target string
	}{
		{"top_n zero", "/api/v1/analytics/top-channels?top_n=0"},
		{"top_n too large", "/api/v1/analytics/engagement-by-category?top_n=101"},
		{"top_n not a number", "/api/v1/analytics/top-channels?top_n=ten"},
		{"sample too large", "/api/v1/analytics/views-engagement-sample?sample_size=100001"},
		{"limit too large", "/api/v1/tables/videos?limit=10001"},
		{"limit negative", "/api/v1/tables/channel-stats?limit=-1"},
		{"too many countries", "/api/v1/analytics/countries?countries=" + strings.Join(many, ",")},
		{"value too long", "/api/v1/analytics/categories?categories=" + strings.Repeat("x", 101)},
		{"control character", "/api/v1/tables/videos/count?country=US%00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := get(t, h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "error", env.Status)
			require.NotNil(t, env.Error)
			assert.Equal(t, ErrCodeValidation, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestEveryRouteServes(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	routes := []string{
		"/api/v1/countries",
		"/api/v1/categories",
		"/api/v1/insights",
		"/api/v1/analytics/overview",
		"/api/v1/analytics/countries",
		"/api/v1/analytics/categories",
		"/api/v1/analytics/correlation-inputs",
		"/api/v1/analytics/correlation",
		"/api/v1/analytics/publish-heatmap",
		"/api/v1/analytics/engagement-by-category",
		"/api/v1/analytics/views-engagement-sample",
		"/api/v1/analytics/likes-dislikes-sample",
		"/api/v1/analytics/top-channels",
		"/api/v1/analytics/days-to-trending",
		"/api/v1/analytics/title-length",
		"/api/v1/analytics/tag-count",
		"/api/v1/tables/categories",
		"/api/v1/tables/channel-stats",
		"/api/v1/tables/channel-stats/count",
		"/api/v1/tables/videos",
		"/api/v1/tables/videos/count",
		"/api/v1/cache/stats",
	}
	for _, route := range routes {
		rec, env := get(t, h, route)
		assert.Equal(t, http.StatusOK, rec.Code, route)
		assert.Equal(t, "success", env.Status, route)
		assert.NotEqual(t, "null", string(env.Data), route)
		assert.False(t, env.Metadata.Timestamp.IsZero(), route)
	}
}

func TestCacheEndpoints(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	get(t, h, "/api/v1/analytics/overview")
	get(t, h, "/api/v1/analytics/overview")

	_, env := get(t, h, "/api/v1/cache/stats")
	stats := decodeData[models.CacheStats](t, env)
	assert.True(t, stats.Enabled)
	assert.EqualValues(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Entries)

	rec, env := do(t, h, http.MethodPost, "/api/v1/cache/clear")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeData[models.CacheStats](t, env).Entries)

	_, env = get(t, h, "/api/v1/analytics/overview")
	assert.False(t, env.Metadata.Cached)
}

func TestRoutingErrors(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec, env := get(t, h, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeNotFound, env.Error.Code)

	rec, env = do(t, h, http.MethodPost, "/api/v1/countries")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeMethodNotAllowed, env.Error.Code)
}

func TestHeaders(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	rec, _ := get(t, h, "/api/v1/countries")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRateLimit(t *testing.T) {
	h, _ := newTestRouter(t, &config.SecurityConfig{RateLimitReqs: 2, RateLimitWindow: time.Minute})

	for i := 0; i < 2; i++ {
		rec, _ := get(t, h, "/api/v1/health/live")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, env := get(t, h, "/api/v1/health/live")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeTooManyRequests, env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	get(t, h, "/api/v1/countries")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trendlens_api_requests_total")
}
