// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/trendlens/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetCountryStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertVideos(t, db,
		video("a", "US", "views", int64(100), "engagement_rate", 0.5, "days_to_trending", 1.0),
		video("b", "US", "views", int64(200), "engagement_rate", 1.5, "days_to_trending", 3.0),
		video("c", "CA", "views", int64(50)),
	)

	tests := []struct {
		name      string
		filter    VideoFilter
		wantOrder []string
	}{
		{"no filter", VideoFilter{}, []string{"US", "CA"}},
		{"single country", VideoFilter{Countries: []string{"US"}}, []string{"US"}},
		{"unknown country", VideoFilter{Countries: []string{"ZZ"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := db.GetCountryStats(ctx, tt.filter)
			if err != nil {
				t.Fatalf("GetCountryStats() error = %v", err)
			}
			if stats == nil {
				t.Fatal("GetCountryStats() returned nil slice")
			}
			if len(stats) != len(tt.wantOrder) {
				t.Fatalf("got %d rows, want %d", len(stats), len(tt.wantOrder))
			}
			for i, c := range tt.wantOrder {
				if stats[i].Country != c {
					t.Errorf("row %d country = %q, want %q", i, stats[i].Country, c)
				}
			}
		})
	}

	stats, err := db.GetCountryStats(ctx, VideoFilter{Countries: []string{"US"}})
	if err != nil {
		t.Fatal(err)
	}
	us := stats[0]
	if us.VideoCount != 2 {
		t.Errorf("US video_count = %d, want 2", us.VideoCount)
	}
	if us.AvgViews == nil || !approx(*us.AvgViews, 150) {
		t.Errorf("US avg_views = %v, want 150", us.AvgViews)
	}
	if us.AvgEngagement == nil || !approx(*us.AvgEngagement, 1.0) {
		t.Errorf("US avg_engagement = %v, want 1.0", us.AvgEngagement)
	}

	stats, err = db.GetCountryStats(ctx, VideoFilter{Countries: []string{"CA"}})
	if err != nil {
		t.Fatal(err)
	}
	if stats[0].AvgDaysToTrending != nil {
		t.Errorf("CA avg_days_to_trending = %v, want nil", *stats[0].AvgDaysToTrending)
	}
}

func TestGetCountryStats_CountsDistinctVideos(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "trending_date", "17.14.11"),
		video("a", "US", "trending_date", "17.15.11"),
	)

	stats, err := db.GetCountryStats(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].VideoCount != 1 {
		t.Errorf("GetCountryStats() = %+v, want one US row with video_count 1", stats)
	}
}

func TestGetOverallStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertVideos(t, db,
		video("a", "US", "channel_title", "One", "views", int64(10)),
		video("b", "US", "channel_title", "Two", "views", int64(30)),
		video("a", "GB", "channel_title", "One", "views", int64(20)),
	)

	s, err := db.GetOverallStats(ctx, VideoFilter{})
	if err != nil {
		t.Fatalf("GetOverallStats() error = %v", err)
	}
	if s.TotalVideos != 2 || s.UniqueChannels != 2 || s.Countries != 2 {
		t.Errorf("GetOverallStats() = %+v", s)
	}
	if s.AvgViews == nil || !approx(*s.AvgViews, 20) {
		t.Errorf("avg_views = %v, want 20", s.AvgViews)
	}
	if s.AvgDaysTrending != nil {
		t.Errorf("avg_days_trending = %v, want nil", *s.AvgDaysTrending)
	}

	empty, err := db.GetOverallStats(ctx, VideoFilter{Countries: []string{"ZZ"}})
	if err != nil {
		t.Fatal(err)
	}
	if empty.TotalVideos != 0 || empty.AvgViews != nil {
		t.Errorf("GetOverallStats(ZZ) = %+v, want zero counts and nil averages", empty)
	}
}

func TestCategoryQueries(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertCategories(t, db,
		int64(10), "Music",
		int64(24), "Entertainment",
		int64(29), "Nonprofits & Activism",
		int64(30), "Rock 'n' Roll",
	)
	insertVideos(t, db,
		video("m1", "US", "category_id", int64(10), "views", int64(1000), "engagement_rate", 2.0),
		video("m2", "US", "category_id", int64(10), "views", int64(3000), "engagement_rate", 4.0),
		video("m3", "GB", "category_id", int64(10), "views", int64(500)),
		video("e1", "US", "category_id", int64(24), "views", int64(100), "engagement_rate", 1.0),
		video("r1", "GB", "category_id", int64(30), "views", int64(7), "engagement_rate", 0.5),
		video("o1", "US", "category_id", int64(999), "views", int64(9999)),
	)

	t.Run("categories list", func(t *testing.T) {
		cats, err := db.GetCategories(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(cats) != 4 || cats[0].CategoryName != "Entertainment" {
			t.Errorf("GetCategories() = %+v", cats)
		}
	})

	t.Run("stats excludes orphans", func(t *testing.T) {
		stats, err := db.GetCategoryStats(ctx, VideoFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(stats) != 3 {
			t.Fatalf("got %d categories, want 3: %+v", len(stats), stats)
		}
		if stats[0].CategoryName != "Music" || stats[0].VideoCount != 3 {
			t.Errorf("first row = %+v, want Music with 3 videos", stats[0])
		}
		if stats[0].AvgViews == nil || !approx(*stats[0].AvgViews, 1500) {
			t.Errorf("Music avg_views = %v, want 1500", stats[0].AvgViews)
		}
	})

	t.Run("apostrophe category filter", func(t *testing.T) {
		stats, err := db.GetCategoryStats(ctx, VideoFilter{Categories: []string{"Rock 'n' Roll"}})
		if err != nil {
			t.Fatal(err)
		}
		if len(stats) != 1 || stats[0].CategoryName != "Rock 'n' Roll" {
			t.Errorf("GetCategoryStats(Rock 'n' Roll) = %+v", stats)
		}
	})

	t.Run("top categories", func(t *testing.T) {
		top, err := db.GetTopCategories(ctx, nil, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(top) != 2 || top[0] != "Music" {
			t.Errorf("GetTopCategories() = %v", top)
		}

		gb, err := db.GetTopCategories(ctx, []string{"GB"}, 5)
		if err != nil {
			t.Fatal(err)
		}
		if len(gb) != 2 {
			t.Errorf("GetTopCategories(GB) = %v, want 2 categories", gb)
		}
	})

	t.Run("engagement rows", func(t *testing.T) {
		rows, err := db.GetCategoryEngagement(ctx, []string{"US"}, []string{"Music", "Entertainment"})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 3 {
			t.Errorf("GetCategoryEngagement() returned %d rows, want 3", len(rows))
		}

		none, err := db.GetCategoryEngagement(ctx, []string{"US"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if none == nil || len(none) != 0 {
			t.Errorf("GetCategoryEngagement(no names) = %#v, want empty slice", none)
		}
	})
}

func TestGetTitleLengthAnalysis(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("long", "US", "title_length", int64(80), "views", int64(300)),
		video("short", "US", "title_length", int64(10), "views", int64(100)),
		video("mid", "US", "title_length", int64(45), "views", int64(200)),
	)

	stats, err := db.GetTitleLengthAnalysis(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatalf("GetTitleLengthAnalysis() error = %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d buckets, want 3", len(stats))
	}
	for i, want := range models.TitleLengthBuckets {
		if stats[i].Bucket != want {
			t.Errorf("bucket %d = %q, want %q", i, stats[i].Bucket, want)
		}
		if stats[i].VideoCount != 1 {
			t.Errorf("bucket %q count = %d, want 1", want, stats[i].VideoCount)
		}
	}
	if stats[0].AvgViews == nil || *stats[0].AvgViews != 100 {
		t.Errorf("short avg_views = %v, want 100", stats[0].AvgViews)
	}
}

func TestGetTagAnalysis_MinimumGroupSize(t *testing.T) {
	db := setupTestDB(t)

	var seeds []videoSeed
	for i := 0; i < TagGroupMinRows; i++ {
		seeds = append(seeds, video(fmt.Sprintf("ten-%d", i), "US", "tag_count", int64(5), "views", int64(10)))
	}
	for i := 0; i < TagGroupMinRows-1; i++ {
		seeds = append(seeds, video(fmt.Sprintf("nine-%d", i), "US", "tag_count", int64(7), "views", int64(10)))
	}
	for i := 0; i < TagGroupMinRows; i++ {
		seeds = append(seeds, video(fmt.Sprintf("many-%d", i), "US", "tag_count", int64(TagCountMax+1), "views", int64(10)))
	}
	insertVideos(t, db, seeds...)

	stats, err := db.GetTagAnalysis(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatalf("GetTagAnalysis() error = %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d groups %+v, want only tag_count 5", len(stats), stats)
	}
	if stats[0].TagCount != 5 || stats[0].VideoCount != int64(TagGroupMinRows) {
		t.Errorf("group = %+v", stats[0])
	}
}

func TestGetDaysToTrending_Bounds(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "days_to_trending", -1.0),
		video("b", "US", "days_to_trending", 0.0),
		video("c", "US", "days_to_trending", 30.0),
		video("d", "US", "days_to_trending", 31.0),
		video("e", "US"),
	)

	days, err := db.GetDaysToTrending(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Errorf("GetDaysToTrending() = %v, want [0 30]", days)
	}
}

func TestGetPublishHeatmap(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "publish_day_of_week", int64(1), "publish_hour", int64(9), "views", int64(10)),
		video("b", "US", "publish_day_of_week", int64(1), "publish_hour", int64(9), "views", int64(30)),
		video("c", "US", "publish_day_of_week", int64(0), "publish_hour", int64(23), "views", int64(5)),
	)

	cells, err := db.GetPublishHeatmap(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	if *cells[0].DayOfWeek != 0 || *cells[1].Hour != 9 {
		t.Errorf("cells out of order: %+v", cells)
	}
	if *cells[1].AvgViews != 20 {
		t.Errorf("avg_views = %v, want 20", *cells[1].AvgViews)
	}
}

func TestGetPublishHeatmap_NullCellsFirst(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "publish_day_of_week", int64(0), "publish_hour", int64(0), "views", int64(10)),
		video("b", "US", "publish_day_of_week", int64(0), "views", int64(20)),
		video("c", "US", "views", int64(30)),
	)

	cells, err := db.GetPublishHeatmap(context.Background(), VideoFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
	if cells[0].DayOfWeek != nil || cells[0].Hour != nil {
		t.Errorf("cells[0] = %+v, want the all-null cell", cells[0])
	}
	if cells[1].DayOfWeek == nil || *cells[1].DayOfWeek != 0 || cells[1].Hour != nil {
		t.Errorf("cells[1] = %+v, want day 0 with null hour", cells[1])
	}
	if cells[2].Hour == nil || *cells[2].Hour != 0 {
		t.Errorf("cells[2] = %+v, want day 0 hour 0", cells[2])
	}
}

func TestSamples_BoundedAndDistinct(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var seeds []videoSeed
	for i := 0; i < 25; i++ {
		seeds = append(seeds, video(fmt.Sprintf("v%02d", i), "US",
			"views", int64(i), "likes", int64(i*2), "dislikes", int64(i),
			"engagement_rate", float64(i)/10, "performance_class", models.PerformanceStandardTrending))
	}
	insertVideos(t, db, seeds...)

	small, err := db.GetViewsEngagementSample(ctx, VideoFilter{}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(small) != 10 {
		t.Errorf("sample(10) returned %d rows", len(small))
	}

	all, err := db.GetViewsEngagementSample(ctx, VideoFilter{}, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 25 {
		t.Fatalf("sample(1000) returned %d rows, want all 25", len(all))
	}
	seen := map[int64]bool{}
	for _, p := range all {
		if seen[*p.Views] {
			t.Errorf("row with views %d sampled twice", *p.Views)
		}
		seen[*p.Views] = true
	}

	ld, err := db.GetLikesDislikesSample(ctx, VideoFilter{Countries: []string{"GB"}}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if ld == nil || len(ld) != 0 {
		t.Errorf("GetLikesDislikesSample(GB) = %#v, want empty slice", ld)
	}
}

func TestGetTopChannels(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "channel_title", "Alpha", "views", int64(5_000_000_000)),
		video("b", "US", "channel_title", "Alpha", "views", int64(5_000_000_000)),
		video("c", "US", "channel_title", "Beta", "views", int64(7)),
		video("d", "US", "views", int64(100)),
	)

	top, err := db.GetTopChannels(context.Background(), VideoFilter{}, 2)
	if err != nil {
		t.Fatalf("GetTopChannels() error = %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d channels, want 2", len(top))
	}
	if top[0].ChannelTitle == nil || *top[0].ChannelTitle != "Alpha" || *top[0].TotalViews != 10_000_000_000 {
		t.Errorf("first channel = %+v", top[0])
	}
	if top[1].ChannelTitle != nil {
		t.Errorf("second channel should be the NULL title group, got %q", *top[1].ChannelTitle)
	}
}

func TestGetCorrelationInputs(t *testing.T) {
	db := setupTestDB(t)
	insertVideos(t, db,
		video("a", "US", "views", int64(1), "likes", int64(2), "tag_count", int64(3)),
		video("b", "CA", "views", int64(4)),
	)

	rows, err := db.GetCorrelationInputs(context.Background(), VideoFilter{Countries: []string{"US"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	vals, ok := rows[0].Values()
	if !ok[0] || vals[0] != 1 || !ok[7] || vals[7] != 3 || ok[4] {
		t.Errorf("Values() = %v %v", vals, ok)
	}
}

func TestTables(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertCategories(t, db, int64(2), "Autos", int64(1), "Film")
	insertVideos(t, db,
		video("a", "US", "views", int64(10), "title", "first"),
		video("b", "US", "views", int64(30)),
		video("c", "GB", "views", int64(20)),
	)
	err := db.InsertRows(ctx, ChannelStatsTable.Name, ChannelStatsTable.ColumnNames(), [][]interface{}{
		{"Small", int64(1), int64(5), 5.0, 0.1},
		{"Big", int64(2), int64(500), 250.0, 0.2},
	})
	if err != nil {
		t.Fatal(err)
	}

	cats, err := db.GetCategoriesTable(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[0].CategoryID != 1 {
		t.Errorf("GetCategoriesTable() = %+v", cats)
	}

	channels, err := db.GetChannelStatsTable(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(channels) != 1 || channels[0].ChannelTitle != "Big" {
		t.Errorf("GetChannelStatsTable(1) = %+v", channels)
	}
	if n, _ := db.GetChannelStatsCount(ctx); n != 2 {
		t.Errorf("GetChannelStatsCount() = %d, want 2", n)
	}

	tests := []struct {
		country   string
		wantFirst string
		wantCount int64
	}{
		{"All", "b", 3},
		{"all", "b", 3},
		{"", "b", 3},
		{"GB", "c", 1},
	}
	for _, tt := range tests {
		t.Run("country="+tt.country, func(t *testing.T) {
			rows, err := db.GetVideosTable(ctx, tt.country, 100)
			if err != nil {
				t.Fatal(err)
			}
			if int64(len(rows)) != tt.wantCount || rows[0].VideoID != tt.wantFirst {
				t.Errorf("GetVideosTable(%q) = %d rows, first %q", tt.country, len(rows), rows[0].VideoID)
			}
			n, err := db.GetVideosCount(ctx, tt.country)
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.wantCount {
				t.Errorf("GetVideosCount(%q) = %d, want %d", tt.country, n, tt.wantCount)
			}
		})
	}

	limited, err := db.GetVideosTable(ctx, AllCountries, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("GetVideosTable(limit 1) returned %d rows", len(limited))
	}
}

func TestValidationReport(t *testing.T) {
	db := setupTestDB(t)
	insertCategories(t, db, int64(10), "Music", int64(24), "Entertainment")
	insertVideos(t, db,
		video("a", "US", "category_id", int64(10), "trending_date", "17.14.11", "performance_class", models.PerformanceExplosive),
		video("b", "US", "category_id", int64(10), "trending_date", "18.01.06"),
		video("c", "GB", "category_id", int64(24), "trending_date", "17.20.11", "performance_class", models.PerformanceExplosive),
	)

	r, err := db.ValidationReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("ValidationReport() error = %v", err)
	}
	if r.Categories != 2 || r.ChannelStats != 0 || r.Videos != 3 {
		t.Errorf("counts = %d/%d/%d", r.Categories, r.ChannelStats, r.Videos)
	}
	if len(r.VideosByCountry) != 2 || r.VideosByCountry[0].Value != "US" || r.VideosByCountry[0].Count != 2 {
		t.Errorf("videos by country = %+v", r.VideosByCountry)
	}
	if len(r.TopCategories) != 1 || r.TopCategories[0].Value != "Music" {
		t.Errorf("top categories = %+v", r.TopCategories)
	}
	if len(r.PerformanceClasses) != 2 || r.PerformanceClasses[0].Value != models.PerformanceExplosive {
		t.Errorf("performance classes = %+v", r.PerformanceClasses)
	}
	if r.MinTrendingDate == nil || *r.MinTrendingDate != "17.14.11" || *r.MaxTrendingDate != "18.01.06" {
		t.Errorf("date range = %v..%v", r.MinTrendingDate, r.MaxTrendingDate)
	}
}
