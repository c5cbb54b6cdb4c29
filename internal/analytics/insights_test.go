// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/trendlens/internal/models"
)

func TestInsights_Sample(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Insights(ctx, Filter{})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	in := res.Data

	require.NotNil(t, in.BestPublishSlot)
	assert.EqualValues(t, 4, in.BestPublishSlot.DayOfWeek)
	assert.Equal(t, "Friday", in.BestPublishSlot.DayName)
	assert.EqualValues(t, 18, in.BestPublishSlot.Hour)
	assert.InDelta(t, 200.0, in.BestPublishSlot.AvgViews, 1e-9)

	require.NotNil(t, in.DaysToTrending)
	assert.Equal(t, 2, in.DaysToTrending.Count)
	assert.InDelta(t, 2.0, in.DaysToTrending.Mean, 1e-9)
	assert.InDelta(t, 2.0, in.DaysToTrending.Median, 1e-9)

	require.NotNil(t, in.BestTitleBucket)
	assert.Equal(t, models.TitleBucketMedium, in.BestTitleBucket.Bucket)

	for i := 1; i < len(in.ViewsCorrelations); i++ {
		assert.GreaterOrEqual(t, in.ViewsCorrelations[i-1].Correlation, in.ViewsCorrelations[i].Correlation)
	}
	for _, fc := range in.ViewsCorrelations {
		assert.NotEqual(t, "views", fc.Feature)
	}

	again, err := svc.Insights(ctx, Filter{Categories: []string{"Music"}})
	require.NoError(t, err)
	assert.True(t, again.Cached, "categories do not change insights")
}

func TestInsights_EmptySelection(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Insights(context.Background(), Filter{Countries: []string{"ZZ"}})
	require.NoError(t, err)
	assert.NotNil(t, res.Data.ViewsCorrelations)
	assert.Empty(t, res.Data.ViewsCorrelations)
	assert.Nil(t, res.Data.BestPublishSlot)
	assert.Nil(t, res.Data.DaysToTrending)
	assert.Nil(t, res.Data.BestTitleBucket)
	assert.Nil(t, res.Data.TagViewsCorrelation)
}

func TestBestPublishSlot(t *testing.T) {
	day := func(v int64) *int64 { return &v }
	cells := []models.HeatmapCell{
		{DayOfWeek: nil, Hour: day(3), AvgViews: f64(1e9)},
		{DayOfWeek: day(0), Hour: day(8), AvgViews: f64(50)},
		{DayOfWeek: day(2), Hour: day(9), AvgViews: f64(80)},
		{DayOfWeek: day(6), Hour: day(23), AvgViews: f64(80)},
		{DayOfWeek: day(5), Hour: day(1), AvgViews: nil},
	}
	best := bestPublishSlot(cells)
	require.NotNil(t, best)
	assert.Equal(t, models.PublishSlot{DayOfWeek: 2, DayName: "Wednesday", Hour: 9, AvgViews: 80}, *best)

	assert.Nil(t, bestPublishSlot(nil))
}

func TestSummarizeDays(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		mean   float64
		median float64
	}{
		{"single", []float64{4}, 4, 4},
		{"odd", []float64{9, 1, 2}, 4, 2},
		{"even", []float64{1, 2, 3, 10}, 4, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]float64(nil), tt.in...)
			got := summarizeDays(in)
			require.NotNil(t, got)
			assert.Equal(t, len(tt.in), got.Count)
			assert.InDelta(t, tt.mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.median, got.Median, 1e-9)
			assert.Equal(t, tt.in, in, "input is not reordered")
		})
	}
	assert.Nil(t, summarizeDays(nil))
}

func TestViewsCorrelations_Order(t *testing.T) {
	m := models.CorrelationMatrix{Columns: models.CorrelationColumns}
	k := len(models.CorrelationColumns)
	m.Values = make([][]*float64, k)
	for i := range m.Values {
		m.Values[i] = make([]*float64, k)
	}
	v := columnIndex("views")
	m.Values[v][v] = f64(1)
	m.Values[v][columnIndex("likes")] = f64(0.9)
	m.Values[v][columnIndex("dislikes")] = f64(-0.2)
	m.Values[v][columnIndex("comment_count")] = f64(0.9)

	got := viewsCorrelations(m)
	assert.Equal(t, []models.FeatureCorrelation{
		{Feature: "comment_count", Correlation: 0.9},
		{Feature: "likes", Correlation: 0.9},
		{Feature: "dislikes", Correlation: -0.2},
	}, got)
}
