// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/trendlens/internal/models"
)

// DayNames maps publish_day_of_week (0=Monday) to a name.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Insights summarizes the catalog for the given countries: what correlates
// with views, when to publish, how fast videos trend and which title length
// performs best.
func (s *Service) Insights(ctx context.Context, f Filter) (Result[models.Insights], error) {
	start := time.Now()
	f = Filter{Countries: f.Countries}
	cached := true

	corr, err := s.Correlation(ctx, f)
	if err != nil {
		return Result[models.Insights]{}, err
	}
	cached = cached && corr.Cached

	heat, err := s.PublishHeatmap(ctx, f)
	if err != nil {
		return Result[models.Insights]{}, err
	}
	cached = cached && heat.Cached

	days, err := s.DaysToTrending(ctx, f)
	if err != nil {
		return Result[models.Insights]{}, err
	}
	cached = cached && days.Cached

	titles, err := s.TitleLength(ctx, f)
	if err != nil {
		return Result[models.Insights]{}, err
	}
	cached = cached && titles.Cached

	out := models.Insights{
		ViewsCorrelations: viewsCorrelations(corr.Data),
		BestPublishSlot:   bestPublishSlot(heat.Data),
		DaysToTrending:    summarizeDays(days.Data),
		BestTitleBucket:   bestTitleBucket(titles.Data),
	}
	if v, t := columnIndex("views"), columnIndex("tag_count"); v >= 0 && t >= 0 {
		out.TagViewsCorrelation = corr.Data.Values[v][t]
	}

	return Result[models.Insights]{Data: out, Cached: cached, Elapsed: time.Since(start)}, nil
}

func columnIndex(name string) int {
	for i, c := range models.CorrelationColumns {
		if c == name {
			return i
		}
	}
	return -1
}

// viewsCorrelations ranks every other column by its correlation with views,
// strongest first. Undefined coefficients are left out.
func viewsCorrelations(m models.CorrelationMatrix) []models.FeatureCorrelation {
	out := []models.FeatureCorrelation{}
	v := columnIndex("views")
	if v < 0 || len(m.Values) <= v {
		return out
	}
	for i, name := range m.Columns {
		if i == v || m.Values[v][i] == nil {
			continue
		}
		out = append(out, models.FeatureCorrelation{Feature: name, Correlation: *m.Values[v][i]})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Correlation != out[b].Correlation {
			return out[a].Correlation > out[b].Correlation
		}
		return out[a].Feature < out[b].Feature
	})
	return out
}

// bestPublishSlot picks the heatmap cell with the highest average views.
// Cells with an unknown day, hour or average are skipped. Ties keep the
// earliest slot.
func bestPublishSlot(cells []models.HeatmapCell) *models.PublishSlot {
	var best *models.PublishSlot
	for _, c := range cells {
		if c.DayOfWeek == nil || c.Hour == nil || c.AvgViews == nil {
			continue
		}
		if best != nil && *c.AvgViews <= best.AvgViews {
			continue
		}
		slot := models.PublishSlot{DayOfWeek: *c.DayOfWeek, Hour: *c.Hour, AvgViews: *c.AvgViews}
		if slot.DayOfWeek >= 0 && slot.DayOfWeek < int64(len(DayNames)) {
			slot.DayName = DayNames[slot.DayOfWeek]
		}
		best = &slot
	}
	return best
}

// summarizeDays returns the mean and median, or nil for no values.
func summarizeDays(days []float64) *models.DaysSummary {
	if len(days) == 0 {
		return nil
	}
	sorted := append([]float64(nil), days...)
	sort.Float64s(sorted)

	var sum float64
	for _, d := range sorted {
		sum += d
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return &models.DaysSummary{Count: n, Mean: sum / float64(n), Median: median}
}

// bestTitleBucket picks the bucket with the highest average views.
func bestTitleBucket(stats []models.TitleLengthStat) *models.TitleLengthStat {
	var best *models.TitleLengthStat
	for i := range stats {
		if stats[i].AvgViews == nil {
			continue
		}
		if best == nil || *stats[i].AvgViews > *best.AvgViews {
			b := stats[i]
			best = &b
		}
	}
	return best
}
