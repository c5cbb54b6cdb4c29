// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package models

// CorrelationMatrix is a square Pearson matrix over Columns. A nil entry means
// the coefficient is undefined (fewer than two complete pairs or zero variance).
type CorrelationMatrix struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
	Rows    int          `json:"rows"`
}

// FeatureCorrelation is one measure's correlation with views.
type FeatureCorrelation struct {
	Feature     string  `json:"feature"`
	Correlation float64 `json:"correlation"`
}

// PublishSlot is the heatmap cell with the highest average views.
type PublishSlot struct {
	DayOfWeek int64   `json:"publish_day_of_week"`
	DayName   string  `json:"day_name"`
	Hour      int64   `json:"publish_hour"`
	AvgViews  float64 `json:"avg_views"`
}

// DaysSummary summarizes the days-to-trending distribution.
type DaysSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Insights gathers derived figures computed from several catalog queries.
// Each field is nil when its inputs are empty.
type Insights struct {
	ViewsCorrelations   []FeatureCorrelation `json:"views_correlations"`
	BestPublishSlot     *PublishSlot         `json:"best_publish_slot"`
	DaysToTrending      *DaysSummary         `json:"days_to_trending"`
	BestTitleBucket     *TitleLengthStat     `json:"best_title_bucket"`
	TagViewsCorrelation *float64             `json:"tag_views_correlation"`
}
