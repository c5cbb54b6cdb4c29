// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package models

// CountedValue is a label with a row count.
type CountedValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// LoadReport holds the post-load diagnostics. It describes the store, it is
// not stored in it.
type LoadReport struct {
	Categories         int64          `json:"categories"`
	ChannelStats       int64          `json:"channel_stats"`
	Videos             int64          `json:"videos"`
	VideosByCountry    []CountedValue `json:"videos_by_country"`
	TopCategories      []CountedValue `json:"top_categories"`
	PerformanceClasses []CountedValue `json:"performance_classes"`
	MinTrendingDate    *string        `json:"min_trending_date"`
	MaxTrendingDate    *string        `json:"max_trending_date"`
}
