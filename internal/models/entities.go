// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package models

// Category is a YouTube video category.
type Category struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// ChannelStat is a pre-aggregated channel dimension row. The loader stores
// these as delivered and never derives them from videos.
type ChannelStat struct {
	ChannelTitle  string  `json:"channel_title"`
	VideoCount    int64   `json:"video_count"`
	TotalViews    int64   `json:"total_views"`
	AvgViews      float64 `json:"avg_views"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// VideoRow is the projection returned by the videos table query.
type VideoRow struct {
	VideoID        string   `json:"video_id"`
	Title          *string  `json:"title"`
	ChannelTitle   *string  `json:"channel_title"`
	CategoryID     *int64   `json:"category_id"`
	Country        string   `json:"country"`
	Views          *int64   `json:"views"`
	Likes          *int64   `json:"likes"`
	Dislikes       *int64   `json:"dislikes"`
	CommentCount   *int64   `json:"comment_count"`
	EngagementRate *float64 `json:"engagement_rate"`
	TrendingDate   string   `json:"trending_date"`
	PublishTime    *string  `json:"publish_time"`
	DaysToTrending *float64 `json:"days_to_trending"`
}

// Performance classes assigned upstream.
const (
	PerformanceExplosive        = "Explosive"
	PerformanceHighPerforming   = "High-Performing"
	PerformanceStandardTrending = "Standard Trending"
)
