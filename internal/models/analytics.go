// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package models

// CountryStat is one row of the country stats query.
type CountryStat struct {
	Country           string   `json:"country"`
	VideoCount        int64    `json:"video_count"` // distinct video ids
	AvgViews          *float64 `json:"avg_views"`
	AvgEngagement     *float64 `json:"avg_engagement"`
	AvgDaysToTrending *float64 `json:"avg_days_to_trending"`
}

// CategoryStat is one row of the category stats query.
type CategoryStat struct {
	CategoryName  string   `json:"category_name"`
	VideoCount    int64    `json:"video_count"`
	AvgViews      *float64 `json:"avg_views"`
	AvgEngagement *float64 `json:"avg_engagement"`
	AvgLikeRatio  *float64 `json:"avg_like_ratio"`
}

// CorrelationInput holds the raw measures of one video row used for
// pairwise correlation.
type CorrelationInput struct {
	Views          *int64   `json:"views"`
	Likes          *int64   `json:"likes"`
	Dislikes       *int64   `json:"dislikes"`
	CommentCount   *int64   `json:"comment_count"`
	EngagementRate *float64 `json:"engagement_rate"`
	LikeRatio      *float64 `json:"like_ratio"`
	TitleLength    *int64   `json:"title_length"`
	TagCount       *int64   `json:"tag_count"`
}

// CorrelationColumns lists the CorrelationInput measures in matrix order.
var CorrelationColumns = []string{
	"views", "likes", "dislikes", "comment_count",
	"engagement_rate", "like_ratio", "title_length", "tag_count",
}

// Values returns the measures in CorrelationColumns order. ok[i] is false
// when the i-th measure is NULL.
func (c CorrelationInput) Values() (vals [8]float64, ok [8]bool) {
	ints := []*int64{c.Views, c.Likes, c.Dislikes, c.CommentCount}
	for i, p := range ints {
		if p != nil {
			vals[i], ok[i] = float64(*p), true
		}
	}
	if c.EngagementRate != nil {
		vals[4], ok[4] = *c.EngagementRate, true
	}
	if c.LikeRatio != nil {
		vals[5], ok[5] = *c.LikeRatio, true
	}
	if c.TitleLength != nil {
		vals[6], ok[6] = float64(*c.TitleLength), true
	}
	if c.TagCount != nil {
		vals[7], ok[7] = float64(*c.TagCount), true
	}
	return vals, ok
}

// HeatmapCell is the average views for one (day of week, hour) slot.
// DayOfWeek is 0 for Monday through 6 for Sunday.
type HeatmapCell struct {
	DayOfWeek *int64   `json:"publish_day_of_week"`
	Hour      *int64   `json:"publish_hour"`
	AvgViews  *float64 `json:"avg_views"`
}

// CategoryEngagement is one video row's engagement within a top category.
type CategoryEngagement struct {
	CategoryName   string   `json:"category_name"`
	EngagementRate *float64 `json:"engagement_rate"`
}

// EngagementByCategory is the two-step engagement result: the resolved top
// categories and the detail rows restricted to them.
type EngagementByCategory struct {
	Categories []string             `json:"categories"`
	Rows       []CategoryEngagement `json:"rows"`
}

// ViewsEngagementPoint is one sampled point of the views/engagement scatter.
type ViewsEngagementPoint struct {
	Views            *int64   `json:"views"`
	EngagementRate   *float64 `json:"engagement_rate"`
	PerformanceClass *string  `json:"performance_class"`
}

// LikesDislikesPoint is one sampled point of the likes/dislikes scatter.
type LikesDislikesPoint struct {
	Likes    *int64 `json:"likes"`
	Dislikes *int64 `json:"dislikes"`
}

// ChannelViews is a channel ranked by summed views.
type ChannelViews struct {
	ChannelTitle *string `json:"channel_title"`
	TotalViews   *int64  `json:"total_views"`
}

// Title length buckets in display order.
const (
	TitleBucketShort  = "Short (<30)"
	TitleBucketMedium = "Medium (30-60)"
	TitleBucketLong   = "Long (60+)"
)

// TitleLengthBuckets is the fixed bucket order.
var TitleLengthBuckets = []string{TitleBucketShort, TitleBucketMedium, TitleBucketLong}

// TitleLengthStat is one title length bucket.
type TitleLengthStat struct {
	Bucket     string   `json:"title_category"`
	AvgViews   *float64 `json:"avg_views"`
	VideoCount int64    `json:"video_count"`
}

// TagCountStat aggregates videos sharing a tag count.
type TagCountStat struct {
	TagCount      int64    `json:"tag_count"`
	AvgViews      *float64 `json:"avg_views"`
	AvgEngagement *float64 `json:"avg_engagement"`
	VideoCount    int64    `json:"video_count"`
}

// OverallStats is the single-row dataset summary.
type OverallStats struct {
	TotalVideos     int64    `json:"total_videos"`
	UniqueChannels  int64    `json:"unique_channels"`
	Countries       int64    `json:"countries"`
	AvgViews        *float64 `json:"avg_views"`
	AvgEngagement   *float64 `json:"avg_engagement"`
	AvgDaysTrending *float64 `json:"avg_days_trending"`
}
