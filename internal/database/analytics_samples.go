// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/trendlens/internal/models"
)

// GetViewsEngagementSample returns a uniform random sample, without
// replacement, of at most n filtered rows. With fewer matching rows all of
// them are returned once.
func (db *DB) GetViewsEngagementSample(ctx context.Context, f VideoFilter, n int) ([]models.ViewsEngagementPoint, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT views, engagement_rate, performance_class
		FROM videos
		WHERE %s
		ORDER BY random()
		LIMIT ?`, where)

	return queryAndScan(ctx, db, "views_engagement_sample", q, append(args, n), func(rows *sql.Rows) (models.ViewsEngagementPoint, error) {
		var views sql.NullInt64
		var rate sql.NullFloat64
		var class sql.NullString
		if err := rows.Scan(&views, &rate, &class); err != nil {
			return models.ViewsEngagementPoint{}, err
		}
		return models.ViewsEngagementPoint{
			Views:            int64Ptr(views),
			EngagementRate:   floatPtr(rate),
			PerformanceClass: stringPtr(class),
		}, nil
	})
}

// GetLikesDislikesSample samples at most n filtered (likes, dislikes) pairs.
func (db *DB) GetLikesDislikesSample(ctx context.Context, f VideoFilter, n int) ([]models.LikesDislikesPoint, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT likes, dislikes
		FROM videos
		WHERE %s
		ORDER BY random()
		LIMIT ?`, where)

	return queryAndScan(ctx, db, "likes_dislikes_sample", q, append(args, n), func(rows *sql.Rows) (models.LikesDislikesPoint, error) {
		var likes, dislikes sql.NullInt64
		if err := rows.Scan(&likes, &dislikes); err != nil {
			return models.LikesDislikesPoint{}, err
		}
		return models.LikesDislikesPoint{Likes: int64Ptr(likes), Dislikes: int64Ptr(dislikes)}, nil
	})
}

// GetTopChannels ranks channels by summed views over filtered rows.
func (db *DB) GetTopChannels(ctx context.Context, f VideoFilter, topN int) ([]models.ChannelViews, error) {
	where, args := f.where("", false).Build()

	q := fmt.Sprintf(`
		SELECT channel_title, CAST(SUM(views) AS BIGINT) AS total_views
		FROM videos
		WHERE %s
		GROUP BY channel_title
		ORDER BY total_views DESC NULLS LAST, channel_title
		LIMIT ?`, where)

	return queryAndScan(ctx, db, "top_channels", q, append(args, topN), func(rows *sql.Rows) (models.ChannelViews, error) {
		var title sql.NullString
		var total sql.NullInt64
		if err := rows.Scan(&title, &total); err != nil {
			return models.ChannelViews{}, err
		}
		return models.ChannelViews{ChannelTitle: stringPtr(title), TotalViews: int64Ptr(total)}, nil
	})
}
