// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package models defines the data structures shared by the store, the analytics
service and the HTTP API.

Entities mirror the three stored tables:

  - Category: one row per YouTube category id
  - ChannelStat: pre-aggregated per-channel figures computed upstream
  - VideoRow: the subset of a video fact row exposed by the videos table query

Result types (CountryStat, CategoryStat, HeatmapCell, ...) carry one row of a
catalog query each. Averages are pointers because SQL AVG over zero non-null
inputs yields NULL; counts are plain integers. Nullable source columns that can
appear as group keys (channel_title, publish_hour, ...) are pointers too.
*/
package models
