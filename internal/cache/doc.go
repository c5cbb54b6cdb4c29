// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

/*
Package cache memoizes catalog query results for a bounded time.

Results are keyed by query name plus a hash of the normalized parameters
(see GenerateKey). Entries expire lazily: an expired entry is dropped on the
lookup that finds it, and no background sweep runs. The store behind the
cache is read-only, so the only staleness is a reload of the store file, and
the TTL bounds that.

# Usage

	c := cache.New("analytics", time.Hour)

	key := cache.GenerateKey("country_stats", params)
	if v, ok := c.Get(key); ok {
	    return v.([]models.CountryStat), nil
	}
	stats, err := db.GetCountryStats(ctx, filter)
	if err == nil {
	    c.Set(key, stats)
	}

A disabled cache is a Noop cacher, which never stores anything. Callers see
identical results, only slower.

# Metrics

Hits, misses, evictions and the current entry count are exported through
internal/metrics under the cache name as the cache_type label.
*/
package cache
