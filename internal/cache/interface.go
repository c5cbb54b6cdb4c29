// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cache

import "time"

// Cacher is implemented by the TTL cache and the no-op cache.
type Cacher interface {
	// Get returns the value and true if present and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value.
	Delete(key string)

	// Clear removes all entries.
	Clear()

	// GetStats returns a snapshot of the counters.
	GetStats() Stats

	// HitRate returns hits as a percentage of lookups.
	HitRate() float64

	// Enabled reports whether values are actually retained.
	Enabled() bool
}

// Config selects and sizes a cacher.
type Config struct {
	// Name labels the metrics, e.g. "analytics".
	Name string
	// Enabled false yields a Noop cacher.
	Enabled bool
	// TTL is the default lifetime; 0 uses DefaultTTL.
	TTL time.Duration
}

// DefaultTTL is used when Config.TTL is unset.
const DefaultTTL = time.Hour

// NewCacher builds the cacher described by cfg.
func NewCacher(cfg Config) Cacher {
	if !cfg.Enabled {
		return NewNoop(cfg.Name)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return New(cfg.Name, cfg.TTL)
}

var (
	_ Cacher = (*Cache)(nil)
	_ Cacher = (*Noop)(nil)
)
