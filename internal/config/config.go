// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

// Package config loads TrendLens configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
package config

import (
	"path/filepath"
	"time"
)

// Config is the root configuration for both the API server and trendctl.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Loader   LoaderConfig   `koanf:"loader"`
	Cache    CacheConfig    `koanf:"cache"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds DuckDB store settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// LoaderConfig locates the CSV sources and tunes ingestion.
type LoaderConfig struct {
	DataDir          string `koanf:"data_dir"`
	CategoriesFile   string `koanf:"categories_file"`
	ChannelStatsFile string `koanf:"channel_stats_file"`
	VideosFile       string `koanf:"videos_file"`
	ChunkSize        int    `koanf:"chunk_size"`
	TopCategories    int    `koanf:"top_categories"`
}

// CategoriesPath returns the categories CSV path, resolved against DataDir.
func (l LoaderConfig) CategoriesPath() string { return l.resolve(l.CategoriesFile) }

// ChannelStatsPath returns the channel stats CSV path, resolved against DataDir.
func (l LoaderConfig) ChannelStatsPath() string { return l.resolve(l.ChannelStatsFile) }

// VideosPath returns the cleaned videos CSV path, resolved against DataDir.
func (l LoaderConfig) VideosPath() string { return l.resolve(l.VideosFile) }

func (l LoaderConfig) resolve(name string) string {
	if filepath.IsAbs(name) || l.DataDir == "" {
		return name
	}
	return filepath.Join(l.DataDir, name)
}

// CacheConfig controls query memoization.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// BreakerConfig tunes the circuit breaker in front of the store.
type BreakerConfig struct {
	FailureThreshold uint32        `koanf:"failure_threshold"`
	Timeout          time.Duration `koanf:"timeout"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads the configuration. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
