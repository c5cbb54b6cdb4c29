// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trendlens/internal/metrics"
)

// Entry is a cached value with its expiry.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a mutex-guarded map with per-entry TTL.
type Cache struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry

	statsMu sync.Mutex
	stats   Stats
}

// Stats are the cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int64
}

// New creates a TTL cache. name labels the exported metrics.
func New(name string, ttl time.Duration) *Cache {
	return &Cache{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Entry),
	}
}

// Get returns a live entry. An expired entry is removed and counts as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// re-check: a concurrent Set may have refreshed the key
		if cur, ok := c.entries[key]; ok && c.now().After(cur.ExpiresAt) {
			delete(c.entries, key)
			c.recordEviction(1)
		}
		c.updateSize()
		c.mu.Unlock()
		c.recordMiss()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key for ttl.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: c.now().Add(ttl),
	}
	c.updateSize()
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.recordEviction(1)
	}
	c.updateSize()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recordEviction(int64(len(c.entries)))
	c.entries = make(map[string]Entry)
	c.updateSize()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Enabled is always true for a TTL cache.
func (c *Cache) Enabled() bool { return true }

// GetStats returns a copy of the counters.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the hit percentage, 0 before any lookup.
func (c *Cache) HitRate() float64 {
	return hitRate(c.GetStats())
}

func hitRate(s Stats) float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

func (c *Cache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
	metrics.CacheHits.WithLabelValues(c.name).Inc()
}

func (c *Cache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
	metrics.CacheMisses.WithLabelValues(c.name).Inc()
}

func (c *Cache) recordEviction(n int64) {
	if n == 0 {
		return
	}
	c.statsMu.Lock()
	c.stats.Evictions += n
	c.statsMu.Unlock()
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(n))
}

// updateSize must be called with c.mu held.
func (c *Cache) updateSize() {
	n := int64(len(c.entries))
	c.statsMu.Lock()
	c.stats.Entries = n
	c.statsMu.Unlock()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(n))
}

// GenerateKey derives a cache key from a query name and its parameters.
// Equal parameter values always produce equal keys.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
