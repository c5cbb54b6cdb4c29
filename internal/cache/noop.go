// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cache

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/trendlens/internal/metrics"
)

// Noop never retains anything. Every Get is a miss.
type Noop struct {
	name   string
	misses atomic.Int64
}

// NewNoop returns a disabled cacher.
func NewNoop(name string) *Noop {
	return &Noop{name: name}
}

func (n *Noop) Get(string) (interface{}, bool) {
	n.misses.Add(1)
	metrics.CacheMisses.WithLabelValues(n.name).Inc()
	return nil, false
}

func (n *Noop) Set(string, interface{})                      {}
func (n *Noop) SetWithTTL(string, interface{}, time.Duration) {}
func (n *Noop) Delete(string)                                 {}
func (n *Noop) Clear()                                        {}
func (n *Noop) Enabled() bool                                 { return false }
func (n *Noop) HitRate() float64                              { return 0 }

func (n *Noop) GetStats() Stats {
	return Stats{Misses: n.misses.Load()}
}
