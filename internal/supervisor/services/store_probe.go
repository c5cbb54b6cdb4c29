// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package services

import (
	"context"
	"time"

	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DefaultProbeInterval is used when NewStoreProbeService gets no interval.
const DefaultProbeInterval = 30 * time.Second

// StoreProbeService pings the store on an interval and publishes the
// result as the trendlens_store_up gauge. State changes are logged once.
//
// A failed ping is not a service failure: restarting the probe cannot
// bring the store back, and the API already answers 503 on its own.
type StoreProbeService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration

	// up is nil until the first probe completes.
	up *bool
}

// NewStoreProbeService creates a probe for store.
func NewStoreProbeService(store Pinger, interval time.Duration) *StoreProbeService {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &StoreProbeService{store: store, interval: interval, timeout: timeout}
}

// Serve implements suture.Service.
func (p *StoreProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *StoreProbeService) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	err := p.store.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	if up {
		metrics.StoreUp.Set(1)
	} else {
		metrics.StoreUp.Set(0)
	}

	if p.up != nil && *p.up == up {
		return
	}
	p.up = &up
	if up {
		logging.Info().Msg("Store is available")
	} else {
		logging.Warn().Err(err).Msg("Store is unavailable")
	}
}

// String names the service in supervisor events.
func (p *StoreProbeService) String() string {
	return "store-probe"
}
