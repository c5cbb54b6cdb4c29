// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"time"

	"github.com/tomtom215/trendlens/internal/analytics"
)

// Handler serves the API endpoints from the memoized catalog.
type Handler struct {
	svc       *analytics.Service
	version   string
	startTime time.Time
}

// NewHandler creates a handler over svc. version is reported by the health
// endpoints.
func NewHandler(svc *analytics.Service, version string) *Handler {
	return &Handler{
		svc:       svc,
		version:   version,
		startTime: time.Now(),
	}
}
