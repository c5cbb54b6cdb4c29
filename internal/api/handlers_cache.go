// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"net/http"

	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/models"
)

// CacheStats reports the memoization counters.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.svc.CacheStats(), models.Metadata{})
}

// CacheClear drops every memoized result and returns the counters afterwards.
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	before := h.svc.CacheStats()
	h.svc.ClearCache()

	logging.Ctx(r.Context()).Info().Int("entries", before.Entries).Msg("Query cache cleared")
	respondData(w, r, h.svc.CacheStats(), models.Metadata{})
}
