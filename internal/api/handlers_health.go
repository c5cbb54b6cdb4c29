// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/trendlens/internal/models"
)

// readinessTimeout bounds the store ping behind /health/ready.
const readinessTimeout = 2 * time.Second

// HealthLive reports that the process is serving. It never touches the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, models.HealthStatus{
		Status:        "alive",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady pings the store. It answers 503 STORE_UNAVAILABLE until a
// loaded store is reachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeStoreUnavailable,
			"The trending store is not ready", nil, err)
		return
	}

	respondData(w, r, models.HealthStatus{
		Status:        "ready",
		Version:       h.version,
		StoreReady:    true,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}
