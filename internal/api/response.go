// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trendlens/internal/analytics"
	"github.com/tomtom215/trendlens/internal/logging"
	"github.com/tomtom215/trendlens/internal/models"
)

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("ETag", generateETag(data))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a weak ETag over the body using FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `W/"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondData sends a successful envelope around data.
func respondData(w http.ResponseWriter, r *http.Request, data interface{}, meta models.Metadata) {
	meta.Timestamp = time.Now().UTC()
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: meta,
	})
}

// respondResult sends a catalog result.
func respondResult[T any](w http.ResponseWriter, r *http.Request, res analytics.Result[T]) {
	respondData(w, r, res.Data, metadataFor(res.Cached, res.Elapsed))
}

// metadataFor reports a query time of 0 for cache hits.
func metadataFor(cached bool, elapsed time.Duration) models.Metadata {
	meta := models.Metadata{Cached: cached}
	if !cached {
		meta.QueryTimeMS = elapsed.Milliseconds()
	}
	return meta
}

// respondError sends an error envelope. err, when set, is logged but never
// sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondQueryError maps a catalog error onto the envelope.
func respondQueryError(w http.ResponseWriter, r *http.Request, query string, err error) {
	status, code, message := queryErrorStatus(err)
	respondError(w, r, status, code, message, map[string]interface{}{"query": query}, err)
}
