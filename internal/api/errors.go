// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/trendlens/internal/database"
)

// Error codes returned in the envelope.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
)

// queryErrorStatus maps a catalog error to a status, code and client message.
func queryErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "The trending store is unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "The query timed out"
	default:
		return http.StatusInternalServerError, ErrCodeDatabase, "A database error occurred"
	}
}
