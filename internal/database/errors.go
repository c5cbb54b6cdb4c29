// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/trendlens/internal/logging"
)

// ErrStoreUnavailable reports that the store cannot serve queries.
var ErrStoreUnavailable = errors.New("store unavailable")

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where Close errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// isConnectionError reports whether err means the store itself is gone,
// as opposed to a bad query.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "IO Error") ||
		strings.Contains(msg, "Could not set lock on file")
}

// classifyError wraps connection-level failures and breaker rejections with
// ErrStoreUnavailable. Other errors pass through with the query name attached.
func classifyError(queryName string, err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) || isConnectionError(err) {
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, queryName, err)
	}
	return fmt.Errorf("%s: %w", queryName, err)
}
