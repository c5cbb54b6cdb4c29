// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSource means a source CSV does not exist.
	ErrMissingSource = errors.New("missing source file")

	// ErrSchemaMismatch means a source header lacks required columns.
	ErrSchemaMismatch = errors.New("source header does not match schema")

	// ErrMalformedRow means a cell could not be coerced to its column type
	// or a CSV record could not be parsed.
	ErrMalformedRow = errors.New("malformed row")

	// ErrDuplicateKey means two video rows share (video_id, trending_date, country).
	ErrDuplicateKey = errors.New("duplicate video key")
)

// RowError locates a malformed cell. It matches ErrMalformedRow with errors.Is.
type RowError struct {
	File   string
	Line   int // 1-based, header is line 1
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %s line %d: %v", ErrMalformedRow, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s line %d column %s: %q: %v", ErrMalformedRow, e.File, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}

// failureReason maps a load error to the metrics label.
func failureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingSource):
		return "missing_source"
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, ErrMalformedRow):
		return "malformed_row"
	case errors.Is(err, ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, errLoadInProgress):
		return "busy"
	default:
		return "other"
	}
}
