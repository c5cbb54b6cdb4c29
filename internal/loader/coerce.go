// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/trendlens/internal/database"
)

var (
	errNotInteger = errors.New("not an integer")
	errNotNumber  = errors.New("not a finite number")
	errNotFlag    = errors.New("not a boolean flag")
)

// coerce converts a raw CSV cell to the driver value for a column type.
// An empty cell is NULL. Text is returned verbatim.
func coerce(t database.ColumnType, raw string) (interface{}, error) {
	if t == database.ColumnText {
		if raw == "" {
			return nil, nil
		}
		return raw, nil
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	switch t {
	case database.ColumnInteger:
		return parseInteger(s)
	case database.ColumnReal:
		return parseReal(s)
	case database.ColumnFlag:
		return parseFlag(s)
	default:
		return raw, nil
	}
}

// parseInteger accepts integer literals and integral floats such as "123.0".
func parseInteger(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errNotInteger
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errNotInteger
	}
	return int64(f), nil
}

func parseReal(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	return f, nil
}

// parseFlag stores booleans as 0/1.
func parseFlag(s string) (int32, error) {
	switch strings.ToLower(s) {
	case "true", "1", "1.0":
		return 1, nil
	case "false", "0", "0.0":
		return 0, nil
	default:
		return 0, errNotFlag
	}
}
