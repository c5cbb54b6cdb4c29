// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		err       error
		errorType string
	}{
		{"success", "test_country_stats", nil, ""},
		{"canceled", "test_overall_stats", context.Canceled, "canceled"},
		{"wrapped timeout", "test_top_channels", fmt.Errorf("query: %w", context.DeadlineExceeded), "timeout"},
		{"other", "test_tag_analysis", errors.New("syntax error"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before float64
			if tt.err != nil {
				before = testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.query, tt.errorType))
			}

			RecordDBQuery(tt.query, 5*time.Millisecond, tt.err)

			if tt.err != nil {
				after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.query, tt.errorType))
				if after != before+1 {
					t.Errorf("error counter = %v, want %v", after, before+1)
				}
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test/countries", "200"))
	RecordAPIRequest("GET", "/test/countries", "200", 20*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test/countries", "200"))
	if after != before+1 {
		t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordLoad(t *testing.T) {
	before := testutil.ToFloat64(LoaderFailures.WithLabelValues("test_schema_mismatch"))
	RecordLoad(time.Second, "test_schema_mismatch")
	if got := testutil.ToFloat64(LoaderFailures.WithLabelValues("test_schema_mismatch")); got != before+1 {
		t.Errorf("LoaderFailures = %v, want %v", got, before+1)
	}

	RecordLoad(time.Second, "")
	if testutil.ToFloat64(LoaderLastSuccess) == 0 {
		t.Error("LoaderLastSuccess not set after successful load")
	}
}

func TestRecordLoaderRows(t *testing.T) {
	before := testutil.ToFloat64(LoaderRowsLoaded.WithLabelValues("test_videos"))
	RecordLoaderRows("test_videos", 250)
	if got := testutil.ToFloat64(LoaderRowsLoaded.WithLabelValues("test_videos")); got != before+250 {
		t.Errorf("LoaderRowsLoaded = %v, want %v", got, before+250)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	RecordCircuitBreakerTransition("test-store", "closed", "open", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-store")); got != 2 {
		t.Errorf("CircuitBreakerState = %v, want 2", got)
	}
}
