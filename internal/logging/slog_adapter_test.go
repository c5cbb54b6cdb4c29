// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandlerWritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))
	slogger.Warn("service restarted", "service", "http", "attempt", 3, "backoff", time.Second)

	out := buf.String()
	for _, want := range []string{"service restarted", `"level":"warn"`, `"service":"http"`, `"attempt":3`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandlerGroupsAndAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSlogHandlerWithLogger(zerolog.New(&buf)).
		WithAttrs([]slog.Attr{slog.String("tree", "root")}).
		WithGroup("supervisor")
	slog.New(h).Info("event", "name", "http-server")

	out := buf.String()
	if !strings.Contains(out, `"supervisor.tree":"root"`) && !strings.Contains(out, `"tree":"root"`) {
		t.Errorf("pre-bound attr missing: %s", out)
	}
	if !strings.Contains(out, `"supervisor.name":"http-server"`) {
		t.Errorf("grouped attr missing: %s", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
