// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/tomtom215/trendlens/internal/loader"
	"github.com/tomtom215/trendlens/internal/models"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// textWriter accumulates the first write error so the printers stay linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func printLoadReport(w io.Writer, r *loader.Report) error {
	t := &textWriter{w: w}
	t.printf("Loaded %s in %s (%s video chunks)\n", r.Path, r.Duration.Round(time.Millisecond), humanize.Comma(int64(r.Chunks)))
	if r.CategoriesDropped > 0 || r.ChannelStatsDropped > 0 {
		t.printf("Duplicates dropped: %s categories, %s channel rows\n",
			humanize.Comma(r.CategoriesDropped), humanize.Comma(r.ChannelStatsDropped))
	}
	if len(r.DroppedColumns) > 0 {
		t.printf("Ignored video columns: %s\n", strings.Join(r.DroppedColumns, ", "))
	}
	t.printf("\n")
	printDiagnostics(t, &r.LoadReport)
	return t.err
}

func printStoreReport(w io.Writer, r *storeReport) error {
	t := &textWriter{w: w}
	t.printf("Store %s", r.Path)
	if r.Size > 0 {
		t.printf(" (%s, written %s)", humanize.IBytes(uint64(r.Size)), humanize.Time(r.Modified))
	}
	t.printf("\n\n")
	printDiagnostics(t, &r.LoadReport)
	return t.err
}

func printDiagnostics(t *textWriter, r *models.LoadReport) {
	t.printf("Rows\n")
	printCounts(t, []models.CountedValue{
		{Value: "categories", Count: r.Categories},
		{Value: "channel_stats", Count: r.ChannelStats},
		{Value: "videos", Count: r.Videos},
	})

	t.printf("Videos by country\n")
	printCounts(t, r.VideosByCountry)

	t.printf("Top categories\n")
	printCounts(t, r.TopCategories)

	t.printf("Performance classes\n")
	printCounts(t, r.PerformanceClasses)

	t.printf("Trending dates\n  %s .. %s\n", orNone(r.MinTrendingDate), orNone(r.MaxTrendingDate))
}

func printCounts(t *textWriter, values []models.CountedValue) {
	if len(values) == 0 {
		t.printf("  (none)\n")
		return
	}
	width := 0
	for _, v := range values {
		if n := len(label(v.Value)); n > width {
			width = n
		}
	}
	for _, v := range values {
		t.printf("  %-*s  %12s\n", width, label(v.Value), humanize.Comma(v.Count))
	}
}

func label(s string) string {
	if s == "" {
		return "(blank)"
	}
	return s
}

func orNone(s *string) string {
	if s == nil {
		return "n/a"
	}
	return *s
}
