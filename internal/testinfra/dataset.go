// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package testinfra

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/trendlens/internal/database"
)

// Source file names, matching the exporter.
const (
	CategoriesFile   = "categories.csv"
	ChannelStatsFile = "channel_stats.csv"
	VideosFile       = "cleaned_videos.csv"
)

// Row is one video record keyed by column name.
type Row map[string]string

// Dataset is the content of the three source files. Cells are raw CSV text.
type Dataset struct {
	Categories [][]string // category_id, category_name
	Channels   [][]string // channel_title, video_count, total_views, avg_views, avg_engagement
	Videos     []Row

	// VideoHeader overrides the videos header; nil uses VideoHeader().
	VideoHeader []string
}

// Sources are the paths of a written dataset.
type Sources struct {
	Dir          string
	Categories   string
	ChannelStats string
	Videos       string
}

// VideoHeader returns the schema columns followed by the two derived columns
// the exporter also writes and the loader drops.
func VideoHeader() []string {
	return append(database.VideosTable.ColumnNames(), "category_name", "title_length_category")
}

// HeaderWithout returns VideoHeader() minus the named columns.
func HeaderWithout(cols ...string) []string {
	skip := make(map[string]bool, len(cols))
	for _, c := range cols {
		skip[c] = true
	}
	var out []string
	for _, h := range VideoHeader() {
		if !skip[h] {
			out = append(out, h)
		}
	}
	return out
}

// Video returns a complete, valid video record for (id, country) on the
// default trending date. kv pairs override cells; "" makes a cell empty.
func Video(id, country string, kv ...string) Row {
	r := Row{
		"video_id":               id,
		"trending_date":          "17.14.11",
		"title":                  "Video " + id,
		"channel_title":          "Channel " + id,
		"category_id":            "10",
		"publish_time":           "2017-11-13T17:13:01.000Z",
		"tags":                   "music|live",
		"views":                  "1000",
		"likes":                  "100",
		"dislikes":               "10",
		"comment_count":          "20",
		"thumbnail_link":         "https://i.ytimg.com/vi/" + id + "/default.jpg",
		"comments_disabled":      "False",
		"ratings_disabled":       "False",
		"video_error_or_removed": "False",
		"description":            "About " + id,
		"country":                country,
		"engagement_rate":        "13.0",
		"like_ratio":             "0.909",
		"comment_rate":           "2.0",
		"dislike_ratio":          "0.091",
		"days_to_trending":       "1.0",
		"publish_hour":           "17",
		"publish_day_of_week":    "0",
		"publish_month":          "11",
		"title_length":           "20",
		"description_length":     "12",
		"tag_count":              "2",
		"performance_class":      "Standard Trending",
		"category_name":          "Music",
		"title_length_category":  "Short",
	}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

// Write writes the dataset into dir.
func (d Dataset) Write(t testing.TB, dir string) Sources {
	t.Helper()

	s := Sources{
		Dir:          dir,
		Categories:   filepath.Join(dir, CategoriesFile),
		ChannelStats: filepath.Join(dir, ChannelStatsFile),
		Videos:       filepath.Join(dir, VideosFile),
	}

	WriteCSV(t, s.Categories, []string{"category_id", "category_name"}, d.Categories)
	WriteCSV(t, s.ChannelStats, database.ChannelStatsTable.ColumnNames(), d.Channels)

	header := d.VideoHeader
	if header == nil {
		header = VideoHeader()
	}
	records := make([][]string, len(d.Videos))
	for i, v := range d.Videos {
		rec := make([]string, len(header))
		for j, h := range header {
			rec[j] = v[h]
		}
		records[i] = rec
	}
	WriteCSV(t, s.Videos, header, records)
	return s
}

// WriteCSV writes header and records to path with standard quoting.
func WriteCSV(t testing.TB, path string, header []string, records [][]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		t.Fatalf("write header %s: %v", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
