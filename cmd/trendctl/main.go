// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/trendlens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trendctl:", err)
		os.Exit(1)
	}
}
