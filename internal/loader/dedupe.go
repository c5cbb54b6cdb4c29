// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

// dedupe keeps one row per value of column key. With keepLast the surviving
// row is the last occurrence and sits at that occurrence's position;
// otherwise the first occurrence wins. It returns the survivors and the
// number of discarded rows.
func dedupe(rows [][]interface{}, key int, keepLast bool) ([][]interface{}, int) {
	winner := make(map[interface{}]int, len(rows))
	for i, row := range rows {
		k := row[key]
		if _, seen := winner[k]; seen && !keepLast {
			continue
		}
		winner[k] = i
	}

	kept := make([][]interface{}, 0, len(winner))
	for i, row := range rows {
		if winner[row[key]] == i {
			kept = append(kept, row)
		}
	}
	return kept, len(rows) - len(kept)
}
