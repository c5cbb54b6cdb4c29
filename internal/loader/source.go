// TrendLens - YouTube Trending Video Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendlens

package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/trendlens/internal/database"
	"github.com/tomtom215/trendlens/internal/logging"
)

const readBufferSize = 1 << 20

// source reads one CSV file and yields rows in schema column order.
type source struct {
	path    string
	name    string
	file    *os.File
	reader  *csv.Reader
	table   database.TableSchema
	index   []int // CSV field index for each schema column
	width   int   // header field count
	dropped []string
	line    int
}

// openSource opens path and validates its header against table.
func openSource(path string, table database.TableSchema) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := csv.NewReader(bufio.NewReaderSize(f, readBufferSize))
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	s := &source{
		path:   path,
		name:   filepath.Base(path),
		file:   f,
		reader: r,
		table:  table,
	}

	header, err := r.Read()
	if err != nil {
		closeQuietly(f)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", ErrSchemaMismatch, s.name)
		}
		return nil, &RowError{File: s.name, Line: 1, Err: err}
	}
	s.line = 1

	if err := s.mapHeader(header); err != nil {
		closeQuietly(f)
		return nil, err
	}
	if len(s.dropped) > 0 {
		logging.Warn().
			Str("file", s.name).
			Strs("columns", s.dropped).
			Msg("Dropping source columns that are not part of the schema")
	}
	return s, nil
}

// mapHeader resolves every schema column to its CSV position. All missing
// columns are reported at once.
func (s *source) mapHeader(header []string) error {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = headerName(h)
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	cols := s.table.ColumnNames()
	s.index = make([]int, len(cols))
	var missing []string
	for i, c := range cols {
		pos, ok := positions[c]
		if !ok {
			missing = append(missing, c)
			continue
		}
		s.index[i] = pos
		delete(positions, c)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s: missing columns %s", ErrSchemaMismatch, s.name, strings.Join(missing, ", "))
	}

	for i, h := range header {
		name := headerName(h)
		if pos, ok := positions[name]; ok && pos == i {
			s.dropped = append(s.dropped, name)
		}
	}
	s.width = len(header)
	return nil
}

// headerName normalizes a header cell. Excel exports prefix the first cell
// with a byte order mark.
func headerName(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// next returns the next row coerced to schema types, or io.EOF.
func (s *source) next() ([]interface{}, error) {
	rec, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &RowError{File: s.name, Line: pe.StartLine, Err: pe.Err}
		}
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	s.line, _ = s.reader.FieldPos(0)

	if len(rec) != s.width {
		return nil, &RowError{
			File: s.name,
			Line: s.line,
			Err:  fmt.Errorf("%d fields, header has %d", len(rec), s.width),
		}
	}

	row := make([]interface{}, len(s.index))
	for i, col := range s.table.Columns {
		raw := rec[s.index[i]]
		v, err := coerce(col.Type, raw)
		if err != nil {
			return nil, &RowError{File: s.name, Line: s.line, Column: col.Name, Value: raw, Err: err}
		}
		row[i] = v
	}
	return row, nil
}

// readAll reads the remaining rows. Only used for the small dimension files.
func (s *source) readAll() ([][]interface{}, error) {
	var rows [][]interface{}
	for {
		row, err := s.next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func (s *source) Close() error {
	return s.file.Close()
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
