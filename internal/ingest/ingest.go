// Package ingest converts uploaded tabular files (CSV, XLSX) into ordered
// raw rows for the normalization pipeline. The first row of a file is always
// the header; every data cell is type-coerced exactly once here: empty cells
// become absent, numeric-looking values become numbers, everything else
// stays text.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

var (
	// ErrEmptyFile is returned for files with no content at all.
	ErrEmptyFile = errors.New("file contains no data")

	// ErrUnsupportedFormat is returned for file types the ingester cannot
	// read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ReadFile dispatches on the filename extension and parses the reader into
// raw rows.
func ReadFile(r io.Reader, filename string) ([]transaction.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// rowsFromRecords builds raw rows from string records, treating the first
// record as the header. Ragged data rows are tolerated: missing trailing
// cells are absent.
func rowsFromRecords(records [][]string) ([]transaction.RawRow, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	header := records[0]
	rows := make([]transaction.RawRow, 0, len(records)-1)

	for _, record := range records[1:] {
		row := transaction.NewRawRow(header)
		for i, col := range header {
			if i < len(record) {
				row.Cells[col] = coerceCell(record[i])
			} else {
				row.Cells[col] = transaction.EmptyCell()
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// coerceCell classifies one raw cell string. Numeric detection is strict
// decimal only; values like "nan" or "1e5" stay text so they cannot leak
// into amount arithmetic by accident.
func coerceCell(raw string) transaction.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return transaction.EmptyCell()
	}

	if isPlainNumber(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return transaction.NumberCell(f)
		}
	}

	return transaction.TextCell(raw)
}

func isPlainNumber(s string) bool {
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			return false
		}
	}
	// Reject bare signs and dots
	return strings.ContainsAny(s, "0123456789")
}
