// SPDX-License-Identifier: MIT

// Package matrix - whitespace-separated text ingestion.
//
// Contracts:
//   - A matrix is a sequence of non-empty lines, one row per line, terminated
//     by a blank line or end of input. Every row must have the same width.
//   - A vector is exactly one non-empty line.
//   - Numbers are parsed with strconv.ParseFloat (64-bit); any token that does
//     not parse yields ErrParse.

package matrix

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const (
	opScanMatrix = "ScanMatrix"
	opScanVector = "ScanVector"
	opParseRow   = "ParseRow"
)

// ParseRow splits line on whitespace and parses each field as float64.
// Errors: ErrBadShape for a blank line; ErrParse for a malformed number.
func ParseRow(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: empty line: %w", opParseRow, ErrBadShape)
	}
	out := make([]float64, len(fields))
	var err error
	for i, f := range fields {
		if out[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("%s: field %d %q: %w", opParseRow, i, f, ErrParse)
		}
	}

	return out, nil
}

// ScanMatrix reads rows from sc until a blank line or EOF.
//
// Errors:
//   - ErrBadShape when no row is read; ErrDimensionMismatch for ragged rows;
//   - ErrParse for malformed numbers; the scanner's own error otherwise.
func ScanMatrix(sc *bufio.Scanner, opts ...Option) (*Dense, error) {
	var rows [][]float64
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			if len(rows) == 0 {
				continue // leading blank lines separate sections
			}
			break
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opScanMatrix, len(rows), err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opScanMatrix, len(rows), len(row), len(rows[0]), ErrDimensionMismatch)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opScanMatrix, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", opScanMatrix, ErrBadShape)
	}

	m, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScanMatrix, err)
	}

	return m, nil
}

// ScanVector reads the next non-blank line of sc as a RowVector.
// Errors: ErrBadShape at end of input; ErrParse; the scanner's own error.
func ScanVector(sc *bufio.Scanner) (*RowVector, error) {
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		vals, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opScanVector, err)
		}
		v, _ := NewRowVector(len(vals)) // len(vals) > 0
		copy(v.base.data, vals)

		return v, nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opScanVector, err)
	}

	return nil, fmt.Errorf("%s: no values: %w", opScanVector, ErrBadShape)
}
