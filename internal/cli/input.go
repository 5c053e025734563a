// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyTable indicates a CSV input without data rows.
var ErrEmptyTable = errors.New("cli: input has no data rows")

// ReadTable parses a CSV of floating-point coordinates. When header is true
// the first record is skipped. All records must have the same width.
func ReadTable(r io.Reader, header bool) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rows [][]float64
		line int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cli: read csv: %w", err)
		}
		line++
		if header && line == 1 {
			continue
		}
		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("cli: line %d column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	return rows, nil
}
