// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecmat/matrix"
)

// ErrNoData is returned when the input holds no price rows.
var ErrNoData = errors.New("returns: no price rows")

// readPrices parses a CSV price table: one row per observation (time flows
// down), one column per series. With header set, the first record names the
// columns; otherwise they are named c0, c1, ...
//
// Every record is appended to the Matrix with AppendRow, so a record whose width
// differs from the first one fails with matrix.ErrDimensionMismatch.
func readPrices(r io.Reader, header bool) ([]string, *matrix.Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // width is enforced by Matrix.AppendRow

	var (
		names  []string
		prices matrix.Matrix
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		if header && names == nil {
			names = append([]string(nil), rec...)
			continue
		}

		row := make([]float64, len(rec))
		for j, field := range rec {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d, column %d: %w", line, j+1, err)
			}
			row[j] = x
		}
		if err = prices.AppendRow(matrix.VectorFrom(row)); err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if prices.Rows() == 0 {
		return nil, nil, ErrNoData
	}
	if names == nil {
		names = make([]string, prices.Cols())
		for j := range names {
			names[j] = "c" + strconv.Itoa(j)
		}
	}
	if len(names) != prices.Cols() {
		return nil, nil, fmt.Errorf("header has %d names for %d columns: %w",
			len(names), prices.Cols(), matrix.ErrDimensionMismatch)
	}

	return names, &prices, nil
}
