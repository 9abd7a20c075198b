// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/vecmat/matrix"
)

// ColumnStats summarizes one series. Mean and Stdev are taken over the period
// returns after the first observation; Total is the last cumulative return.
// Non-finite values encode as JSON null.
type ColumnStats struct {
	Name  string   `json:"name"`
	Mean  *float64 `json:"mean_return"`
	Stdev *float64 `json:"stdev_return"`
	Total *float64 `json:"total_return"`
}

// Report is the full output of one run.
type Report struct {
	Columns    []string      `json:"columns"`
	Returns    [][]*float64  `json:"returns"`
	Cumulative [][]*float64  `json:"cumulative"`
	Stats      []ColumnStats `json:"stats"`

	returns    *matrix.Matrix
	cumulative *matrix.Matrix
}

// buildReport derives period returns, cumulative returns and per-column
// statistics from a price Matrix whose rows are observations.
func buildReport(names []string, prices *matrix.Matrix, opts ...matrix.Option) (*Report, error) {
	if len(names) != prices.Cols() {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(names), prices.Cols(), matrix.ErrDimensionMismatch)
	}
	rets := matrix.MatPctChange(prices, opts...)

	// A leading NaN would poison every cumulative product; accumulate from a
	// zero first row instead.
	accum := rets
	if rets.Rows() > 0 && math.IsNaN(rets.RowUnchecked(0).AtUnchecked(0)) {
		zero, err := matrix.NewVector(rets.Cols(), 0)
		if err != nil {
			return nil, err
		}
		accum = rets.Clone()
		if err = accum.SetRow(0, zero); err != nil {
			return nil, err
		}
	}
	cum := matrix.MatCumReturn(accum, opts...)

	means, stdevs, err := periodStats(rets)
	if err != nil {
		return nil, err
	}
	last := cum.RowUnchecked(cum.Rows() - 1)

	rep := &Report{
		Columns:    names,
		Returns:    nullable(rets),
		Cumulative: nullable(cum),
		Stats:      make([]ColumnStats, len(names)),
		returns:    rets,
		cumulative: cum,
	}
	for j, name := range names {
		rep.Stats[j] = ColumnStats{
			Name:  name,
			Mean:  finite(means.AtUnchecked(j)),
			Stdev: finite(stdevs.AtUnchecked(j)),
			Total: finite(last.AtUnchecked(j)),
		}
	}

	return rep, nil
}

// periodStats returns the column mean and sample deviation of every return
// row after the first. A single observation yields NaN for both.
func periodStats(rets *matrix.Matrix) (*matrix.Vector, *matrix.Vector, error) {
	rows := rets.ToRows()
	if len(rows) < 2 {
		nan, err := matrix.NewVector(rets.Cols(), math.NaN())
		if err != nil {
			return nil, nil, err
		}

		return nan, nan.Clone(), nil
	}
	body, err := matrix.FromRows(rows[1:])
	if err != nil {
		return nil, nil, err
	}

	return body.Mean(), body.StdevS(), nil
}

// finite returns nil for NaN and ±Inf so JSON encodes null.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

func nullable(m *matrix.Matrix) [][]*float64 {
	rows := m.ToRows()
	out := make([][]*float64, len(rows))
	for i, row := range rows {
		out[i] = make([]*float64, len(row))
		for j, x := range row {
			out[i][j] = finite(x)
		}
	}

	return out
}

// writeReport renders rep to w as text or indented JSON.
func writeReport(w io.Writer, rep *Report, format string) error {
	if format == formatJSON {
		b, err := sonic.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)

		return err
	}

	var err error
	printf := func(layout string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, layout, args...)
		}
	}
	printf("columns: %v\n", rep.Columns)
	printf("returns:\n%s", rep.returns)
	printf("cumulative:\n%s", rep.cumulative)
	printf("stats:\n")
	for _, s := range rep.Stats {
		printf("%s\tmean=%s\tstdev=%s\ttotal=%s\n", s.Name, fmtStat(s.Mean), fmtStat(s.Stdev), fmtStat(s.Total))
	}

	return err
}

func fmtStat(x *float64) string {
	if x == nil {
		return "NaN"
	}

	return fmt.Sprintf("%.6g", *x)
}
