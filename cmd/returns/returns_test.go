// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecmat/matrix"
)

const pricesCSV = "a, b\n100, 50\n110, 55\n99, 55\n"

func TestReadPricesHeader(t *testing.T) {
	names, m, err := readPrices(strings.NewReader(pricesCSV), true)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
	require.Equal(t, [][]float64{{100, 50}, {110, 55}, {99, 55}}, m.ToRows())
}

func TestReadPricesNoHeader(t *testing.T) {
	names, m, err := readPrices(strings.NewReader("1,2,3\n4,5,6\n"), false)
	require.NoError(t, err)
	require.Equal(t, []string{"c0", "c1", "c2"}, names)
	require.Equal(t, 2, m.Rows())
}

func TestReadPricesErrors(t *testing.T) {
	_, _, err := readPrices(strings.NewReader("a,b\n1,2\n3\n"), true)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = readPrices(strings.NewReader("a,b\n1,x\n"), true)
	require.ErrorContains(t, err, "line 2, column 2")

	_, _, err = readPrices(strings.NewReader("a,b\n"), true)
	require.ErrorIs(t, err, ErrNoData)

	_, _, err = readPrices(strings.NewReader("a\n1,2\n"), true)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBuildReport(t *testing.T) {
	names, m, err := readPrices(strings.NewReader(pricesCSV), true)
	require.NoError(t, err)

	rep, err := buildReport(names, m)
	require.NoError(t, err)
	require.Len(t, rep.Stats, 2)

	a := rep.Stats[0]
	require.Equal(t, "a", a.Name)
	require.InDelta(t, 0.0, *a.Mean, 1e-12) // (0.1 + -0.1) / 2
	require.InDelta(t, -0.01, *a.Total, 1e-12)

	b := rep.Stats[1]
	require.InDelta(t, 0.05, *b.Mean, 1e-12)
	require.InDelta(t, 0.1, *b.Total, 1e-12)
}

func TestBuildReportLeadingNaN(t *testing.T) {
	names, m, err := readPrices(strings.NewReader(pricesCSV), true)
	require.NoError(t, err)

	rep, err := buildReport(names, m, matrix.WithLeadingNaN())
	require.NoError(t, err)
	require.Nil(t, rep.Returns[0][0])
	require.NotNil(t, rep.Cumulative[2][0])
	require.InDelta(t, -0.01, *rep.Stats[0].Total, 1e-12)
}

func TestBuildReportSingleRow(t *testing.T) {
	names, m, err := readPrices(strings.NewReader("a\n100\n"), true)
	require.NoError(t, err)

	rep, err := buildReport(names, m)
	require.NoError(t, err)
	require.Nil(t, rep.Stats[0].Mean)
	require.Nil(t, rep.Stats[0].Stdev)
	require.InDelta(t, 0.0, *rep.Stats[0].Total, 0)
}

func TestWriteReportJSON(t *testing.T) {
	names, m, err := readPrices(strings.NewReader(pricesCSV), true)
	require.NoError(t, err)
	rep, err := buildReport(names, m, matrix.WithLeadingNaN())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, rep, formatJSON))

	var decoded struct {
		Columns []string     `json:"columns"`
		Returns [][]*float64 `json:"returns"`
		Stats   []struct {
			Name  string   `json:"name"`
			Total *float64 `json:"total_return"`
		} `json:"stats"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, []string{"a", "b"}, decoded.Columns)
	require.Nil(t, decoded.Returns[0][0])
	require.InDelta(t, 0.1, *decoded.Returns[1][0], 1e-12)
	require.Equal(t, "b", decoded.Stats[1].Name)
}

func TestWriteReportText(t *testing.T) {
	names, m, err := readPrices(strings.NewReader(pricesCSV), true)
	require.NoError(t, err)
	rep, err := buildReport(names, m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, rep, formatText))
	out := buf.String()
	require.Contains(t, out, "columns: [a b]")
	require.Contains(t, out, "returns:\n[0, 0]\n")
	require.Contains(t, out, "a\tmean=")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RETURNS_FORMAT", "json")
	t.Setenv("RETURNS_COMPOUNDING", "simple")
	t.Setenv("RETURNS_HEADER", "false")

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "-", cfg.Input)
	require.Equal(t, formatJSON, cfg.Format)
	require.False(t, cfg.Header)
	require.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.seriesOptions(), 1)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("RETURNS_FORMAT", "yaml")
	_, err := loadConfig()
	require.ErrorIs(t, err, ErrBadConfig)

	t.Setenv("RETURNS_FORMAT", "text")
	t.Setenv("RETURNS_COMPOUNDING", "log")
	_, err = loadConfig()
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug", true)
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = newLogger("loud", false)
	require.Error(t, err)
}

// TestRunFromFile drives a full pass over a CSV file on disk.
func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(pricesCSV), 0o600))

	cfg := &Config{Input: path, Header: true, Format: formatText, Compounding: compoundingGeometric}
	var out bytes.Buffer
	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader(""), &out))
	require.Contains(t, out.String(), "cumulative:")

	cfg.Input = filepath.Join(t.TempDir(), "missing.csv")
	require.Error(t, run(cfg, zap.NewNop(), nil, &out))
}

func TestRunFromStdin(t *testing.T) {
	cfg := &Config{Input: "-", Header: true, Format: formatJSON, Compounding: compoundingSimple}
	var out bytes.Buffer
	require.NoError(t, run(cfg, zap.NewNop(), strings.NewReader(pricesCSV), &out))
	require.True(t, strings.HasPrefix(out.String(), "{"))
}
