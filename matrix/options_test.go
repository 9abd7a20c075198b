// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for functional options.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
)

func TestGatherOptionsDefaults(t *testing.T) {
	got := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultAxis, got.Axis)
	require.Equal(t, matrix.DefaultLeadingNaN, got.LeadingNaN)
	require.Equal(t, matrix.DefaultCompounding, got.Compounding)
	require.Equal(t, matrix.AxisCol, got.Axis)
	require.Equal(t, matrix.CompoundGeometric, got.Compounding)
}

func TestGatherOptionsApplied(t *testing.T) {
	got := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithAxis(matrix.AxisRow),
		matrix.WithLeadingNaN(),
		matrix.WithCompounding(matrix.CompoundSimple),
	)
	require.Equal(t, matrix.AxisRow, got.Axis)
	require.True(t, got.LeadingNaN)
	require.Equal(t, matrix.CompoundSimple, got.Compounding)
}

// TestGatherOptionsLastWins checks repeated options resolve in order.
func TestGatherOptionsLastWins(t *testing.T) {
	got := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithAxis(matrix.AxisRow),
		matrix.WithAxis(matrix.AxisCol),
	)
	require.Equal(t, matrix.AxisCol, got.Axis)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithAxis(matrix.Axis(2)) })
	require.Panics(t, func() { matrix.WithAxis(matrix.Axis(-1)) })
	require.Panics(t, func() { matrix.WithCompounding(matrix.Compounding(7)) })
	require.NotPanics(t, func() { matrix.WithAxis(matrix.AxisRow) })
}

// TestIrrelevantOptionsIgnored checks that options a kernel does not read
// leave its result unchanged.
func TestIrrelevantOptionsIgnored(t *testing.T) {
	v := matrix.VectorOf(100, 110)
	plain := matrix.PctChange(v)
	withAxis := matrix.PctChange(v, matrix.WithAxis(matrix.AxisRow))
	require.Equal(t, plain.Values(), withAxis.Values())
}
