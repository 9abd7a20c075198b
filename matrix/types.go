// SPDX-License-Identifier: MIT

// Package matrix: small domain types shared by options and kernels.
// This file intentionally contains ONLY enumerations (Axis, Compounding) and the
// operation tags used for error wrapping. Containers live in vector.go/matrix.go,
// errors in errors.go and options in options.go.
package matrix

// Axis selects the dimension along which a Matrix reduction or append runs.
//
//	AxisCol (0): walk down each column; one result per column (len == Cols()).
//	AxisRow (1): walk across each row; one result per row (len == Rows()).
//
// For Append, AxisCol appends a row and AxisRow appends a column; AppendRow
// and AppendColumn spell the same thing without the axis.
type Axis int

const (
	// AxisCol reduces down columns (per-column result). Default.
	AxisCol Axis = 0
	// AxisRow reduces across rows (per-row result).
	AxisRow Axis = 1
)

// valid reports whether a is one of the two known axes.
func (a Axis) valid() bool { return a == AxisCol || a == AxisRow }

// Compounding selects how CumReturn accumulates a return series.
type Compounding int

const (
	// CompoundGeometric: out[i] = Π_{k≤i}(1 + r[k]) − 1. Default.
	CompoundGeometric Compounding = iota
	// CompoundSimple: out[i] = Σ_{k≤i} r[k] (cumulative abnormal return style).
	CompoundSimple
)

// valid reports whether c is a known compounding mode.
func (c Compounding) valid() bool { return c == CompoundGeometric || c == CompoundSimple }

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewVector   = "NewVector"
	opNewMatrix   = "NewMatrix"
	opFromRows    = "FromRows"
	opVecAdd      = "VecAdd"
	opVecSub      = "VecSub"
	opDot         = "Dot"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opAppend      = "Append"
	opSetRow      = "SetRow"
	opMatAddVec   = "MatAddVec"
	opMatSubVec   = "MatSubVec"
	opVecAddMat   = "VecAddMat"
	opVecSubMat   = "VecSubMat"
	opAddVecPlace = "AddVecInPlace"
	opSubVecPlace = "SubVecInPlace"
	opFromMat     = "FromMat"
	opVecFromMat  = "VectorFromMat"
	opToDense     = "ToDense"
	opToVecDense  = "ToVecDense"
	opColumn      = "Column"
	opCenterCols  = "CenterColumns"
)
