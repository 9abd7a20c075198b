// Package vecmat is a small dense numeric toolkit for series analysis: Vector
// and Matrix containers with operator-style algebra, axis reductions and
// return transforms (percent change, cumulative return).
//
// What is inside:
//
//	matrix/       Vector, Matrix, algebra, reductions, series transforms, gonum interop
//	cmd/returns/  CSV price table → percent changes, cumulative returns, column stats
//
// Quick example:
//
//	prices, _ := matrix.FromRows([][]float64{{100, 50}, {110, 55}, {99, 60}})
//	rets := matrix.MatPctChange(prices)   // row 0 is 0; rows are time
//	cum := matrix.MatCumReturn(rets)      // Π(1+r) − 1 per column
//	fmt.Print(cum)
//
// Everything is single-threaded and fully materialized in memory.
//
//	go get github.com/katalvlaran/vecmat
package vecmat
