// SPDX-License-Identifier: MIT

// Package matrix provides dense float64 matrices for small linear systems.
//
// Matrix is the read/write interface consumed by matrix/ops; Dense is the
// row-major implementation backed by a flat slice. Accessors return errors
// for out-of-range indices instead of panicking.
//
// Errors:
//
//	ErrInvalidDimensions – rows or cols ≤ 0
//	ErrIndexOutOfBounds  – row/col outside the matrix
//	ErrDimensionMismatch – operands with incompatible shapes
//	ErrNilMatrix         – nil operand
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates operands whose shapes do not compose.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Matrix is a rectangular grid of float64 values.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
	Set(row, col int, v float64) error
}
