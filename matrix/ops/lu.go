// SPDX-License-Identifier: MIT

// Package ops implements linear-algebra routines over matrix.Matrix:
// LU decomposition with partial pivoting and inversion.
//
// All routines validate their inputs and never mutate arguments.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2023/matrix"
)

var (
	// ErrSingular indicates that the matrix has no inverse.
	ErrSingular = errors.New("ops: matrix is singular")

	// ErrNotSquare indicates a non-square coefficient matrix.
	ErrNotSquare = errors.New("ops: matrix must be square")
)

// pivotEpsilon is the magnitude below which a pivot counts as zero.
const pivotEpsilon = 1e-12

// Decomposition holds P·A = L·U packed into one matrix: U on and above the
// diagonal, L (unit diagonal implied) below it. Perm[i] is the source row
// of row i.
type Decomposition struct {
	n    int
	lu   [][]float64
	Perm []int
}

// LU factors a square matrix with partial pivoting (Doolittle form).
//
// Stage 1: validate and copy A.
// Stage 2: for each column pick the largest-magnitude pivot, swap rows,
// then eliminate below the diagonal storing the multipliers in place.
//
// Returns ErrNotSquare or ErrSingular.
// Complexity: O(n³).
func LU(a matrix.Matrix) (*Decomposition, error) {
	if a == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("LU: %dx%d: %w", a.Rows(), a.Cols(), ErrNotSquare)
	}

	// Stage 1
	lu := make([][]float64, n)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		lu[i] = make([]float64, n)
		perm[i] = i
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			lu[i][j] = v
		}
	}

	// Stage 2
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(lu[i][k]) > math.Abs(lu[p][k]) {
				p = i
			}
		}
		if math.Abs(lu[p][k]) < pivotEpsilon {
			return nil, ErrSingular
		}
		lu[k], lu[p] = lu[p], lu[k]
		perm[k], perm[p] = perm[p], perm[k]

		for i := k + 1; i < n; i++ {
			f := lu[i][k] / lu[k][k]
			lu[i][k] = f
			for j := k + 1; j < n; j++ {
				lu[i][j] -= f * lu[k][j]
			}
		}
	}

	return &Decomposition{n: n, lu: lu, Perm: perm}, nil
}

// SolveVec solves A·x = b for x using the decomposition.
func (d *Decomposition) SolveVec(b []float64) ([]float64, error) {
	if len(b) != d.n {
		return nil, fmt.Errorf("SolveVec: len(b)=%d, want %d: %w", len(b), d.n, matrix.ErrDimensionMismatch)
	}
	// forward substitution on the permuted right-hand side
	y := make([]float64, d.n)
	for i := 0; i < d.n; i++ {
		sum := b[d.Perm[i]]
		for j := 0; j < i; j++ {
			sum -= d.lu[i][j] * y[j]
		}
		y[i] = sum
	}
	// backward substitution
	x := make([]float64, d.n)
	for i := d.n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < d.n; j++ {
			sum -= d.lu[i][j] * x[j]
		}
		x[i] = sum / d.lu[i][i]
	}

	return x, nil
}
