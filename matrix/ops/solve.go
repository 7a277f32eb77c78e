// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/aoc2023/matrix"
)

// Inverse computes A⁻¹ column by column from a single LU factorization.
//
// Stage 1: factor A.
// Stage 2: solve A·x = eᵢ for every unit vector and store x as column i.
//
// Returns ErrNotSquare or ErrSingular.
// Complexity: O(n³).
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	// Stage 1
	d, err := LU(a)
	if err != nil {
		return nil, err
	}

	// Stage 2
	n := a.Rows()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := range e {
			e[k] = 0
		}
		e[i] = 1
		x, err := d.SolveVec(e)
		if err != nil {
			return nil, err
		}
		for r := 0; r < n; r++ {
			if err = inv.Set(r, i, x[r]); err != nil {
				return nil, err
			}
		}
	}

	return inv, nil
}
