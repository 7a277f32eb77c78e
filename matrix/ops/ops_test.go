// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/matrix"
	"github.com/katalvlaran/aoc2023/matrix/ops"
)

const eps = 1e-9

func TestSolveVec_NeedsPivoting(t *testing.T) {
	// a zero in the top-left corner fails without row exchange
	a, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 3},
	})
	require.NoError(t, err)

	d, err := ops.LU(a)
	require.NoError(t, err)
	x, err := d.SolveVec([]float64{7, 6, 13})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, x, eps)
}

func TestInverse_TimesVector(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 3},
	})
	inv, err := ops.Inverse(a)
	require.NoError(t, err)
	b, _ := matrix.NewDenseFromRows([][]float64{{7}, {6}, {13}})
	x, err := matrix.Mul(inv, b)
	require.NoError(t, err)
	col, err := x.Column(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, col, eps)
}

func TestInverse_Identity(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
	inv, err := ops.Inverse(a)
	require.NoError(t, err)

	p, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := p.At(i, j)
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, v, eps, "(%d,%d)", i, j)
		}
	}
}

func TestErrors(t *testing.T) {
	sing, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := ops.Inverse(sing)
	require.ErrorIs(t, err, ops.ErrSingular)

	rect, _ := matrix.NewDense(2, 3)
	_, err = ops.LU(rect)
	require.ErrorIs(t, err, ops.ErrNotSquare)

	sq, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	d, err := ops.LU(sq)
	require.NoError(t, err)
	_, err = d.SolveVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ops.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
