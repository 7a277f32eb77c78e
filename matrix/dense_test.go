// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		if _, err := matrix.NewDense(dims[0], dims[1]); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Errorf("NewDense(%d,%d) error = %v; want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)
}

func TestDenseFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 9

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMul(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFromRows([][]float64{{7}, {8}, {9}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	col, err := p.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 122}, col)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
