package day14_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day14"
)

const sample = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

func TestPartOne(t *testing.T) {
	got, err := day14.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 136, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day14.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 64, got)
}

func TestErrors(t *testing.T) {
	_, err := day14.PartOne("O.\n.X")
	require.ErrorIs(t, err, day14.ErrInvalidInput)
	_, err = day14.PartTwo("O.\n.")
	require.ErrorIs(t, err, day14.ErrInvalidInput)
}
