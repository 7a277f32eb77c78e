package day13_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day13"
)

const sample = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..###
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`

func TestPartOne(t *testing.T) {
	got, err := day13.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 405, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day13.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 400, got)
}

func TestEncodeAndAxis(t *testing.T) {
	first := strings.Split(strings.Split(sample, "\n\n")[0], "\n")
	rows, cols, err := day13.Encode(first)
	require.NoError(t, err)
	assert.Equal(t, []uint64{358, 90, 385, 385, 90, 102, 346}, rows)
	assert.Equal(t, []uint64{89, 24, 103, 66, 37, 37, 66, 103, 24}, cols)

	assert.Equal(t, 0, day13.FindAxis(rows, 0))
	assert.Equal(t, 5, day13.FindAxis(cols, 0))
	assert.Equal(t, 3, day13.FindAxis(rows, 1))
}

func TestErrors(t *testing.T) {
	_, err := day13.PartOne("#.\n.")
	require.ErrorIs(t, err, day13.ErrInvalidInput)
	_, err = day13.PartOne("#x\n..")
	require.ErrorIs(t, err, day13.ErrInvalidInput)
	// no symmetry at all
	_, err = day13.PartOne("#.\n..")
	require.ErrorIs(t, err, day13.ErrInvalidInput)
}
