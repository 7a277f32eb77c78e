package day16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day16"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestPartOne(t *testing.T) {
	got, err := day16.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day16.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestEnergized(t *testing.T) {
	c, err := day16.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 51, c.Energized(3, 0, day16.Down))

	// a loop through mirrors terminates
	loop, err := day16.Parse("/.\\\n\\./")
	require.NoError(t, err)
	assert.Equal(t, 6, loop.Energized(1, 0, day16.Right))
}

func TestErrors(t *testing.T) {
	_, err := day16.Parse("..\n.x")
	require.ErrorIs(t, err, day16.ErrInvalidInput)
}
