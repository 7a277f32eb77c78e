package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day06"
)

const sample = `Time:      7  15   30
Distance:  9  40  200`

func TestPartOne(t *testing.T) {
	got, err := day06.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day06.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func TestWays(t *testing.T) {
	assert.Equal(t, 4, day06.Ways(7, 9))
	assert.Equal(t, 8, day06.Ways(15, 40))
	// roots 10 and 20 are exact and must be excluded
	assert.Equal(t, 9, day06.Ways(30, 200))
	assert.Equal(t, 0, day06.Ways(3, 100))
}

func TestErrors(t *testing.T) {
	_, err := day06.PartOne("Time: 1 2\nDistance: 3")
	require.ErrorIs(t, err, day06.ErrInvalidInput)
	_, err = day06.PartOne("Time: 1")
	require.ErrorIs(t, err, day06.ErrInvalidInput)
}
