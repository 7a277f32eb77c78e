package day18_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day18"
)

const sample = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa171)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)`

func TestPartOne(t *testing.T) {
	got, err := day18.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 62, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day18.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 952408144115, got)
}

func TestParseLine(t *testing.T) {
	s, err := day18.ParseLine("R 6 (#70c710)", true)
	require.NoError(t, err)
	assert.Equal(t, day18.Step{Dir: 'R', Dist: 461937}, s)

	s, err = day18.ParseLine("U 2 (#caa171)", true)
	require.NoError(t, err)
	assert.Equal(t, day18.Step{Dir: 'D', Dist: 829975}, s)

	// a 3x3 square dug around its border
	steps := []day18.Step{{'R', 2}, {'D', 2}, {'L', 2}, {'U', 2}}
	assert.Equal(t, 9, day18.Area(steps))
}

func TestErrors(t *testing.T) {
	for _, c := range []struct {
		line      string
		fromColor bool
	}{
		{"R 6", false},
		{"X 6 (#70c710)", false},
		{"R x (#70c710)", false},
		{"R 6 (#70c71)", true},
		{"R 6 (#70c714)", true},
		{"R 6 (#zzzzz0)", true},
	} {
		_, err := day18.ParseLine(c.line, c.fromColor)
		require.ErrorIs(t, err, day18.ErrInvalidInput, c.line)
	}
}
