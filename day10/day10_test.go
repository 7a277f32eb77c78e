package day10_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day10"
)

const squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....`

const complexLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

const enclosedSimple = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

const enclosedLarger = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

const enclosedJunk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`

func TestPartOne(t *testing.T) {
	for _, c := range []struct {
		input string
		want  int
	}{
		{squareLoop, 4},
		{complexLoop, 8},
	} {
		got, err := day10.PartOne(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestPartTwo(t *testing.T) {
	for _, c := range []struct {
		name  string
		input string
		want  int
	}{
		{"Square", squareLoop, 1},
		{"Simple", enclosedSimple, 4},
		{"Larger", enclosedLarger, 8},
		{"Junk", enclosedJunk, 10},
	} {
		t.Run(c.name, func(t *testing.T) {
			got, err := day10.PartTwo(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestErrors(t *testing.T) {
	_, err := day10.PartOne("...\n.-.\n...")
	require.ErrorIs(t, err, day10.ErrInvalidInput)

	// S touches three pipes that point at it
	_, err = day10.PartOne(".|.\n-S-\n...")
	require.ErrorIs(t, err, day10.ErrInvalidInput)

	_, err = day10.PartOne("")
	require.ErrorIs(t, err, day10.ErrInvalidInput)
}
