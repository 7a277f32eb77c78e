package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day05"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestPartOne(t *testing.T) {
	got, err := day05.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 35, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day05.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestMapper_Eval(t *testing.T) {
	m, err := day05.ParseMap("seed-to-soil map:\n50 98 2\n52 50 48")
	require.NoError(t, err)
	assert.Equal(t, "seed-to-soil", m.Name)
	for in, want := range map[int]int{0: 0, 49: 49, 50: 52, 97: 99, 98: 50, 99: 51, 100: 100} {
		assert.Equal(t, want, m.Eval(in), "Eval(%d)", in)
	}
}

func TestMapper_EvalRanges(t *testing.T) {
	m, err := day05.ParseMap("seed-to-soil map:\n50 98 2\n52 50 48")
	require.NoError(t, err)

	got := m.EvalRanges([]day05.Range{{Start: 40, End: 105}})
	assert.Equal(t, []day05.Range{
		{Start: 40, End: 50},
		{Start: 50, End: 52},
		{Start: 52, End: 100},
		{Start: 100, End: 105},
	}, got)
}

func TestErrors(t *testing.T) {
	_, err := day05.PartOne("seeds: 79 14 blah 13")
	require.ErrorIs(t, err, day05.ErrInvalidInput)

	_, err = day05.ParseMap("seed-to-soil\n1 2 3")
	require.ErrorIs(t, err, day05.ErrInvalidInput)

	_, err = day05.ParseMap("a-to-b map:\n1 2")
	require.ErrorIs(t, err, day05.ErrInvalidInput)

	_, err = day05.PartTwo("seeds: 1 2 3")
	require.ErrorIs(t, err, day05.ErrInvalidInput)

	// zero-length ranges cover no seed
	_, err = day05.PartTwo("seeds: 79 0\n\nseed-to-soil map:\n50 98 2\n")
	require.ErrorIs(t, err, day05.ErrInvalidInput)
}
