package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day12"
)

const sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestPartOne(t *testing.T) {
	got, err := day12.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day12.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 525152, got)
}

func TestBuildStates(t *testing.T) {
	assert.Equal(t, []day12.State{
		day12.RepDotOrHash, day12.Hash, day12.Hash,
		day12.Dot,
		day12.RepDotOrHash, day12.Hash,
		day12.Dot,
		day12.RepDotOrHash,
		day12.RepDotOrAccept,
	}, day12.BuildStates([]int{3, 2, 1}))
}

func TestCountLine(t *testing.T) {
	cases := map[string]int{
		"???.### 1,1,3":             1,
		".??..??...?##. 1,1,3":      4,
		"?#?#?#?#?#?#?#? 1,3,1,6":   1,
		"????.#...#... 4,1,1":       1,
		"????.######..#####. 1,6,5": 4,
		"?###???????? 3,2,1":        10,
	}
	for line, want := range cases {
		got, err := day12.CountLine(line)
		require.NoError(t, err)
		if got != want {
			t.Errorf("CountLine(%q) = %d, want %d", line, got, want)
		}
	}
}

func TestUnfold(t *testing.T) {
	got, err := day12.Unfold(".# 1")
	require.NoError(t, err)
	assert.Equal(t, ".#?.#?.#?.#?.# 1,1,1,1,1", got)

	got, err = day12.Unfold("???.### 1,1,3")
	require.NoError(t, err)
	assert.Equal(t, "???.###????.###????.###????.###????.### 1,1,3,1,1,3,1,1,3,1,1,3,1,1,3", got)
}

func TestErrors(t *testing.T) {
	for _, line := range []string{"???", "?x? 1", "??? 1,a", "??? 0"} {
		_, err := day12.CountLine(line)
		require.ErrorIs(t, err, day12.ErrInvalidInput, line)
	}
}
