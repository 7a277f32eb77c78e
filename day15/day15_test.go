package day15_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day15"
)

const sample = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, day15.Hash("HASH"))
	assert.Equal(t, 30, day15.Hash("rn=1"))
	assert.Equal(t, 0, day15.Hash("rn"))
	assert.Equal(t, 3, day15.Hash("pc"))
}

func TestPartOne(t *testing.T) {
	got, err := day15.PartOne(sample + "\n")
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day15.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 145, got)
}

func TestErrors(t *testing.T) {
	for _, in := range []string{"rn", "rn=x", "=3", "rn=0"} {
		_, err := day15.PartTwo(in)
		require.ErrorIs(t, err, day15.ErrInvalidInput, in)
	}
}
