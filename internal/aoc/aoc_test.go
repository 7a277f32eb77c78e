package aoc_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 3, aoc.Abs(-3))
	assert.Equal(t, 2.5, aoc.Abs(-2.5))
	assert.Equal(t, int64(4), aoc.AbsDiff(int64(1), int64(5)))
	assert.Equal(t, 6, aoc.GCD(12, 18))
	assert.Equal(t, 6, aoc.GCD(-12, 18))
	assert.Equal(t, 12, aoc.LCM(2, 3, 4))
	assert.Equal(t, 1, aoc.LCM[int]())
	assert.Equal(t, 0, aoc.LCM(5, 0))
	assert.Equal(t, 10, aoc.Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 7, aoc.Max(3, 7, -1))
}

func TestPt2(t *testing.T) {
	a := aoc.Pt2[int]{X: 1, Y: 6}
	b := aoc.Pt2[int]{X: 5, Y: 11}
	assert.Equal(t, 9, a.MDist(b))
	assert.Equal(t, aoc.Pt2[int]{X: 6, Y: 17}, a.Add(b))
}

func TestLinesAndBlocks(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, aoc.Lines("a\r\nb\n\n"))
	assert.Nil(t, aoc.Lines("\n"))

	blocks := aoc.Blocks("a\nb\n\nc\n\n\nd\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d"}}, blocks)
}

func TestInts(t *testing.T) {
	xs, err := aoc.Ints(" 79 14,-55  13 ")
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, -55, 13}, xs)

	_, err = aoc.Ints("79 blah")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestDigit(t *testing.T) {
	d, ok := aoc.Digit('7')
	assert.True(t, ok)
	assert.Equal(t, 7, d)
	_, ok = aoc.Digit('x')
	assert.False(t, ok)
}
