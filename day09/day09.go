// Package day09 extrapolates OASIS readings by finite differences.
package day09

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a non-numeric or empty history.
var ErrInvalidInput = errors.New("day09: invalid input")

// Next returns the value following xs.
func Next(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	allZero := true
	diffs := make([]int, len(xs)-1)
	for i := range diffs {
		diffs[i] = xs[i+1] - xs[i]
		if diffs[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return xs[len(xs)-1]
	}

	return xs[len(xs)-1] + Next(diffs)
}

// Prev returns the value preceding xs.
func Prev(xs []int) int {
	rev := make([]int, len(xs))
	for i, x := range xs {
		rev[len(xs)-1-i] = x
	}

	return Next(rev)
}

func sum(input string, f func([]int) int) (int, error) {
	total := 0
	for _, l := range aoc.Lines(input) {
		xs, err := aoc.Ints(l)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if len(xs) == 0 {
			return 0, fmt.Errorf("%w: empty history", ErrInvalidInput)
		}
		total += f(xs)
	}

	return total, nil
}

// PartOne sums the next value of every history.
func PartOne(input string) (int, error) { return sum(input, Next) }

// PartTwo sums the previous value of every history.
func PartTwo(input string) (int, error) { return sum(input, Prev) }
