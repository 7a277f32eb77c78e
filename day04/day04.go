// Package day04 scores scratchcards.
package day04

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed card.
var ErrInvalidInput = errors.New("day04: invalid input")

// Matches returns the number of drawn numbers that are also winning numbers
// on a card of the form "Card N: winners | drawn".
func Matches(line string) (int, error) {
	_, body, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("%w: missing ':' in %q", ErrInvalidInput, line)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return 0, fmt.Errorf("%w: missing '|' in %q", ErrInvalidInput, line)
	}
	winners, err := aoc.Ints(left)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	drawn, err := aoc.Ints(right)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	win := make(map[int]bool, len(winners))
	for _, w := range winners {
		win[w] = true
	}
	m := 0
	for _, d := range drawn {
		if win[d] {
			m++
		}
	}

	return m, nil
}

func allMatches(input string) ([]int, error) {
	var out []int
	for _, l := range aoc.Lines(input) {
		m, err := Matches(l)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// PartOne sums card scores, 2^(m-1) for m matches.
func PartOne(input string) (int, error) {
	ms, err := allMatches(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, m := range ms {
		if m > 0 {
			sum += 1 << (m - 1)
		}
	}

	return sum, nil
}

// PartTwo counts all cards once winning copies of later cards.
func PartTwo(input string) (int, error) {
	ms, err := allMatches(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(ms))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range ms {
		for j := i + 1; j <= i+m && j < len(ms); j++ {
			copies[j] += copies[i]
		}
	}

	return aoc.Sum(copies), nil
}
