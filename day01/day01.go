// Package day01 recovers calibration values: the first and last digit of
// each line, read as a two-digit number.
package day01

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a line without any digit.
var ErrInvalidInput = errors.New("day01: invalid input")

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at line[i], either an ASCII digit or,
// when words is set, a spelled-out word.
func digitAt(line string, i int, words bool) (int, bool) {
	if d, ok := aoc.Digit(line[i]); ok {
		return d, true
	}
	if !words {
		return 0, false
	}
	for n, w := range digitWords {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}

	return 0, false
}

// FirstDigit returns the leftmost digit of line.
func FirstDigit(line string, words bool) (int, error) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, words); ok {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: no digit in %q", ErrInvalidInput, line)
}

// LastDigit returns the rightmost digit of line. Spelled-out words may
// overlap, so "eightwo" ends in 2.
func LastDigit(line string, words bool) (int, error) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: no digit in %q", ErrInvalidInput, line)
}

func calibrate(input string, words bool) (int, error) {
	sum := 0
	for _, line := range aoc.Lines(input) {
		first, err := FirstDigit(line, words)
		if err != nil {
			return 0, err
		}
		last, err := LastDigit(line, words)
		if err != nil {
			return 0, err
		}
		sum += 10*first + last
	}

	return sum, nil
}

// PartOne sums calibration values using digit characters only.
func PartOne(input string) (int, error) {
	return calibrate(input, false)
}

// PartTwo sums calibration values where digits may also be spelled out.
func PartTwo(input string) (int, error) {
	return calibrate(input, true)
}
