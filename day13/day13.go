// Package day13 finds lines of reflection in patterns of ash and rocks.
package day13

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed pattern or one without a mirror.
var ErrInvalidInput = errors.New("day13: invalid input")

// Encode packs each row and each column of a pattern into an integer,
// '#' as 1, leftmost/topmost cell as the most significant bit.
func Encode(pattern []string) (rows, cols []uint64, err error) {
	if len(pattern) == 0 || len(pattern[0]) == 0 || len(pattern[0]) > 64 || len(pattern) > 64 {
		return nil, nil, fmt.Errorf("%w: pattern size", ErrInvalidInput)
	}
	rows = make([]uint64, len(pattern))
	cols = make([]uint64, len(pattern[0]))
	for y, line := range pattern {
		if len(line) != len(cols) {
			return nil, nil, fmt.Errorf("%w: ragged pattern", ErrInvalidInput)
		}
		for x := 0; x < len(line); x++ {
			var bit uint64
			switch line[x] {
			case '#':
				bit = 1
			case '.':
			default:
				return nil, nil, fmt.Errorf("%w: %q", ErrInvalidInput, line[x])
			}
			rows[y] = rows[y]<<1 | bit
			cols[x] = cols[x]<<1 | bit
		}
	}

	return rows, cols, nil
}

// FindAxis returns the number of lines before the first mirror axis whose
// paired lines differ in exactly smudges bits in total, or 0 if none.
func FindAxis(lines []uint64, smudges int) int {
	for axis := 1; axis < len(lines); axis++ {
		diff := 0
		for a, b := axis-1, axis; a >= 0 && b < len(lines) && diff <= smudges; a, b = a-1, b+1 {
			diff += bits.OnesCount64(lines[a] ^ lines[b])
		}
		if diff == smudges {
			return axis
		}
	}

	return 0
}

func summarize(input string, smudges int) (int, error) {
	total := 0
	for i, p := range aoc.Blocks(input) {
		rows, cols, err := Encode(p)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		if a := FindAxis(rows, smudges); a > 0 {
			total += 100 * a
			continue
		}
		if a := FindAxis(cols, smudges); a > 0 {
			total += a
			continue
		}
		return 0, fmt.Errorf("%w: pattern %d has no reflection", ErrInvalidInput, i+1)
	}

	return total, nil
}

// PartOne summarizes the perfect reflections.
func PartOne(input string) (int, error) { return summarize(input, 0) }

// PartTwo summarizes the reflections found after fixing exactly one smudge.
func PartTwo(input string) (int, error) { return summarize(input, 1) }
