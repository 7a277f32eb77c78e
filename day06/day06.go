// Package day06 counts the ways to win toy boat races.
package day06

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed race sheet.
var ErrInvalidInput = errors.New("day06: invalid input")

// Ways returns how many hold times x in (0, t) travel further than d,
// that is x·(t−x) > d. The quadratic roots give the bounds; integer checks
// then step off roots that land exactly on d.
func Ways(t, d int) int {
	disc := float64(t)*float64(t) - 4*float64(d)
	if disc < 0 {
		return 0
	}
	s := math.Sqrt(disc)
	lo := int(math.Ceil((float64(t) - s) / 2))
	hi := int(math.Floor((float64(t) + s) / 2))
	for lo <= hi && lo*(t-lo) <= d {
		lo++
	}
	for hi >= lo && hi*(t-hi) <= d {
		hi--
	}
	if hi < lo {
		return 0
	}

	return hi - lo + 1
}

func fields(input string) (times, dists string, err error) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want Time and Distance lines", ErrInvalidInput)
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInput, lines[0])
	}
	dists, ok = strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInput, lines[1])
	}

	return times, dists, nil
}

func product(times, dists string) (int, error) {
	ts, err := aoc.Ints(times)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ds, err := aoc.Ints(dists)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(ts) != len(ds) || len(ts) == 0 {
		return 0, fmt.Errorf("%w: %d times, %d distances", ErrInvalidInput, len(ts), len(ds))
	}
	p := 1
	for i := range ts {
		p *= Ways(ts[i], ds[i])
	}

	return p, nil
}

// PartOne multiplies the number of winning hold times over all races.
func PartOne(input string) (int, error) {
	times, dists, err := fields(input)
	if err != nil {
		return 0, err
	}

	return product(times, dists)
}

// PartTwo ignores the spaces: each line is a single race.
func PartTwo(input string) (int, error) {
	times, dists, err := fields(input)
	if err != nil {
		return 0, err
	}
	join := func(s string) string { return strings.Join(strings.Fields(s), "") }

	return product(join(times), join(dists))
}
