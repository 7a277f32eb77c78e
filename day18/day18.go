// Package day18 measures the lagoon dug out by a dig plan.
package day18

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed dig instruction.
var ErrInvalidInput = errors.New("day18: invalid input")

// Step is one straight dig.
type Step struct {
	Dir  byte // 'U', 'D', 'L' or 'R'
	Dist int
}

var deltas = map[byte]aoc.Pt2[int]{
	'U': {X: 0, Y: -1},
	'D': {X: 0, Y: 1},
	'L': {X: -1, Y: 0},
	'R': {X: 1, Y: 0},
}

// ParseLine reads "R 6 (#70c710)". With fromColor set the step comes from
// the colour instead: five hex digits of distance, then 0 R, 1 D, 2 L, 3 U.
func ParseLine(line string, fromColor bool) (Step, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	if !fromColor {
		n, err := strconv.Atoi(f[1])
		if err != nil || len(f[0]) != 1 || n < 0 {
			return Step{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
		}
		if _, ok := deltas[f[0][0]]; !ok {
			return Step{}, fmt.Errorf("%w: direction %q", ErrInvalidInput, f[0])
		}
		return Step{Dir: f[0][0], Dist: n}, nil
	}
	hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
	if len(hex) != 6 {
		return Step{}, fmt.Errorf("%w: colour %q", ErrInvalidInput, f[2])
	}
	n, err := strconv.ParseInt(hex[:5], 16, 64)
	if err != nil {
		return Step{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidInput, f[2], err)
	}
	i := strings.IndexByte("0123", hex[5])
	if i < 0 {
		return Step{}, fmt.Errorf("%w: colour direction %q", ErrInvalidInput, hex[5])
	}

	return Step{Dir: "RDLU"[i], Dist: int(n)}, nil
}

// Area returns the number of cubic metres inside and on the trench: the
// shoelace area plus half the perimeter plus one (Pick's theorem).
func Area(steps []Step) int {
	var p aoc.Pt2[int]
	twice, perimeter := 0, 0
	for _, s := range steps {
		d := deltas[s.Dir]
		q := p.Add(aoc.Pt2[int]{X: d.X * s.Dist, Y: d.Y * s.Dist})
		twice += p.X*q.Y - q.X*p.Y
		perimeter += p.MDist(q)
		p = q
	}

	return aoc.Abs(twice)/2 + perimeter/2 + 1
}

func solve(input string, fromColor bool) (int, error) {
	var steps []Step
	for _, l := range aoc.Lines(input) {
		s, err := ParseLine(l, fromColor)
		if err != nil {
			return 0, err
		}
		steps = append(steps, s)
	}

	return Area(steps), nil
}

// PartOne follows the plain instructions.
func PartOne(input string) (int, error) { return solve(input, false) }

// PartTwo follows the instructions hidden in the colour codes.
func PartTwo(input string) (int, error) { return solve(input, true) }
