// Package day12 counts the spring arrangements consistent with each
// record's damaged-group checksum.
//
// A checksum such as 3,2,1 compiles into a small automaton that reads the
// record one spring at a time; a sweep over the record keeps the number of
// partial arrangements ("heads") sitting in each automaton state.
package day12

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed record.
var ErrInvalidInput = errors.New("day12: invalid input")

// State is one automaton state.
type State int

const (
	// RepDotOrHash loops on '.' and leaves on '#' to start a group.
	RepDotOrHash State = iota
	// Hash requires a '#' to continue the current group.
	Hash
	// Dot requires a '.' to close the current group.
	Dot
	// RepDotOrAccept loops on '.' after the last group and accepts.
	RepDotOrAccept
)

// BuildStates compiles a checksum into automaton states.
func BuildStates(groups []int) []State {
	var out []State
	for i, n := range groups {
		if i > 0 {
			out = append(out, Dot)
		}
		out = append(out, RepDotOrHash)
		for j := 1; j < n; j++ {
			out = append(out, Hash)
		}
	}

	return append(out, RepDotOrAccept)
}

// CountArrangements returns the number of ways to resolve every '?' in
// springs so that the damaged groups match groups.
func CountArrangements(springs string, groups []int) (int, error) {
	for _, g := range groups {
		if g < 1 {
			return 0, fmt.Errorf("%w: group size %d", ErrInvalidInput, g)
		}
	}
	states := BuildStates(groups)
	heads := make([]int, len(states))
	heads[0] = 1
	for i := 0; i < len(springs); i++ {
		c := springs[i]
		if c != '.' && c != '#' && c != '?' {
			return 0, fmt.Errorf("%w: spring %q", ErrInvalidInput, c)
		}
		dot, hash := c != '#', c != '.'
		next := make([]int, len(states))
		for s := len(states) - 1; s >= 0; s-- {
			h := heads[s]
			if h == 0 {
				continue
			}
			switch states[s] {
			case RepDotOrHash:
				if dot {
					next[s] += h
				}
				if hash {
					next[s+1] += h
				}
			case Hash:
				if hash {
					next[s+1] += h
				}
			case Dot:
				if dot {
					next[s+1] += h
				}
			case RepDotOrAccept:
				if dot {
					next[s] += h
				}
			}
		}
		heads = next
	}

	return heads[len(heads)-1], nil
}

// Unfold repeats a record line five times: springs joined by '?', the
// checksum joined by ','.
func Unfold(line string) (string, error) {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	s := make([]string, 5)
	g := make([]string, 5)
	for i := range s {
		s[i], g[i] = springs, groups
	}

	return strings.Join(s, "?") + " " + strings.Join(g, ","), nil
}

// CountLine parses "springs a,b,c" and counts its arrangements.
func CountLine(line string) (int, error) {
	springs, checksum, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	groups, err := aoc.Ints(checksum)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return CountArrangements(springs, groups)
}

func total(input string, unfold bool) (int, error) {
	sum := 0
	for _, l := range aoc.Lines(input) {
		if unfold {
			var err error
			if l, err = Unfold(l); err != nil {
				return 0, err
			}
		}
		n, err := CountLine(l)
		if err != nil {
			return 0, err
		}
		sum += n
	}

	return sum, nil
}

// PartOne sums the arrangement counts of every record.
func PartOne(input string) (int, error) { return total(input, false) }

// PartTwo sums the arrangement counts of every unfolded record.
func PartTwo(input string) (int, error) { return total(input, true) }
