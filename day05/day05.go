// Package day05 walks seeds through the almanac's chain of range maps.
package day05

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a malformed almanac.
var ErrInvalidInput = errors.New("day05: invalid input")

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

// partial shifts [start, end) by diff.
type partial struct {
	start, end, diff int
}

// Mapper is one "x-to-y map:" block with its partials sorted by start.
type Mapper struct {
	Name     string
	partials []partial
}

// ParseMap parses a map block: a "name map:" header followed by
// "dest src len" triples.
func ParseMap(block string) (Mapper, error) {
	lines := aoc.Lines(block)
	if len(lines) == 0 {
		return Mapper{}, fmt.Errorf("%w: empty map", ErrInvalidInput)
	}
	name, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return Mapper{}, fmt.Errorf("%w: map header %q", ErrInvalidInput, lines[0])
	}
	m := Mapper{Name: name}
	for _, l := range lines[1:] {
		xs, err := aoc.Ints(l)
		if err != nil || len(xs) != 3 {
			return Mapper{}, fmt.Errorf("%w: map line %q", ErrInvalidInput, l)
		}
		m.partials = append(m.partials, partial{start: xs[1], end: xs[1] + xs[2], diff: xs[0] - xs[1]})
	}
	sort.Slice(m.partials, func(i, j int) bool { return m.partials[i].start < m.partials[j].start })

	return m, nil
}

// Eval maps a single value; values outside every partial map to themselves.
func (m Mapper) Eval(v int) int {
	for _, p := range m.partials {
		if v >= p.start && v < p.end {
			return v + p.diff
		}
	}

	return v
}

// EvalRanges maps every input range, splitting it at partial boundaries.
// The output is sorted by start.
func (m Mapper) EvalRanges(in []Range) []Range {
	var out []Range
	for _, r := range in {
		i := r.Start
		for _, p := range m.partials {
			if i >= r.End {
				break
			}
			if i < p.start {
				// gap before this partial stays unchanged
				stop := min(r.End, p.start)
				out = append(out, Range{i, stop})
				i = stop
				if i >= r.End {
					break
				}
			}
			if i < p.end {
				stop := min(r.End, p.end)
				out = append(out, Range{i + p.diff, stop + p.diff})
				i = stop
			}
		}
		if i < r.End {
			out = append(out, Range{i, r.End})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Start < out[b].Start })

	return out
}

type almanac struct {
	seeds   []int
	mappers []Mapper
}

func parse(input string) (*almanac, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: missing seeds line", ErrInvalidInput)
	}
	rest, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: seeds line %q", ErrInvalidInput, blocks[0][0])
	}
	seeds, err := aoc.Ints(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	a := &almanac{seeds: seeds}
	for _, b := range blocks[1:] {
		m, err := ParseMap(strings.Join(b, "\n"))
		if err != nil {
			return nil, err
		}
		a.mappers = append(a.mappers, m)
	}

	return a, nil
}

// PartOne returns the lowest location of any listed seed.
func PartOne(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	best := math.MaxInt
	for _, s := range a.seeds {
		for _, m := range a.mappers {
			s = m.Eval(s)
		}
		best = min(best, s)
	}
	if best == math.MaxInt {
		return 0, fmt.Errorf("%w: no seeds", ErrInvalidInput)
	}

	return best, nil
}

// PartTwo reads the seeds as (start, length) pairs and returns the lowest
// location over all of them.
func PartTwo(input string) (int, error) {
	a, err := parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 || len(a.seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: seeds must come in pairs", ErrInvalidInput)
	}
	ranges := make([]Range, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		ranges = append(ranges, Range{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	for _, m := range a.mappers {
		ranges = m.EvalRanges(ranges)
	}
	if len(ranges) == 0 {
		return 0, fmt.Errorf("%w: every seed range is empty", ErrInvalidInput)
	}
	lowest := ranges[0].Start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.Start)
	}

	return lowest, nil
}
