// Package day11 measures distances between galaxies in an expanding universe.
package day11

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates an unexpected character or a bad factor.
var ErrInvalidInput = errors.New("day11: invalid input")

// Point is a galaxy position; X is the column and Y the row.
type Point = aoc.Pt2[int]

// ParseGalaxies returns the '#' positions in row-major order.
func ParseGalaxies(input string) ([]Point, error) {
	var out []Point
	for y, row := range aoc.Lines(input) {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				out = append(out, Point{X: x, Y: y})
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidInput, row[x], x, y)
			}
		}
	}

	return out, nil
}

// Expand replaces every empty row and column with factor copies of itself.
// The input slice is not modified.
func Expand(galaxies []Point, factor int) []Point {
	shift := func(coord func(Point) int) map[int]int {
		used := make(map[int]bool)
		hi := 0
		for _, g := range galaxies {
			used[coord(g)] = true
			hi = max(hi, coord(g))
		}
		// offset[v] = (factor-1) × number of empty lines before v
		offset := make(map[int]int, len(used))
		empty := 0
		for v := 0; v <= hi; v++ {
			if used[v] {
				offset[v] = empty * (factor - 1)
			} else {
				empty++
			}
		}
		return offset
	}
	dx := shift(func(p Point) int { return p.X })
	dy := shift(func(p Point) int { return p.Y })

	out := make([]Point, len(galaxies))
	for i, g := range galaxies {
		out[i] = Point{X: g.X + dx[g.X], Y: g.Y + dy[g.Y]}
	}

	return out
}

// sumAxis returns Σ|a−b| over all pairs of vs in O(n log n).
func sumAxis(vs []int) int {
	sort.Ints(vs)
	total, prefix := 0, 0
	for i, v := range vs {
		total += i*v - prefix
		prefix += v
	}

	return total
}

// Solve returns the sum of Manhattan distances between every pair of
// galaxies after expansion by factor.
func Solve(input string, factor int) (int, error) {
	if factor < 1 {
		return 0, fmt.Errorf("%w: factor %d", ErrInvalidInput, factor)
	}
	gs, err := ParseGalaxies(input)
	if err != nil {
		return 0, err
	}
	gs = Expand(gs, factor)
	xs := make([]int, len(gs))
	ys := make([]int, len(gs))
	for i, g := range gs {
		xs[i], ys[i] = g.X, g.Y
	}

	return sumAxis(xs) + sumAxis(ys), nil
}

// PartOne doubles every empty row and column.
func PartOne(input string) (int, error) { return Solve(input, 2) }

// PartTwo grows every empty row and column a million times.
func PartTwo(input string) (int, error) { return Solve(input, 1_000_000) }
