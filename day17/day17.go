// Package day17 routes a crucible across the city with the least heat loss.
package day17

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/dijkstra"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/aoc"
)

// ErrInvalidInput indicates a non-digit block or bad move limits.
var ErrInvalidInput = errors.New("day17: invalid input")

// state is a position plus the axis of the move that reached it:
// 0 horizontal, 1 vertical. The next move must use the other axis.
type state struct {
	x, y int
	axis int
}

// Solve returns the minimum heat loss from the top-left to the bottom-right
// block when every straight run covers between min and max blocks.
func Solve(input string, minRun, maxRun int) (int, error) {
	if minRun < 1 || maxRun < minRun {
		return 0, fmt.Errorf("%w: run limits %d..%d", ErrInvalidInput, minRun, maxRun)
	}
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	heat := make([][]int64, g.Height)
	for y := range heat {
		heat[y] = make([]int64, g.Width)
		for x := range heat[y] {
			d, ok := aoc.Digit(g.At(x, y))
			if !ok {
				return 0, fmt.Errorf("%w: block %q at (%d,%d)", ErrInvalidInput, g.At(x, y), x, y)
			}
			heat[y][x] = int64(d)
		}
	}

	expand := func(s state) []dijkstra.Arc[state] {
		var arcs []dijkstra.Arc[state]
		axis := 1 - s.axis
		for _, sign := range [2]int{-1, 1} {
			dx, dy := sign, 0
			if axis == 1 {
				dx, dy = 0, sign
			}
			var cost int64
			for k := 1; k <= maxRun; k++ {
				x, y := s.x+dx*k, s.y+dy*k
				if !g.InBounds(x, y) {
					break
				}
				cost += heat[y][x]
				if k >= minRun {
					arcs = append(arcs, dijkstra.Arc[state]{To: state{x, y, axis}, Cost: cost})
				}
			}
		}
		return arcs
	}
	gx, gy := g.Width-1, g.Height-1
	res, err := dijkstra.Search(context.Background(),
		[]state{{0, 0, 0}, {0, 0, 1}},
		expand,
		func(s state) bool { return s.x == gx && s.y == gy },
	)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("%w: bottom-right block unreachable", ErrInvalidInput)
	}

	return int(res.Cost), nil
}

// PartOne moves 1 to 3 blocks between turns.
func PartOne(input string) (int, error) { return Solve(input, 1, 3) }

// PartTwo drives an ultra crucible: 4 to 10 blocks between turns.
func PartTwo(input string) (int, error) { return Solve(input, 4, 10) }
