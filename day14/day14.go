// Package day14 tilts a platform of rounded and cube-shaped rocks.
package day14

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// ErrInvalidInput indicates an unexpected tile.
var ErrInvalidInput = errors.New("day14: invalid input")

const spinCycles = 1_000_000_000

type platform struct {
	*gridgraph.Grid
}

func parse(input string) (platform, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return platform{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if b := g.At(x, y); b != 'O' && b != '#' && b != '.' {
				return platform{}, fmt.Errorf("%w: tile %q at (%d,%d)", ErrInvalidInput, b, x, y)
			}
		}
	}

	return platform{g}, nil
}

// tilt rolls every 'O' as far as it goes in direction (dx, dy). Cells are
// visited starting from the edge the rocks roll towards.
func (p platform) tilt(dx, dy int) {
	xs, ys := order(p.Width, dx), order(p.Height, dy)
	for _, y := range ys {
		for _, x := range xs {
			if p.At(x, y) != 'O' {
				continue
			}
			cx, cy := x, y
			for p.InBounds(cx+dx, cy+dy) && p.At(cx+dx, cy+dy) == '.' {
				cx, cy = cx+dx, cy+dy
			}
			p.Cells[y][x] = '.'
			p.Cells[cy][cx] = 'O'
		}
	}
}

// order lists 0..n-1 so that the side d points at comes first.
func order(n, d int) []int {
	out := make([]int, n)
	for i := range out {
		if d > 0 {
			out[i] = n - 1 - i
		} else {
			out[i] = i
		}
	}

	return out
}

func (p platform) spin() {
	p.tilt(0, -1)
	p.tilt(-1, 0)
	p.tilt(0, 1)
	p.tilt(1, 0)
}

// load sums, over rounded rocks, the number of rows from the rock to the
// south edge inclusive.
func (p platform) load() int {
	total := 0
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.At(x, y) == 'O' {
				total += p.Height - y
			}
		}
	}

	return total
}

// PartOne tilts north once and reports the north load.
func PartOne(input string) (int, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	p.tilt(0, -1)

	return p.load(), nil
}

// PartTwo runs a billion spin cycles. The platform falls into a loop
// after a few hundred cycles, so the state is hashed after every cycle
// and the remaining cycles are skipped once a state repeats.
func PartTwo(input string) (int, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	seen := map[string]int{p.String(): 0}
	for i := 1; i <= spinCycles; i++ {
		p.spin()
		key := p.String()
		if first, ok := seen[key]; ok {
			period := i - first
			remaining := (spinCycles - i) % period
			for ; remaining > 0; remaining-- {
				p.spin()
			}
			break
		}
		seen[key] = i
	}

	return p.load(), nil
}
