// Package day21 counts the garden plots an elf can stand on after an
// exact number of steps.
//
// Plots form an unweighted core.Graph; one BFS from a start gives every
// plot's distance, and a plot is reachable in exactly n steps when its
// distance is at most n with the same parity (the elf can step back and
// forth to burn pairs of steps).
package day21

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

// ErrInvalidInput indicates a missing start or a map that does not fit the
// tiled closed form.
var ErrInvalidInput = errors.New("day21: invalid input")

type garden struct {
	grid  *gridgraph.Grid
	plots *core.Graph
	sx    int
	sy    int
}

func parse(input string) (*garden, error) {
	g, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	sx, sy, ok := g.Find('S')
	if !ok {
		return nil, fmt.Errorf("%w: no start", ErrInvalidInput)
	}

	return &garden{
		grid:  g,
		plots: g.ToCoreGraph(func(b byte) bool { return b != '#' }),
		sx:    sx,
		sy:    sy,
	}, nil
}

// reach counts plots reachable in exactly steps moves from (x, y) without
// leaving the tile.
func (g *garden) reach(x, y, steps int) (int, error) {
	id := gridgraph.VertexID(x, y)
	if steps < 0 || !g.plots.HasVertex(id) {
		return 0, nil
	}
	opts := []bfs.Option{}
	if steps > 0 {
		opts = append(opts, bfs.WithMaxDepth(steps))
	}
	res, err := bfs.BFS(g.plots, id, opts...)
	if err != nil {
		return 0, err
	}

	return res.CountWithin(steps), nil
}

// CountReachable returns the plots reachable in exactly steps moves on the
// single map.
func CountReachable(input string, steps int) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}

	return g.reach(g.sx, g.sy, steps)
}

// CountReachableInfinite returns the plots reachable in exactly steps moves
// on the map tiled infinitely in every direction.
//
// The map must be square with odd size n, S in its centre c, and
// steps = c + f·n for some f ≥ 1. The reachable region is then a diamond
// of whole tiles, f−1 tiles across in each direction from the centre,
// fringed by four tip tiles and two sizes of corner wedge:
//
//   - whole tiles alternate parity; those matching the centre tile number
//     (f−1)² for even f and f² for odd f, the others the remainder of
//     2f²−2f+1
//   - each tip is entered at the middle of an edge with n−1 steps left
//   - f small wedges per diagonal are entered at a corner with c−1 steps
//     left, f−1 large ones with c−1+n
//
// The closed form assumes the start row and column are free of rocks, as
// in the puzzle input.
func CountReachableInfinite(input string, steps int) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := g.grid.Width
	if g.grid.Height != n || n%2 == 0 {
		return 0, fmt.Errorf("%w: map must be square with odd size, got %dx%d", ErrInvalidInput, g.grid.Width, g.grid.Height)
	}
	c := n / 2
	if g.sx != c || g.sy != c {
		return 0, fmt.Errorf("%w: start (%d,%d) is not the centre", ErrInvalidInput, g.sx, g.sy)
	}
	if steps < c+n || (steps-c)%n != 0 {
		return 0, fmt.Errorf("%w: steps %d is not %d + k·%d with k ≥ 1", ErrInvalidInput, steps, c, n)
	}
	f := (steps - c) / n

	// Stage 1: whole tiles of either parity.
	same, err := g.reach(c, c, n+(n+steps)%2) // n or n+1, matching the parity of steps
	if err != nil {
		return 0, err
	}
	other, err := g.reach(c, c, n+(n+steps+1)%2)
	if err != nil {
		return 0, err
	}
	sameTiles, otherTiles := f*f, (f-1)*(f-1)
	if f%2 == 0 {
		sameTiles, otherTiles = otherTiles, sameTiles
	}
	total := sameTiles*same + otherTiles*other

	// Stage 2: tips, entered at the middle of the opposite edge.
	tips := [][2]int{{0, c}, {n - 1, c}, {c, 0}, {c, n - 1}}
	for _, p := range tips {
		k, err := g.reach(p[0], p[1], n-1)
		if err != nil {
			return 0, err
		}
		total += k
	}

	// Stage 3: wedges, entered at the opposite corner.
	corners := [][2]int{{0, 0}, {n - 1, 0}, {0, n - 1}, {n - 1, n - 1}}
	for _, p := range corners {
		small, err := g.reach(p[0], p[1], c-1)
		if err != nil {
			return 0, err
		}
		large, err := g.reach(p[0], p[1], c-1+n)
		if err != nil {
			return 0, err
		}
		total += f*small + (f-1)*large
	}

	return total, nil
}

// PartOne counts plots reachable in exactly 64 steps.
func PartOne(input string) (int, error) { return CountReachable(input, 64) }

// PartTwo counts plots reachable in exactly 26501365 steps on the tiled map.
func PartTwo(input string) (int, error) { return CountReachableInfinite(input, 26501365) }
