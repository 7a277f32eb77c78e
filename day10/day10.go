// Package day10 follows the main pipe loop through a field of pipes.
//
// The loop is extracted into an undirected core.Graph with "x,y" vertex
// IDs; bfs.BFS from the start tile gives every loop tile its distance.
package day10

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

// ErrInvalidInput indicates a missing or ambiguous start tile.
var ErrInvalidInput = errors.New("day10: invalid input")

// connection bits
const (
	north = 1 << iota
	east
	south
	west
)

var pipes = map[byte]int{
	'|': north | south,
	'-': east | west,
	'L': north | east,
	'J': north | west,
	'7': south | west,
	'F': south | east,
}

// steps in N, E, S, W order, matching the bit order above.
var steps = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// opposite[i] is the bit index facing back from direction i.
var opposite = [4]int{2, 3, 0, 1}

type field struct {
	grid   *gridgraph.Grid
	shape  map[[2]int]int // connection bits of every pipe tile, start included
	start  [2]int
	loop   *core.Graph
	result *bfs.BFSResult
}

func parse(input string) (*field, error) {
	grid, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	sx, sy, ok := grid.Find('S')
	if !ok {
		return nil, fmt.Errorf("%w: no start tile", ErrInvalidInput)
	}
	f := &field{grid: grid, shape: make(map[[2]int]int), start: [2]int{sx, sy}}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if bits, ok := pipes[grid.At(x, y)]; ok {
				f.shape[[2]int{x, y}] = bits
			}
		}
	}

	// Stage 1: infer the start shape from neighbours pointing back at it.
	bits, n := 0, 0
	for i, d := range steps {
		if f.shape[[2]int{sx + d[0], sy + d[1]}]&(1<<opposite[i]) != 0 {
			bits |= 1 << i
			n++
		}
	}
	if n != 2 {
		return nil, fmt.Errorf("%w: start tile has %d connections", ErrInvalidInput, n)
	}
	f.shape[f.start] = bits

	// Stage 2: join mutually connected tiles.
	g := core.NewGraph()
	for p, bits := range f.shape {
		for i, d := range steps[:2] { // north and east only, each pair once
			q := [2]int{p[0] + d[0], p[1] + d[1]}
			if bits&(1<<i) != 0 && f.shape[q]&(1<<opposite[i]) != 0 {
				if _, err := g.AddEdge(gridgraph.VertexID(p[0], p[1]), gridgraph.VertexID(q[0], q[1]), 0); err != nil {
					return nil, err
				}
			}
		}
	}
	f.loop = g

	// Stage 3: distances along the loop.
	f.result, err = bfs.BFS(g, gridgraph.VertexID(sx, sy))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// PartOne returns the distance to the loop tile farthest from the start.
func PartOne(input string) (int, error) {
	f, err := parse(input)
	if err != nil {
		return 0, err
	}

	return f.result.MaxDepth(), nil
}

type scanState int

const (
	outside scanState = iota
	onTopEdge
	onBottomEdge
	inside
)

// PartTwo counts the tiles enclosed by the loop. Each row is scanned left
// to right; horizontal runs of the loop are crossings only when they enter
// and leave on opposite vertical sides.
func PartTwo(input string) (int, error) {
	f, err := parse(input)
	if err != nil {
		return 0, err
	}
	count := 0
	for y := 0; y < f.grid.Height; y++ {
		state := outside
		for x := 0; x < f.grid.Width; x++ {
			if _, onLoop := f.result.Depth[gridgraph.VertexID(x, y)]; !onLoop {
				if state == inside {
					count++
				}
				continue
			}
			switch f.shape[[2]int{x, y}] {
			case north | south:
				if state == outside {
					state = inside
				} else {
					state = outside
				}
			case south | east: // F
				if state == outside {
					state = onTopEdge
				} else {
					state = onBottomEdge
				}
			case north | east: // L
				if state == outside {
					state = onBottomEdge
				} else {
					state = onTopEdge
				}
			case south | west: // 7
				if state == onTopEdge {
					state = outside
				} else {
					state = inside
				}
			case north | west: // J
				if state == onTopEdge {
					state = inside
				} else {
					state = outside
				}
			}
		}
	}

	return count, nil
}
